package service

import "testing"

func TestDeclineReasonMapping(t *testing.T) {
	cases := []struct {
		name   string
		detail string
		want   string
	}{
		{"reference", "La REFERENCIA no existe", declineRules[0].reason},
		{"date", "la fecha de pago no coincide", declineRules[1].reason},
		{"amount monto", "el monto no coincide", declineRules[2].reason},
		{"amount importe", "importe invalido", declineRules[2].reason},
		{"payer id", "la cedula no corresponde", declineRules[3].reason},
		{"payer id accented", "la cédula no corresponde", declineRules[3].reason},
		{"payer phone", "telefono del pagador errado", declineRules[4].reason},
		{"origin bank", "banco de origen no valido", declineRules[5].reason},
		{"fallback", "error generico del sistema", declineReasonFallback},
		{"empty", "", declineReasonFallback},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := declineReason(tc.detail); got != tc.want {
				t.Errorf("declineReason(%q) = %q, want %q", tc.detail, got, tc.want)
			}
		})
	}
}

func TestDeclineReasonFirstMatchWins(t *testing.T) {
	// Both "referencia" and "monto" appear; the reference rule is evaluated
	// first in the ordered list.
	got := declineReason("referencia valida pero el monto no coincide")
	if got != declineRules[0].reason {
		t.Errorf("expected reference reason, got %q", got)
	}
}
