package service

import "strings"

const (
	msgApproved           = "Pago conciliado correctamente."
	msgDuplicateReference = "Esta referencia ya fue utilizada en un pago registrado."
	msgConsumedAtBank     = "La referencia ya fue conciliada por el banco para otra operación."

	declineReasonFallback = "El banco no pudo verificar el pago."
)

// The bank's decline detail is free text; it is mapped to a user-facing
// reason through an ordered keyword rule list, first match wins. Keywords are
// matched case-insensitively against the lowercased detail.
type declineRule struct {
	matches func(string) bool
	reason  string
}

func keyword(words ...string) func(string) bool {
	return func(detail string) bool {
		for _, w := range words {
			if strings.Contains(detail, w) {
				return true
			}
		}
		return false
	}
}

var declineRules = []declineRule{
	{keyword("referencia"), "La referencia indicada no corresponde a ningún pago recibido."},
	{keyword("fecha"), "La fecha de pago indicada no coincide con la operación."},
	{keyword("monto", "importe"), "El monto indicado no coincide con el pago recibido."},
	{keyword("cedula", "cédula"), "La cédula del pagador no coincide con la operación."},
	{keyword("telefono", "teléfono"), "El teléfono del pagador no coincide con la operación."},
	{keyword("banco"), "El banco de origen indicado no coincide con la operación."},
}

func declineReason(detail string) string {
	lowered := strings.ToLower(detail)
	for _, rule := range declineRules {
		if rule.matches(lowered) {
			return rule.reason
		}
	}
	return declineReasonFallback
}
