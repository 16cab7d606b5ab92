package types

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newJSONContext(t *testing.T, body string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("POST", "/payments/reconcile", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return e.NewContext(req, httptest.NewRecorder())
}

func validBody() string {
	return `{
		"cedulaPagador": "V27037606",
		"telefonoPagador": " 04140000000 ",
		"referencia": "12345678",
		"fechaPago": "12/02/2023",
		"importe": "120.00",
		"bancoOrigen": "0102",
		"serviceId": "MEMBRESIA_DIARIA",
		"userId": "u1"
	}`
}

func TestNewReconcileRequestFromContextTrims(t *testing.T) {
	req, err := NewReconcileRequestFromContext(newJSONContext(t, validBody()))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if req.TelefonoPagador != "04140000000" {
		t.Errorf("expected trimmed phone, got %q", req.TelefonoPagador)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestReconcileRequestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ReconcileRequest)
	}{
		{"missing cedula", func(r *ReconcileRequest) { r.CedulaPagador = "" }},
		{"missing phone", func(r *ReconcileRequest) { r.TelefonoPagador = "" }},
		{"missing reference", func(r *ReconcileRequest) { r.Referencia = "" }},
		{"missing date", func(r *ReconcileRequest) { r.FechaPago = "" }},
		{"missing amount", func(r *ReconcileRequest) { r.Importe = "" }},
		{"non-numeric amount", func(r *ReconcileRequest) { r.Importe = "ciento veinte" }},
		{"zero amount", func(r *ReconcileRequest) { r.Importe = "0" }},
		{"negative amount", func(r *ReconcileRequest) { r.Importe = "-5.00" }},
		{"missing bank", func(r *ReconcileRequest) { r.BancoOrigen = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, err := NewReconcileRequestFromContext(newJSONContext(t, validBody()))
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			tc.mutate(req)
			if err := req.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestReconcileRequestOptionalFields(t *testing.T) {
	body := `{
		"cedulaPagador": "V27037606",
		"telefonoPagador": "04140000000",
		"referencia": "12345678",
		"fechaPago": "12/02/2023",
		"importe": "120.00",
		"bancoOrigen": "0102"
	}`
	req, err := NewReconcileRequestFromContext(newJSONContext(t, body))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := req.Validate(); err != nil {
		t.Errorf("serviceId and userId must be optional, got %v", err)
	}
}

func TestNewListPaymentsRequestFromContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest("GET", "/payments?userId=u1&limit=20&offset=40", nil)
	ctx := e.NewContext(req, httptest.NewRecorder())

	parsed, err := NewListPaymentsRequestFromContext(ctx)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.UserID != "u1" || parsed.Limit != 20 || parsed.Offset != 40 {
		t.Errorf("unexpected request %+v", parsed)
	}
	if err := parsed.Validate(); err != nil {
		t.Errorf("expected valid request, got %v", err)
	}
}

func TestListPaymentsRequestValidate(t *testing.T) {
	if err := (&ListPaymentsRequest{Limit: 0}).Validate(); err == nil {
		t.Error("expected error for zero limit")
	}
	if err := (&ListPaymentsRequest{Limit: 1000}).Validate(); err == nil {
		t.Error("expected error for oversized limit")
	}
	if err := (&ListPaymentsRequest{Limit: 10, Offset: -1}).Validate(); err == nil {
		t.Error("expected error for negative offset")
	}
}
