package types

import (
	"errors"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kevinemt0605/vitalmoto/app/provider"
)

// ReconcileRequest is the payment claim posted by the web client. Field names
// follow the bank's own conciliation vocabulary so the client can forward the
// payer's capture verbatim.
type ReconcileRequest struct {
	CedulaPagador   string `json:"cedulaPagador"`
	TelefonoPagador string `json:"telefonoPagador"`
	Referencia      string `json:"referencia"`
	FechaPago       string `json:"fechaPago"`
	Importe         string `json:"importe"`
	BancoOrigen     string `json:"bancoOrigen"`
	ServiceID       string `json:"serviceId,omitempty"`
	UserID          string `json:"userId,omitempty"`
}

func NewReconcileRequestFromContext(ctx echo.Context) (*ReconcileRequest, error) {
	var body ReconcileRequest
	if err := ctx.Bind(&body); err != nil {
		return nil, err
	}

	body.CedulaPagador = strings.TrimSpace(body.CedulaPagador)
	body.TelefonoPagador = strings.TrimSpace(body.TelefonoPagador)
	body.Referencia = strings.TrimSpace(body.Referencia)
	body.FechaPago = strings.TrimSpace(body.FechaPago)
	body.Importe = strings.TrimSpace(body.Importe)
	body.BancoOrigen = strings.TrimSpace(body.BancoOrigen)
	body.ServiceID = strings.TrimSpace(body.ServiceID)
	body.UserID = strings.TrimSpace(body.UserID)

	return &body, nil
}

func (r *ReconcileRequest) Validate() error {
	if r.CedulaPagador == "" {
		return errors.New("cedulaPagador is required")
	}
	if r.TelefonoPagador == "" {
		return errors.New("telefonoPagador is required")
	}
	if r.Referencia == "" {
		return errors.New("referencia is required")
	}
	if r.FechaPago == "" {
		return errors.New("fechaPago is required")
	}
	if r.Importe == "" {
		return errors.New("importe is required")
	}
	if amount, err := strconv.ParseFloat(r.Importe, 64); err != nil || amount <= 0 {
		return errors.New("importe must be a positive amount")
	}
	if r.BancoOrigen == "" {
		return errors.New("bancoOrigen is required")
	}
	return nil
}

// ReconcileResponse is returned with HTTP 200 for every business outcome,
// approved or declined, so the client renders declines without exception
// handling. Details carries the bank's raw message on declines.
type ReconcileResponse struct {
	Success bool                      `json:"success"`
	Message string                    `json:"message"`
	Data    *provider.GatewayResponse `json:"data,omitempty"`
	Details string                    `json:"details,omitempty"`
}

// InternalErrorResponse is the 500-class shape, reserved for faults where the
// claim's truth is unknown (gateway unreachable, storage failure).
type InternalErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type ListPaymentsRequest struct {
	UserID    string
	Reference string
	Limit     int64
	Offset    int64
}

func NewListPaymentsRequestFromContext(ctx echo.Context) (*ListPaymentsRequest, error) {
	req := &ListPaymentsRequest{
		UserID:    strings.TrimSpace(ctx.QueryParam("userId")),
		Reference: strings.TrimSpace(ctx.QueryParam("reference")),
		Limit:     100,
		Offset:    0,
	}

	if raw := strings.TrimSpace(ctx.QueryParam("limit")); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}
	if raw := strings.TrimSpace(ctx.QueryParam("offset")); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.Offset = offset
	}

	return req, nil
}

func (r *ListPaymentsRequest) Validate() error {
	if r.Limit <= 0 || r.Limit > 500 {
		return errors.New("limit must be between 1 and 500")
	}
	if r.Offset < 0 {
		return errors.New("offset must not be negative")
	}
	return nil
}

// Payment is the outward ledger entry shape for the admin listing.
type Payment struct {
	ID           string                    `json:"id"`
	UserID       string                    `json:"userId"`
	ServiceID    string                    `json:"serviceId"`
	Amount       string                    `json:"amount"`
	Reference    string                    `json:"reference"`
	BankResponse *provider.GatewayResponse `json:"bankResponse,omitempty"`
	Status       string                    `json:"status"`
	Concept      string                    `json:"concept"`
	PaymentDate  string                    `json:"paymentDate,omitempty"`
	CreatedAt    string                    `json:"createdAt"`
}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}
