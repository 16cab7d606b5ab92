package provider

import (
	"errors"
	"strings"
)

// ErrGatewayUnreachable marks transport-level failures against the bank:
// network errors, timeouts and non-2xx replies. The claim's truth is unknown
// in that case, which is not the same thing as a declined payment.
var ErrGatewayUnreachable = errors.New("bank gateway unreachable")

// VerificationInput is the claim as submitted by the payer, minus the fields
// the gateway derives from its own configuration.
type VerificationInput struct {
	PayerDocument string
	PayerPhone    string
	Reference     string
	PaymentDate   string
	Amount        string
	OriginBank    string
}

// GatewayResponse is the structured reply of the conciliation API.
type GatewayResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data,omitempty"`
}

type Outcome int

const (
	OutcomeDeclined Outcome = iota
	OutcomeAccepted
	OutcomeAcceptedPrior
)

const (
	codeMatched        = 1000
	codeAlreadySettled = 1010
)

// Classify derives an outcome from a received gateway response. Code 1000 is
// a fresh match. Code 1010 with a "conciliado" message means the bank already
// settled this reference on an earlier call; whether that counts as success
// depends on the caller's local ledger, so it gets its own outcome.
func Classify(resp *GatewayResponse) Outcome {
	if resp == nil {
		return OutcomeDeclined
	}
	if resp.Code == codeMatched {
		return OutcomeAccepted
	}
	if resp.Code == codeAlreadySettled && strings.Contains(strings.ToLower(resp.Message), "conciliado") {
		return OutcomeAcceptedPrior
	}
	return OutcomeDeclined
}
