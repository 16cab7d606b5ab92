package entity

import "time"

const (
	LedgerStatusApproved = "approved"

	// MembershipServiceID is the sentinel serviceId used by the mobile client
	// when the claim pays for the daily membership instead of a workshop job.
	MembershipServiceID = "MEMBRESIA_DIARIA"

	ConceptDailyMembership = "Pago Membresía Diaria"
	ConceptWorkshopService = "Servicio Taller"

	AnonymousUserID = "anonimo"
)

// BankResponse is the raw conciliation reply from the bank, retained verbatim
// inside the ledger entry for audit.
type BankResponse struct {
	Code    int    `bson:"code" json:"code"`
	Message string `bson:"message" json:"message"`
	Data    string `bson:"data,omitempty" json:"data,omitempty"`
}

// LedgerEntry is append-only: written exactly once per approved reconciliation
// and never mutated or deleted afterwards.
type LedgerEntry struct {
	ID           string       `bson:"_id"`
	UserID       string       `bson:"userId"`
	ServiceID    string       `bson:"serviceId"`
	Amount       string       `bson:"amount"`
	Reference    string       `bson:"reference"`
	BankResponse BankResponse `bson:"bankResponse"`
	Status       string       `bson:"status"`
	Concept      string       `bson:"concept"`
	PaymentDate  string       `bson:"paymentDate,omitempty"`
	CreatedAt    time.Time    `bson:"createdAt"`
}
