package entity

import "time"

// Account is the user profile document. Only the membership fields below are
// owned by this service; the rest of the profile belongs to the web app.
type Account struct {
	ID              string     `bson:"_id"`
	HasPaid         bool       `bson:"hasPaid"`
	LastPaymentDate *time.Time `bson:"lastPaymentDate,omitempty"`
	LastPaymentRef  string     `bson:"lastPaymentRef,omitempty"`
}
