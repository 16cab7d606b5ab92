package repository

import "errors"

const (
	ledgerCollection   = "payments"
	accountCollection  = "users"
	servicesCollection = "services"
)

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrServiceRecordNotFound = errors.New("service record not found")
)
