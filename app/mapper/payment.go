package mapper

import (
	"time"

	"github.com/kevinemt0605/vitalmoto/app/entity"
	"github.com/kevinemt0605/vitalmoto/app/provider"
	"github.com/kevinemt0605/vitalmoto/app/types"
)

func LedgerEntryToResponse(entry *entity.LedgerEntry) *types.Payment {
	if entry == nil {
		return nil
	}

	return &types.Payment{
		ID:        entry.ID,
		UserID:    entry.UserID,
		ServiceID: entry.ServiceID,
		Amount:    entry.Amount,
		Reference: entry.Reference,
		BankResponse: &provider.GatewayResponse{
			Code:    entry.BankResponse.Code,
			Message: entry.BankResponse.Message,
			Data:    entry.BankResponse.Data,
		},
		Status:      entry.Status,
		Concept:     entry.Concept,
		PaymentDate: entry.PaymentDate,
		CreatedAt:   entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func LedgerEntriesToResponse(entries []*entity.LedgerEntry) []*types.Payment {
	result := make([]*types.Payment, 0, len(entries))
	for _, entry := range entries {
		result = append(result, LedgerEntryToResponse(entry))
	}
	return result
}
