package service

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/kevinemt0605/vitalmoto/app/factory"
)

const defaultResetBatchSize = int32(500)

var accountsClearedTotal = promauto.NewCounter(prometheus.CounterOpts{
	Name: "vitalmoto_membership_reset_accounts_total",
	Help: "Accounts whose membership flag was cleared by the daily sweep",
})

type resetAccountRepository interface {
	ListActiveIDs(ctx context.Context) ([]string, error)
	ClearActive(ctx context.Context, ids []string) (int64, error)
}

// ResetService clears the membership flag of every currently-paid account,
// once per day. Updates are committed in fixed-size partitions so the sweep
// stays under the store's bulk-write limits, and a failed partition never
// blocks the remaining ones.
type ResetService struct {
	accountRepo resetAccountRepository
	batchSize   int32
	logger      logrus.FieldLogger
}

func NewResetService(accountRepo resetAccountRepository, batchSize int32) *ResetService {
	if batchSize <= 0 {
		batchSize = defaultResetBatchSize
	}
	return &ResetService{
		accountRepo: accountRepo,
		batchSize:   batchSize,
		logger:      factory.NewModuleLogger("reset-service"),
	}
}

// Run executes one sweep and returns the number of accounts cleared, plus the
// first partition error if any partition failed.
func (s *ResetService) Run(ctx context.Context) (int64, error) {
	ids, err := s.accountRepo.ListActiveIDs(ctx)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		s.logger.Info("No active memberships, sweep is a no-op")
		return 0, nil
	}

	batch := int(s.batchSize)
	var total int64
	var firstErr error
	for start := 0; start < len(ids); start += batch {
		end := start + batch
		if end > len(ids) {
			end = len(ids)
		}

		cleared, err := s.accountRepo.ClearActive(ctx, ids[start:end])
		if err != nil {
			s.logger.WithError(err).WithField("partition_start", start).Error("Partition commit failed")
			firstErr = keepFirstErr(firstErr, err)
			continue
		}
		total += cleared
	}

	accountsClearedTotal.Add(float64(total))
	s.logger.WithField("accounts_cleared", total).Info("Membership reset sweep completed")

	return total, firstErr
}

func keepFirstErr(current error, candidate error) error {
	if current != nil {
		return current
	}
	return candidate
}
