package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kevinemt0605/vitalmoto/app/entity"
	"github.com/kevinemt0605/vitalmoto/app/factory"
	"github.com/kevinemt0605/vitalmoto/app/provider"
	"github.com/kevinemt0605/vitalmoto/app/repository"
	"github.com/kevinemt0605/vitalmoto/app/types"
)

type ledgerRepository interface {
	Append(ctx context.Context, entry *entity.LedgerEntry) error
	FindApprovedByReference(ctx context.Context, reference string) (*entity.LedgerEntry, error)
	List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.LedgerEntry, error)
}

type accountRepository interface {
	MarkPaid(ctx context.Context, id, reference string, at time.Time) error
}

type serviceRecordRepository interface {
	MarkPaymentVerified(ctx context.Context, id string, resp *entity.BankResponse, at time.Time) error
}

type bankGateway interface {
	Verify(ctx context.Context, input *provider.VerificationInput) (*provider.GatewayResponse, error)
}

// ReconcileResult is a business outcome, never an error: declines and
// duplicates come back as Approved=false with a user-facing Message. Errors
// are reserved for faults where the claim's truth is unknown.
type ReconcileResult struct {
	Approved bool
	Message  string
	Details  string
	Response *provider.GatewayResponse
}

type ReconcileService struct {
	ledgerRepo  ledgerRepository
	accountRepo accountRepository
	serviceRepo serviceRecordRepository
	gateway     bankGateway
	logger      logrus.FieldLogger
}

func NewReconcileService(
	ledgerRepo ledgerRepository,
	accountRepo accountRepository,
	serviceRepo serviceRecordRepository,
	gateway bankGateway,
) *ReconcileService {
	return &ReconcileService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
		serviceRepo: serviceRepo,
		gateway:     gateway,
		logger:      factory.NewModuleLogger("reconcile-service"),
	}
}

// Reconcile verifies a payment claim against the bank and applies the result.
//
// The ledger lookup runs before any external call: the bank reports replayed
// references as "already settled", so without a local check a payer could
// reuse one real transaction against any number of claims.
func (s *ReconcileService) Reconcile(ctx context.Context, req *types.ReconcileRequest) (*ReconcileResult, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	existing, err := s.ledgerRepo.FindApprovedByReference(ctx, req.Referencia)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		s.logger.WithField("reference", req.Referencia).Info("Duplicate reference rejected")
		return &ReconcileResult{Message: msgDuplicateReference}, nil
	}

	resp, err := s.gateway.Verify(ctx, &provider.VerificationInput{
		PayerDocument: req.CedulaPagador,
		PayerPhone:    req.TelefonoPagador,
		Reference:     req.Referencia,
		PaymentDate:   req.FechaPago,
		Amount:        req.Importe,
		OriginBank:    req.BancoOrigen,
	})
	if err != nil {
		return nil, err
	}

	switch provider.Classify(resp) {
	case provider.OutcomeAccepted:
		return s.apply(ctx, req, resp)
	case provider.OutcomeAcceptedPrior:
		// The guard above proved no local approval exists, so the reference
		// was consumed by an operation outside this system.
		s.logger.WithField("reference", req.Referencia).Warn("Reference already settled at the bank")
		return &ReconcileResult{Message: msgConsumedAtBank, Details: resp.Message}, nil
	default:
		return &ReconcileResult{Message: declineReason(resp.Message), Details: resp.Message}, nil
	}
}

// apply runs the post-acceptance writes as a best-effort sequence. The ledger
// append is the durability anchor and the only fatal step; the service-record
// and account-flag updates are logged and swallowed on failure.
func (s *ReconcileService) apply(ctx context.Context, req *types.ReconcileRequest, resp *provider.GatewayResponse) (*ReconcileResult, error) {
	now := time.Now().UTC()
	bankResp := &entity.BankResponse{Code: resp.Code, Message: resp.Message, Data: resp.Data}

	if req.ServiceID != "" && req.ServiceID != entity.MembershipServiceID {
		if err := s.serviceRepo.MarkPaymentVerified(ctx, req.ServiceID, bankResp, now); err != nil {
			s.logger.WithError(err).WithField("service_id", req.ServiceID).Warn("Service record update skipped")
		}
	}

	entry := &entity.LedgerEntry{
		UserID:       req.UserID,
		ServiceID:    req.ServiceID,
		Amount:       req.Importe,
		Reference:    req.Referencia,
		BankResponse: *bankResp,
		Status:       entity.LedgerStatusApproved,
		Concept:      entity.ConceptWorkshopService,
		PaymentDate:  req.FechaPago,
		CreatedAt:    now,
	}
	if entry.UserID == "" {
		entry.UserID = entity.AnonymousUserID
	}
	if entry.ServiceID == "" {
		entry.ServiceID = "n/a"
	}
	if req.ServiceID == entity.MembershipServiceID {
		entry.Concept = entity.ConceptDailyMembership
	}

	if err := s.ledgerRepo.Append(ctx, entry); err != nil {
		return nil, err
	}

	if req.UserID != "" {
		if err := s.accountRepo.MarkPaid(ctx, req.UserID, req.Referencia, now); err != nil {
			s.logger.WithError(err).WithField("user_id", req.UserID).Warn("Account flag update skipped")
		}
	}

	return &ReconcileResult{Approved: true, Message: msgApproved, Response: resp}, nil
}

func (s *ReconcileService) ListPayments(ctx context.Context, req *types.ListPaymentsRequest) ([]*entity.LedgerEntry, error) {
	return s.ledgerRepo.List(ctx, repository.LedgerFilter{
		UserID:    req.UserID,
		Reference: req.Reference,
		Limit:     req.Limit,
		Offset:    req.Offset,
	})
}
