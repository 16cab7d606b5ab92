package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"

	"github.com/kevinemt0605/vitalmoto/app/factory"
	"github.com/kevinemt0605/vitalmoto/app/mapper"
	"github.com/kevinemt0605/vitalmoto/app/provider"
	"github.com/kevinemt0605/vitalmoto/app/service"
	"github.com/kevinemt0605/vitalmoto/app/types"
)

var reconcileOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "vitalmoto_reconcile_outcomes_total",
	Help: "Reconciliation requests by outcome",
}, []string{"outcome"})

const internalErrorMessage = "Error de conexión con el servidor."

type PaymentController struct {
	reconcileService *service.ReconcileService
	logger           logrus.FieldLogger
}

func NewPaymentController(reconcileService *service.ReconcileService) *PaymentController {
	return &PaymentController{
		reconcileService: reconcileService,
		logger:           factory.NewModuleLogger("payments-controller"),
	}
}

func (c *PaymentController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, &types.HealthResponse{Status: "ok"})
}

// ReconcilePayment adapts the wire request into the reconciliation workflow.
// Every business outcome is a 200 with a success flag; only transport faults
// and unknown-truth failures leave that envelope.
func (c *PaymentController) ReconcilePayment(ctx echo.Context) error {
	logger := factory.LoggerWithContext(c.logger, ctx)

	req, err := types.NewReconcileRequestFromContext(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, &types.ReconcileResponse{Success: false, Message: "invalid request body"})
	}
	if err := req.Validate(); err != nil {
		return ctx.JSON(http.StatusBadRequest, &types.ReconcileResponse{Success: false, Message: err.Error()})
	}

	result, err := c.reconcileService.Reconcile(ctx.Request().Context(), req)
	if err != nil {
		reconcileOutcomesTotal.WithLabelValues("error").Inc()
		if errors.Is(err, provider.ErrGatewayUnreachable) {
			logger.WithError(err).Error("Bank gateway unreachable")
		} else {
			logger.WithError(err).Error("Reconcile failed")
		}
		return ctx.JSON(http.StatusInternalServerError, &types.InternalErrorResponse{
			Success: false,
			Message: internalErrorMessage,
			Error:   err.Error(),
		})
	}

	if !result.Approved {
		reconcileOutcomesTotal.WithLabelValues("declined").Inc()
		return ctx.JSON(http.StatusOK, &types.ReconcileResponse{
			Success: false,
			Message: result.Message,
			Details: result.Details,
		})
	}

	reconcileOutcomesTotal.WithLabelValues("approved").Inc()
	return ctx.JSON(http.StatusOK, &types.ReconcileResponse{
		Success: true,
		Message: result.Message,
		Data:    result.Response,
	})
}

func (c *PaymentController) ListPayments(ctx echo.Context) error {
	req, err := types.NewListPaymentsRequestFromContext(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, &types.ReconcileResponse{Success: false, Message: "invalid request"})
	}
	if err := req.Validate(); err != nil {
		return ctx.JSON(http.StatusBadRequest, &types.ReconcileResponse{Success: false, Message: err.Error()})
	}

	entries, err := c.reconcileService.ListPayments(ctx.Request().Context(), req)
	if err != nil {
		c.logger.WithError(err).Error("List payments failed")
		return ctx.JSON(http.StatusInternalServerError, &types.InternalErrorResponse{
			Success: false,
			Message: internalErrorMessage,
			Error:   err.Error(),
		})
	}

	return ctx.JSON(http.StatusOK, &types.ListPaymentsResponse{Payments: mapper.LedgerEntriesToResponse(entries)})
}
