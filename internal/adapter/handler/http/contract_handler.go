package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	domainErrors "github.com/fleetcore/payments/internal/domain/errors"
	"github.com/fleetcore/payments/internal/middleware/auth"
	"github.com/fleetcore/payments/internal/usecase"
)

// ContractHandler exposes the contract-side view of payments.
type ContractHandler struct {
	service *usecase.PaymentService
	logger  *zap.Logger
}

// NewContractHandler creates a new contract handler
func NewContractHandler(service *usecase.PaymentService, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{
		service: service,
		logger:  logger,
	}
}

// ListContractPayments handles GET /contracts/:id/payments
func (h *ContractHandler) ListContractPayments(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	contractID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid contract id",
		})
	}

	payments, err := h.service.ListContractPayments(c.Request().Context(), user.CompanyID, contractID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrContractNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		h.logger.Error("failed to list contract payments",
			zap.Int64("contract_id", contractID),
			zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false,
			"error":   "Failed to list contract payments",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":  true,
		"payments": payments,
	})
}
