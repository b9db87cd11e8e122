package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/fleetcore/payments/internal/domain/dto"
	domainErrors "github.com/fleetcore/payments/internal/domain/errors"
	"github.com/fleetcore/payments/internal/domain/model"
	"github.com/fleetcore/payments/internal/middleware/auth"
	"github.com/fleetcore/payments/internal/usecase"
)

// PaymentHandler exposes the payment lifecycle over HTTP. Every response
// uses the {success, payment?, error?} envelope.
type PaymentHandler struct {
	service *usecase.PaymentService
	logger  *zap.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(service *usecase.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		logger:  logger,
	}
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	payment, err := h.service.CreatePayment(c.Request().Context(), user.CompanyID, req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"payment": payment,
	})
}

// ValidatePayment handles POST /payments/validate (dry run, no side effects)
func (h *PaymentHandler) ValidatePayment(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	result, err := h.service.ValidatePayment(c.Request().Context(), user.CompanyID, req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// GetPayment handles GET /payments/:id
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	id, err := h.paymentID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid payment id",
		})
	}

	payment, err := h.service.GetPayment(c.Request().Context(), user.CompanyID, id)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"payment": payment,
	})
}

// ListPayments handles GET /payments
func (h *PaymentHandler) ListPayments(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	filters, err := h.parseFilters(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	response, err := h.service.ListPayments(c.Request().Context(), user.CompanyID, filters)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// ProcessPayment handles POST /payments/:id/process
func (h *PaymentHandler) ProcessPayment(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	id, err := h.paymentID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid payment id",
		})
	}

	payment, err := h.service.ProcessPayment(c.Request().Context(), user.CompanyID, id)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"payment": payment,
	})
}

// AllocatePayment handles POST /payments/:id/allocate
func (h *PaymentHandler) AllocatePayment(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	id, err := h.paymentID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid payment id",
		})
	}

	var req dto.AllocatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	outcome, err := h.service.AllocatePayment(c.Request().Context(), user.CompanyID, id, req.ContractID)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":    true,
		"payment":    outcome.Payment,
		"allocation": outcome,
	})
}

// UpdatePaymentStatus handles PATCH /payments/:id/status
func (h *PaymentHandler) UpdatePaymentStatus(c echo.Context) error {
	user, err := auth.RequireAuth(c)
	if err != nil {
		return err
	}

	id, err := h.paymentID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid payment id",
		})
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	payment, err := h.service.UpdatePaymentStatus(c.Request().Context(), user.CompanyID, id, req)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"payment": payment,
	})
}

func (h *PaymentHandler) paymentID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func (h *PaymentHandler) parseFilters(c echo.Context) (dto.PaymentFilters, error) {
	var filters dto.PaymentFilters

	if raw := c.QueryParam("status"); raw != "" {
		status := model.PaymentStatus(raw)
		if !status.Valid() {
			return filters, errors.New("unknown payment status filter")
		}
		filters.Status = &status
	}
	if raw := c.QueryParam("method"); raw != "" {
		method := model.PaymentMethod(raw)
		if !method.Valid() {
			return filters, errors.New("unknown payment method filter")
		}
		filters.Method = &method
	}
	if raw := c.QueryParam("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, errors.New("start_date must be YYYY-MM-DD")
		}
		filters.StartDate = &start
	}
	if raw := c.QueryParam("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filters, errors.New("end_date must be YYYY-MM-DD")
		}
		filters.EndDate = &end
	}
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filters, errors.New("limit must be an integer")
		}
		filters.Limit = limit
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return filters, errors.New("offset must be an integer")
		}
		filters.Offset = offset
	}

	return filters, nil
}

// writeError maps domain errors onto HTTP statuses while keeping the
// {success:false, error} envelope.
func (h *PaymentHandler) writeError(c echo.Context, err error) error {
	status := http.StatusInternalServerError

	var validationErr *domainErrors.ValidationError
	var transitionErr *domainErrors.InvalidTransitionError
	var regressionErr *domainErrors.AllocationRegressionError

	switch {
	case errors.As(err, &validationErr):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &transitionErr), errors.As(err, &regressionErr):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrDuplicateIdempotencyKey),
		errors.Is(err, domainErrors.ErrPaymentAlreadyAllocated):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrPaymentNotFound),
		errors.Is(err, domainErrors.ErrCustomerNotFound),
		errors.Is(err, domainErrors.ErrContractNotFound),
		errors.Is(err, domainErrors.ErrInvoiceNotFound):
		status = http.StatusNotFound
	default:
		h.logger.Error("payment request failed", zap.Error(err))
	}

	return c.JSON(status, echo.Map{
		"success": false,
		"error":   err.Error(),
	})
}
