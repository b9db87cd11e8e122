package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	handlers "github.com/fleetcore/payments/internal/adapter/handler/http"
	"github.com/fleetcore/payments/internal/domain/dto"
	domainErrors "github.com/fleetcore/payments/internal/domain/errors"
	"github.com/fleetcore/payments/internal/domain/model"
	"github.com/fleetcore/payments/internal/middleware/auth"
	"github.com/fleetcore/payments/internal/usecase"
)

const testSecret = "test-secret"

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// MockPaymentRepository is a mock implementation of PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Payment, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *model.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) List(ctx context.Context, companyID uuid.UUID, filters dto.PaymentFilters) ([]*model.Payment, error) {
	args := m.Called(ctx, companyID, filters)
	return args.Get(0).([]*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Count(ctx context.Context, companyID uuid.UUID, filters dto.PaymentFilters) (int64, error) {
	args := m.Called(ctx, companyID, filters)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPaymentRepository) ListByContract(ctx context.Context, companyID uuid.UUID, contractID int64) ([]*model.Payment, error) {
	args := m.Called(ctx, companyID, contractID)
	return args.Get(0).([]*model.Payment), args.Error(1)
}

func (m *MockPaymentRepository) AllocateToContract(ctx context.Context, companyID uuid.UUID, paymentID, contractID int64) (*dto.AllocationOutcome, error) {
	args := m.Called(ctx, companyID, paymentID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AllocationOutcome), args.Error(1)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Customer, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Exists(ctx context.Context, companyID uuid.UUID, id int64) (bool, error) {
	args := m.Called(ctx, companyID, id)
	return args.Get(0).(bool), args.Error(1)
}

// MockContractRepository is a mock implementation of ContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Contract, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contract), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) GetByID(ctx context.Context, companyID uuid.UUID, id int64) (*model.Invoice, error) {
	args := m.Called(ctx, companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

type handlerFixture struct {
	echo      *echo.Echo
	handler   *handlers.PaymentHandler
	payments  *MockPaymentRepository
	customers *MockCustomerRepository
	invoices  *MockInvoiceRepository
	companyID uuid.UUID
}

func newHandlerFixture() *handlerFixture {
	e := echo.New()
	e.Validator = &requestValidator{validate: validator.New()}

	payments := new(MockPaymentRepository)
	customers := new(MockCustomerRepository)
	contracts := new(MockContractRepository)
	invoices := new(MockInvoiceRepository)
	service := usecase.NewPaymentService(payments, customers, contracts, invoices, zap.NewNop())

	return &handlerFixture{
		echo:      e,
		handler:   handlers.NewPaymentHandler(service, zap.NewNop()),
		payments:  payments,
		customers: customers,
		invoices:  invoices,
		companyID: uuid.New(),
	}
}

func (f *handlerFixture) signToken() string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   uuid.NewString(),
		"email": "teller@example.com",
		"role":  "accountant",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, _ := token.SignedString([]byte(testSecret))
	return signed
}

// do runs the handler behind the JWT middleware so the company scope is
// resolved exactly as it is in production.
func (f *handlerFixture) do(method, path, body string, handlerFunc echo.HandlerFunc, pathParam string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("Authorization", "Bearer "+f.signToken())
	req.Header.Set("X-Company-Id", f.companyID.String())
	rec := httptest.NewRecorder()

	c := f.echo.NewContext(req, rec)
	if pathParam != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathParam)
	}

	middleware := auth.JWTMiddleware(auth.JWTConfig{Secret: testSecret, Logger: zap.NewNop()})
	if err := middleware(handlerFunc)(c); err != nil {
		f.echo.HTTPErrorHandler(err, c)
	}
	return rec
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	t.Run("valid request returns 201 with the payment", func(t *testing.T) {
		f := newHandlerFixture()
		f.customers.On("Exists", mock.Anything, f.companyID, int64(42)).Return(true, nil)
		f.payments.On("Create", mock.Anything, mock.AnythingOfType("*model.Payment")).Run(func(args mock.Arguments) {
			p := args.Get(1).(*model.Payment)
			p.ID = 1
			p.PaymentNumber = "PAY-2026-000001"
		}).Return(nil)

		body := `{"customer_id":42,"amount":"150.00","payment_date":"2026-08-01","payment_method":"cash"}`
		rec := f.do(http.MethodPost, "/api/v1/payments", body, f.handler.CreatePayment, "")

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":true`)
		assert.Contains(t, rec.Body.String(), "PAY-2026-000001")
	})

	t.Run("validation failures return 422 with every violation", func(t *testing.T) {
		f := newHandlerFixture()
		f.customers.On("Exists", mock.Anything, f.companyID, int64(42)).Return(false, nil)

		body := `{"customer_id":42,"amount":"-5","payment_date":"2026-08-01","payment_method":"cash"}`
		rec := f.do(http.MethodPost, "/api/v1/payments", body, f.handler.CreatePayment, "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Payment amount must be positive")
		assert.Contains(t, rec.Body.String(), "Customer not found")
	})

	t.Run("unknown invoice reference returns 422", func(t *testing.T) {
		f := newHandlerFixture()
		f.customers.On("Exists", mock.Anything, f.companyID, int64(42)).Return(true, nil)
		f.invoices.On("GetByID", mock.Anything, f.companyID, int64(999999)).
			Return(nil, domainErrors.ErrInvoiceNotFound)

		body := `{"customer_id":42,"amount":"150.00","payment_date":"2026-08-01","payment_method":"cash","invoice_id":999999}`
		rec := f.do(http.MethodPost, "/api/v1/payments", body, f.handler.CreatePayment, "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invoice not found")
		f.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("reused idempotency key returns 409", func(t *testing.T) {
		f := newHandlerFixture()
		f.customers.On("Exists", mock.Anything, f.companyID, int64(42)).Return(true, nil)
		f.payments.On("Create", mock.Anything, mock.AnythingOfType("*model.Payment")).
			Return(domainErrors.ErrDuplicateIdempotencyKey)

		body := `{"customer_id":42,"amount":"150.00","payment_date":"2026-08-01","payment_method":"cash","idempotency_key":"order-7"}`
		rec := f.do(http.MethodPost, "/api/v1/payments", body, f.handler.CreatePayment, "")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
	})
}

func TestPaymentHandler_GetPayment(t *testing.T) {
	t.Run("unknown payment returns 404", func(t *testing.T) {
		f := newHandlerFixture()
		f.payments.On("GetByID", mock.Anything, f.companyID, int64(99)).
			Return(nil, domainErrors.ErrPaymentNotFound)

		rec := f.do(http.MethodGet, "/api/v1/payments/99", "", f.handler.GetPayment, "99")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		f := newHandlerFixture()

		rec := f.do(http.MethodGet, "/api/v1/payments/abc", "", f.handler.GetPayment, "abc")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandler_UpdatePaymentStatus(t *testing.T) {
	t.Run("illegal transition returns 409", func(t *testing.T) {
		f := newHandlerFixture()
		payment := &model.Payment{
			ID:               7,
			CompanyID:        f.companyID,
			Status:           model.PaymentStatusPending,
			ProcessingStatus: model.ProcessingStatusNew,
		}
		f.payments.On("GetByID", mock.Anything, f.companyID, int64(7)).Return(payment, nil)

		body := `{"payment_status":"completed"}`
		rec := f.do(http.MethodPatch, "/api/v1/payments/7/status", body, f.handler.UpdatePaymentStatus, "7")

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid state transition")
		f.payments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestPaymentHandler_AllocatePayment(t *testing.T) {
	t.Run("already allocated payment returns 409", func(t *testing.T) {
		f := newHandlerFixture()
		f.payments.On("AllocateToContract", mock.Anything, f.companyID, int64(5), int64(3)).
			Return(nil, domainErrors.ErrPaymentAlreadyAllocated)

		body := `{"contract_id":3}`
		rec := f.do(http.MethodPost, "/api/v1/payments/5/allocate", body, f.handler.AllocatePayment, "5")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestPaymentHandler_ListPayments(t *testing.T) {
	t.Run("unknown status filter returns 400", func(t *testing.T) {
		f := newHandlerFixture()

		rec := f.do(http.MethodGet, "/api/v1/payments?status=settled", "", f.handler.ListPayments, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "unknown payment status filter")
	})
}
