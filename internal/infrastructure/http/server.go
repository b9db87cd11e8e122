package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	handlers "github.com/fleetcore/payments/internal/adapter/handler/http"
	"github.com/fleetcore/payments/internal/config"
	"github.com/fleetcore/payments/internal/infrastructure/database"
	"github.com/fleetcore/payments/internal/logger"
	"github.com/fleetcore/payments/internal/messaging"
	"github.com/fleetcore/payments/internal/middleware/auth"
	"github.com/fleetcore/payments/internal/usecase"
)

type Server struct {
	config    *config.Config
	logger    *zap.Logger
	echo      *echo.Echo
	repos     *database.Repositories
	publisher messaging.EventPublisher
}

// CustomValidator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound requests.
type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

func NewServer(cfg *config.Config, log *zap.Logger, repos *database.Repositories, publisher messaging.EventPublisher) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}

	// Middleware
	e.Use(logger.NewEchoRequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PATCH, echo.DELETE},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, "X-Company-Id"},
	}))

	return &Server{
		config:    cfg,
		logger:    log,
		echo:      e,
		repos:     repos,
		publisher: publisher,
	}
}

func (s *Server) Start() error {
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Initialize handlers
	paymentService := usecase.NewPaymentService(s.repos.Payment, s.repos.Customer, s.repos.Contract, s.repos.Invoice, s.logger)
	if s.publisher != nil {
		paymentService = paymentService.WithEventPublisher(s.publisher)
	}
	paymentHandler := handlers.NewPaymentHandler(paymentService, s.logger)
	contractHandler := handlers.NewContractHandler(paymentService, s.logger)

	// JWT middleware configuration
	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
		SkipPaths: []string{
			"/health",
		},
	}

	// API v1 routes (all payment operations require authentication)
	v1 := s.echo.Group("/api/v1", auth.JWTMiddleware(jwtConfig))

	payments := v1.Group("/payments")
	payments.POST("", paymentHandler.CreatePayment)
	payments.POST("/validate", paymentHandler.ValidatePayment)
	payments.GET("", paymentHandler.ListPayments)
	payments.GET("/:id", paymentHandler.GetPayment)
	payments.POST("/:id/process", paymentHandler.ProcessPayment)
	payments.POST("/:id/allocate", paymentHandler.AllocatePayment)
	payments.PATCH("/:id/status", paymentHandler.UpdatePaymentStatus)

	v1.GET("/contracts/:id/payments", contractHandler.ListContractPayments)
}
