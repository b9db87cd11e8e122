package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/fleetcore/payments/internal/domain/model"
)

// PaymentEventsChannel is the pub/sub channel downstream consumers
// (notifications, reporting) subscribe to.
const PaymentEventsChannel = "payments.events"

// PaymentEvent is the message published when a payment changes state.
// Amounts travel as strings to preserve decimal precision.
type PaymentEvent struct {
	Type          model.NotificationType `json:"type"`
	CompanyID     string                 `json:"company_id"`
	PaymentID     int64                  `json:"payment_id"`
	PaymentNumber string                 `json:"payment_number"`
	Amount        string                 `json:"amount"`
	Currency      string                 `json:"currency"`
	OccurredAt    time.Time              `json:"occurred_at"`
}

// EventPublisher publishes payment lifecycle events. Publishing is best
// effort; a delivery failure never fails the payment operation itself.
type EventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event PaymentEvent) error
	Close() error
}

type redisPublisher struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisPublisher connects to Redis and returns a publisher for payment
// events.
func NewRedisPublisher(addr, password string, db int, logger *zap.Logger) (EventPublisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Connected to Redis", zap.String("addr", addr))
	return &redisPublisher{client: client, logger: logger}, nil
}

func (p *redisPublisher) PublishPaymentEvent(ctx context.Context, event PaymentEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	if err := p.client.Publish(ctx, PaymentEventsChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}

	p.logger.Debug("published payment event",
		zap.String("type", string(event.Type)),
		zap.Int64("payment_id", event.PaymentID))
	return nil
}

func (p *redisPublisher) Close() error {
	return p.client.Close()
}
