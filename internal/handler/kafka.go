package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/storefront-orders/internal/config"
	"github.com/SergeyBogomolovv/storefront-orders/internal/entities"
	"github.com/SergeyBogomolovv/storefront-orders/internal/notify"
	"github.com/SergeyBogomolovv/storefront-orders/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type Mailer interface {
	SendOrderConfirmation(ctx context.Context, e entities.OrderPlacedEvent) error
}

var errInvalidMessage = errors.New("invalid order event")

type kafkaHandler struct {
	dlq      *kafka.Writer
	reader   *kafka.Reader
	logger   *slog.Logger
	validate *validator.Validate
	mailer   Mailer
	retry    utils.RetryConfig
}

// NewKafkaHandler consumes order placed events and sends confirmation emails.
func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, mailer Mailer) *kafkaHandler {
	return &kafkaHandler{
		logger: logger.With(slog.String("handler", "kafka")),
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.NotificationTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		dlq: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		validate: validator.New(),
		mailer:   mailer,
		retry: utils.RetryConfig{
			MaxAttempts:  3,
			InitialDelay: 200 * time.Millisecond,
			MaxDelay:     2 * time.Second,
			Multiplier:   2,
		},
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			} else {
				h.logger.Error("failed to fetch message", slog.Any("error", err))
				continue
			}
		}

		start := time.Now()
		notificationsInProgress.Inc()

		if err := h.handleOrderPlaced(ctx, m); err != nil {
			notificationsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.String("key", string(m.Key)))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				notificationsInProgress.Dec()
				continue
			}
			notificationsDLQ.Inc()
		} else {
			notificationsProcessed.Inc()
		}

		notificationDuration.Observe(time.Since(start).Seconds())
		notificationsInProgress.Dec()

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleOrderPlaced(ctx context.Context, m kafka.Message) error {
	var msg notify.OrderPlacedMessage
	if err := json.Unmarshal(m.Value, &msg); err != nil {
		return fmt.Errorf("%w: %w", errInvalidMessage, err)
	}

	if err := h.validate.Struct(msg); err != nil {
		return fmt.Errorf("%w: %w", errInvalidMessage, err)
	}

	event := notify.MessageToEvent(msg)
	return utils.Retry(ctx, h.retry, func() error {
		return h.mailer.SendOrderConfirmation(ctx, event)
	})
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
