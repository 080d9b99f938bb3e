package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"
	"petcare/config"
	"petcare/infras/kafka"
	"petcare/infras/otel"
	"petcare/internal/domains/booking/model"
	"petcare/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

type Type string

const (
	headerEventType = "event-type"
	headerKind      = "kind"
)

const (
	TypeCreated          Type = "booking.created"
	TypeConfirmed        Type = "booking.confirmed"
	TypeStatusOverridden Type = "booking.status_overridden"
)

// Event is what subscribers of the booking topic receive. The message key is the reference
// number, so every event for one booking lands on the same partition.
type Event struct {
	Type           Type         `json:"type"`
	Kind           model.Kind   `json:"kind"`
	Reference      string       `json:"reference"`
	Status         model.Status `json:"status"`
	PreviousStatus model.Status `json:"previousStatus,omitempty"`
	Timestamp      time.Time    `json:"timestamp"`
}

func New(eventType Type, kind model.Kind, core model.Core, at time.Time) Event {
	return Event{
		Type:      eventType,
		Kind:      kind,
		Reference: core.ReferenceNumber,
		Status:    core.Status,
		Timestamp: at,
	}
}

type Publisher interface {
	Publish(ctx context.Context, events ...Event) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

// NewPublisher returns a publisher that drops events unless Kafka is enabled.
func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, events ...Event) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !p.cfg.Kafka.Enable || p.client == nil || len(events) == 0 {
		return nil
	}

	messages := make([]kafka.Message, len(events))
	for i, e := range events {
		messages[i] = kafka.Message{
			Key:     e.Reference,
			Value:   e,
			Headers: map[string]string{headerEventType: string(e.Type), headerKind: string(e.Kind)},
		}
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.Topic, messages...); err != nil {
		log.Error().Err(err).Str("topic", p.cfg.Kafka.Topic).Msg("failed to publish booking events")

		return fmt.Errorf("failed to publish booking events: %w", err)
	}

	return nil
}
