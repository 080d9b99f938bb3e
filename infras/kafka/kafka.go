package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"petcare/config"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// Message is one record to publish. Value is sent as JSON.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

// Encode renders the message for topic. Headers are written in key order.
func (m Message) Encode(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	headers := make([]kafkaGo.Header, 0, len(m.Headers))
	for _, key := range slices.Sorted(maps.Keys(m.Headers)) {
		headers = append(headers, kafkaGo.Header{Key: key, Value: []byte(m.Headers[key])})
	}

	return kafkaGo.Message{
		Topic:   topic,
		Key:     []byte(m.Key),
		Value:   value,
		Headers: headers,
	}, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
}

// New builds an asynchronous producer. The writer has no fixed topic, so each send names one.
// Delivery failures surface only in the completion log.
func New(cfg *config.Config) Client {
	transport := &kafkaGo.Transport{ClientID: cfg.App.Name}

	if sasl := cfg.Kafka.SASL; sasl.Username != "" {
		transport.SASL = plain.Mechanism{Username: sasl.Username, Password: sasl.Password}
	}

	writer := &kafkaGo.Writer{
		Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
		Transport:              transport,
		Balancer:               &kafkaGo.Hash{},
		RequiredAcks:           kafkaGo.RequireOne,
		BatchTimeout:           time.Duration(cfg.Kafka.BatchTimeoutMillis) * time.Millisecond,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion:             logDelivery,
	}

	log.Info().Strs("brokers", cfg.Kafka.Brokers).Bool("enabled", cfg.Kafka.Enable).Msg("Kafka producer ready.")

	return &kafkaClientImpl{writer: writer}
}

func logDelivery(messages []kafkaGo.Message, err error) {
	if err == nil {
		log.Debug().Int("count", len(messages)).Msg("Delivered messages to Kafka.")

		return
	}

	keys := make([]string, len(messages))
	for i, message := range messages {
		keys[i] = string(message.Key)
	}

	log.Error().Err(err).Strs("keys", keys).Msg("Failed to deliver messages to Kafka.")
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	records := make([]kafkaGo.Message, len(messages))

	for i, message := range messages {
		record, err := message.Encode(topic)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to encode Kafka message.")

			return err
		}

		records[i] = record
	}

	if err := k.writer.WriteMessages(ctx, records...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to queue Kafka messages.")

		return fmt.Errorf("failed to queue Kafka messages: %w", err)
	}

	return nil
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
