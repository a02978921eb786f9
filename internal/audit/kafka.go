package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	id "vigia/pkg/domain"
)

// KafkaSink publishes stored audit events to a Kafka topic, keyed by
// coordinator so per-coordinator ordering is preserved within a partition.
type KafkaSink struct {
	client *kgo.Client
	topic  string
}

func NewKafkaSink(brokers []string, topic string) (*KafkaSink, error) {
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.ProducerBatchCompression(kgo.SnappyCompression()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &KafkaSink{client: client, topic: topic}, nil
}

// kafkaPayload is the wire form consumed downstream.
type kafkaPayload struct {
	ID            string         `json:"id"`
	CoordinatorID string         `json:"coordinator_id"`
	Action        string         `json:"action"`
	Details       map[string]any `json:"details,omitempty"`
	RequestID     string         `json:"request_id,omitempty"`
	Timestamp     string         `json:"timestamp"`
}

func (s *KafkaSink) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(kafkaPayload{
		ID:            event.ID.String(),
		CoordinatorID: event.CoordinatorID.String(),
		Action:        string(event.Action),
		Details:       event.Details,
		RequestID:     event.RequestID,
		Timestamp:     event.Timestamp.Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}

	record := &kgo.Record{
		Key:   key(event.CoordinatorID),
		Value: payload,
		Topic: s.topic,
	}
	if err := s.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce audit event: %w", err)
	}
	return nil
}

func (s *KafkaSink) Close() {
	s.client.Close()
}

func key(coordinatorID id.CoordinatorID) []byte {
	if coordinatorID.IsNil() {
		return nil
	}
	return []byte(coordinatorID.String())
}
