package storage

import (
	"context"
	"encoding/json"
	"time"

	"restaurant-analytics/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaNotifier tells running servers that the dataset changed.
type KafkaNotifier struct {
	Writer MessageWriter
}

func NewKafkaNotifier(writer MessageWriter) *KafkaNotifier {
	return &KafkaNotifier{Writer: writer}
}

func (p *KafkaNotifier) PublishDatasetUpdated(ctx context.Context, source string) error {
	payload, err := json.Marshal(domain.RefreshMessage{
		Type:      domain.DatasetUpdatedMessage,
		Source:    source,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(source),
		Value: payload,
	})
}
