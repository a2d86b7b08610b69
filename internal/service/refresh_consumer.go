package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"restaurant-analytics/internal/domain"

	"github.com/segmentio/kafka-go"
)

var readRetryDelay = time.Second

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// RefreshConsumer invalidates the snapshot whenever a dataset_updated
// message arrives, so the next request reloads instead of waiting out the TTL.
type RefreshConsumer struct {
	Reader MessageReader
	Store  SnapshotInvalidator
}

func NewRefreshConsumer(reader MessageReader, store SnapshotInvalidator) *RefreshConsumer {
	return &RefreshConsumer{
		Reader: reader,
		Store:  store,
	}
}

// Start blocks until ctx is cancelled.
func (c *RefreshConsumer) Start(ctx context.Context) {
	log.Println("Starting dataset refresh consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				log.Println("Dataset refresh consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(readRetryDelay):
			}
			continue
		}

		var msg domain.RefreshMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessMessage(ctx, msg)
	}
}

func (c *RefreshConsumer) ProcessMessage(ctx context.Context, msg domain.RefreshMessage) {
	if msg.Type != domain.DatasetUpdatedMessage {
		return
	}
	log.Printf("Dataset updated by %q at %s, invalidating snapshot", msg.Source, msg.Timestamp.Format("2006-01-02T15:04:05Z07:00"))

	if err := c.Store.Invalidate(ctx); err != nil {
		log.Printf("ERROR: invalidating snapshot: %v", err)
	}
}
