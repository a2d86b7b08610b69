package domain

import "time"

const (
	RefreshTopic          = "dataset-updates"
	DatasetUpdatedMessage = "dataset_updated"
)

// RefreshMessage announces that the underlying dataset has been rewritten.
type RefreshMessage struct {
	Type      string    `json:"type"`
	Source    string    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
}
