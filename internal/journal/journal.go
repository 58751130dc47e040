// Package journal keeps an append-only record of domain events per stream.
// It is the in-memory audit trail behind each order; state is discarded on
// process restart along with the rest of the store.
package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/egannguyen/supplement-store/internal/entity"
)

// EventRecord is a single journaled event.
type EventRecord struct {
	ID         string    `json:"id"`
	StreamID   string    `json:"stream_id"`
	StreamType string    `json:"stream_type"`
	Version    int       `json:"version"`
	EventType  string    `json:"event_type"`
	Payload    []byte    `json:"payload"`
	CreatedAt  time.Time `json:"created_at"`
}

// Journal appends and loads event records for a stream.
type Journal interface {
	Append(ctx context.Context, streamID string, streamType string, events []entity.Event) error
	Load(ctx context.Context, streamID string) ([]EventRecord, error)
}

type memoryJournal struct {
	mu      sync.Mutex
	streams map[string][]EventRecord
}

// NewMemoryJournal creates an empty in-memory journal.
func NewMemoryJournal() Journal {
	return &memoryJournal{streams: make(map[string][]EventRecord)}
}

func (j *memoryJournal) Append(ctx context.Context, streamID string, streamType string, events []entity.Event) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	stream := j.streams[streamID]
	for _, e := range events {
		payload, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("failed to marshal %s event: %w", e.EventType(), err)
		}
		stream = append(stream, EventRecord{
			ID:         uuid.New().String(),
			StreamID:   streamID,
			StreamType: streamType,
			Version:    len(stream) + 1,
			EventType:  e.EventType(),
			Payload:    payload,
			CreatedAt:  time.Now(),
		})
	}
	j.streams[streamID] = stream
	return nil
}

func (j *memoryJournal) Load(ctx context.Context, streamID string) ([]EventRecord, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	stream := j.streams[streamID]
	out := make([]EventRecord, len(stream))
	copy(out, stream)
	return out, nil
}
