package journal

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/egannguyen/supplement-store/internal/entity"
)

func TestAppendAndLoad(t *testing.T) {
	j := NewMemoryJournal()
	ctx := context.Background()

	created := entity.OrderCreated{OrderID: "o1", OrderNumber: "ORD-1-001", Total: 59.98}
	updated := entity.OrderStatusUpdated{OrderID: "o1", OldStatus: entity.OrderStatusPending, NewStatus: entity.OrderStatusShipped}

	require.NoError(t, j.Append(ctx, "o1", "order", []entity.Event{created}))
	require.NoError(t, j.Append(ctx, "o1", "order", []entity.Event{updated}))

	records, err := j.Load(ctx, "o1")
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "OrderCreated", records[0].EventType)
	assert.Equal(t, 1, records[0].Version)
	assert.Equal(t, "order", records[0].StreamType)
	assert.NotEmpty(t, records[0].ID)

	assert.Equal(t, "OrderStatusUpdated", records[1].EventType)
	assert.Equal(t, 2, records[1].Version)

	var payload entity.OrderStatusUpdated
	require.NoError(t, json.Unmarshal(records[1].Payload, &payload))
	assert.Equal(t, entity.OrderStatusShipped, payload.NewStatus)
}

func TestStreamsAreIsolated(t *testing.T) {
	j := NewMemoryJournal()
	ctx := context.Background()

	require.NoError(t, j.Append(ctx, "o1", "order", []entity.Event{entity.OrderCreated{OrderID: "o1"}}))

	records, err := j.Load(ctx, "o2")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestLoadReturnsSnapshot(t *testing.T) {
	j := NewMemoryJournal()
	ctx := context.Background()

	require.NoError(t, j.Append(ctx, "o1", "order", []entity.Event{entity.OrderCreated{OrderID: "o1"}}))

	records, err := j.Load(ctx, "o1")
	require.NoError(t, err)
	records[0].EventType = "mutated"

	fresh, err := j.Load(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, "OrderCreated", fresh[0].EventType)
}
