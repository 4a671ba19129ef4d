package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/models"
	"github.com/SumitSharma2000/Car-Wash-APP/internal/testdb"
)

type memoryWriter struct {
	mu     sync.Mutex
	events []Event
}

func (w *memoryWriter) Log(_ context.Context, ev Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.events = append(w.events, ev)
	return nil
}

func TestDispatcher_DeliversAndDrainsOnClose(t *testing.T) {
	w := &memoryWriter{}
	d := NewDispatcher(w)

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Actor: "a@b.com", Action: "booking_created"})
	}
	d.Close()
	d.Close()

	assert.Len(t, w.events, 10)
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "x"})
		d.Close()
	})
}

func TestLogger_WritesRow(t *testing.T) {
	db := testdb.Open(t)
	l := New(db)

	id := uint(42)
	require.NoError(t, l.Log(context.Background(), Event{
		Actor:    "jane@example.com",
		Action:   "booking_provider_assigned",
		Entity:   "booking",
		EntityID: &id,
		Metadata: map[string]any{"providerId": 200},
	}))

	var rows []models.AuditLog
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "booking_provider_assigned", rows[0].Action)
	assert.Equal(t, "jane@example.com", rows[0].Actor)
	require.NotNil(t, rows[0].EntityID)
	assert.Equal(t, uint(42), *rows[0].EntityID)
	assert.JSONEq(t, `{"providerId":200}`, rows[0].Metadata)
}
