package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/SumitSharma2000/Car-Wash-APP/internal/logger"
)

// ActorAnonymous marks events from unauthenticated endpoints.
const ActorAnonymous = "anonymous"

// Event is one audit record. Actor is an email or "anonymous".
type Event struct {
	Actor    string
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Writer persists one event.
type Writer interface {
	Log(ctx context.Context, ev Event) error
}

// Dispatcher writes events on a background goroutine. Dispatch never blocks:
// when the buffer is full the event is dropped.
type Dispatcher struct {
	writer Writer
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(writer Writer) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.writer.Log(context.Background(), ev); err != nil {
			logger.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch is safe on a nil Dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		logger.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close drains the queue and waits for the worker. Events dispatched after
// Close panic, so callers close only on shutdown.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}
