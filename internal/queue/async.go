package queue

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/labstack/gommon/log"
)

// ErrBacklogFull is returned when the delivery backlog has no room left.
var ErrBacklogFull = errors.New("notification backlog full")

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("notification publisher closed")

// Sink is anything that delivers one event synchronously, e.g. *Publisher.
type Sink interface {
	Publish(ctx context.Context, ev Event) error
}

// AsyncPublisher takes delivery off the caller's path. Publish only
// enqueues; a single worker hands events to the sink, each bounded by
// Timeout. When the backlog is full new events are dropped.
type AsyncPublisher struct {
	sink    Sink
	logger  *log.Logger
	timeout time.Duration
	events  chan Event
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewAsyncPublisher starts the worker. backlog is the number of events that
// may wait for delivery; timeout bounds a single delivery.
func NewAsyncPublisher(sink Sink, backlog int, timeout time.Duration, logger *log.Logger) *AsyncPublisher {
	if backlog < 1 {
		backlog = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	a := &AsyncPublisher{
		sink:    sink,
		logger:  logger,
		timeout: timeout,
		events:  make(chan Event, backlog),
		done:    make(chan struct{}),
	}
	go a.run()
	return a
}

// Publish enqueues ev without blocking.
func (a *AsyncPublisher) Publish(_ context.Context, ev Event) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return ErrClosed
	}
	select {
	case a.events <- ev:
		return nil
	default:
		return ErrBacklogFull
	}
}

// Close stops accepting events and waits until the backlog is delivered or
// ctx is done.
func (a *AsyncPublisher) Close(ctx context.Context) error {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.events)
	}
	a.mu.Unlock()

	select {
	case <-a.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (a *AsyncPublisher) run() {
	defer close(a.done)
	for ev := range a.events {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		if err := a.sink.Publish(ctx, ev); err != nil {
			a.logger.Warnf("notification %s for %s dropped: %v", ev.Type, ev.RecordID, err)
		}
		cancel()
	}
}
