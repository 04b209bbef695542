package queue

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stalledSink blocks every delivery until release is closed, like a broker
// that accepts TCP connections but never answers.
type stalledSink struct {
	release  chan struct{}
	recorder Recorder
}

func (s *stalledSink) Publish(ctx context.Context, ev Event) error {
	<-s.release
	return s.recorder.Publish(ctx, ev)
}

func quiet() *log.Logger {
	l := log.New("test")
	l.SetOutput(io.Discard)
	return l
}

func TestAsyncPublisher_DoesNotWaitForSink(t *testing.T) {
	sink := &stalledSink{release: make(chan struct{})}
	a := NewAsyncPublisher(sink, 8, time.Second, quiet())

	start := time.Now()
	for _, id := range []string{"c-1", "c-2", "c-3"} {
		require.NoError(t, a.Publish(context.Background(), Event{Type: ContactReceived, RecordID: id}))
	}
	assert.Less(t, time.Since(start), 100*time.Millisecond)

	close(sink.release)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, a.Close(ctx))

	events := sink.recorder.Events()
	require.Len(t, events, 3)
	assert.Equal(t, "c-1", events[0].RecordID)
	assert.Equal(t, "c-3", events[2].RecordID)

	assert.ErrorIs(t, a.Publish(context.Background(), Event{Type: ContactReceived}), ErrClosed)
}

func TestAsyncPublisher_DropsWhenBacklogFull(t *testing.T) {
	sink := &stalledSink{release: make(chan struct{})}
	a := NewAsyncPublisher(sink, 1, time.Second, quiet())
	defer func() {
		close(sink.release)
		_ = a.Close(context.Background())
	}()

	// The worker holds at most one event; the backlog holds one more.
	var full error
	for range 5 {
		if err := a.Publish(context.Background(), Event{Type: ReviewPosted}); err != nil {
			full = err
		}
	}
	assert.ErrorIs(t, full, ErrBacklogFull)
}

func TestAsyncPublisher_CloseHonoursDeadline(t *testing.T) {
	sink := &stalledSink{release: make(chan struct{})}
	defer close(sink.release)
	a := NewAsyncPublisher(sink, 4, time.Second, quiet())
	require.NoError(t, a.Publish(context.Background(), Event{Type: ReviewPosted}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, a.Close(ctx), context.DeadlineExceeded)
}
