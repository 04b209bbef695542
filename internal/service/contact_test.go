package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/queue"
	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

func TestContactService_CreateAndGet(t *testing.T) {
	rec := &queue.Recorder{}
	svc := NewContactService(store.NewMemoryCollection[model.Contact](), rec, quietLogger())
	ctx := context.Background()

	c, err := svc.Create(ctx, model.ContactInput{Name: "Anne", Email: "anne@example.com", Subject: "Privatisation", Message: "Bonjour"})
	require.NoError(t, err)
	assert.Equal(t, model.ContactNew, c.Status)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, *c, *got)

	events := rec.Events()
	require.Len(t, events, 1)
	assert.Equal(t, queue.ContactReceived, events[0].Type)
	assert.Equal(t, "Privatisation", events[0].Summary)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestContactService_ListNewestFirst(t *testing.T) {
	coll := store.NewMemoryCollection[model.Contact]()
	svc := NewContactService(coll, nil, quietLogger())
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, coll.InsertMany(ctx, []model.Contact{
		{ID: "mid", CreatedAt: base.Add(time.Hour), Status: model.ContactNew},
		{ID: "old", CreatedAt: base, Status: model.ContactNew},
		{ID: "new", CreatedAt: base.Add(48 * time.Hour), Status: model.ContactRead},
	}))

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "new", list[0].ID)
	assert.Equal(t, "mid", list[1].ID)
	assert.Equal(t, "old", list[2].ID)
}

func TestContactService_UpdateStatus(t *testing.T) {
	svc := NewContactService(store.NewMemoryCollection[model.Contact](), queue.Discard{}, quietLogger())
	ctx := context.Background()
	c, err := svc.Create(ctx, model.ContactInput{Name: "Anne", Email: "anne@example.com", Subject: "s", Message: "m"})
	require.NoError(t, err)

	require.NoError(t, svc.UpdateStatus(ctx, c.ID, model.ContactResponded))
	require.NoError(t, svc.UpdateStatus(ctx, c.ID, model.ContactNew))

	var enum *InvalidEnumError
	assert.ErrorAs(t, svc.UpdateStatus(ctx, c.ID, "archived"), &enum)
	assert.ErrorIs(t, svc.UpdateStatus(ctx, "missing", model.ContactRead), ErrNotFound)

	got, err := svc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ContactNew, got.Status)
	assert.Equal(t, "Anne", got.Name)
}

func TestContactService_ListBackToBackCreates(t *testing.T) {
	svc := NewContactService(store.NewMemoryCollection[model.Contact](), nil, quietLogger())
	ctx := context.Background()

	a, err := svc.Create(ctx, model.ContactInput{Name: "A", Email: "a@example.com", Subject: "first", Message: "m"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, model.ContactInput{Name: "B", Email: "b@example.com", Subject: "second", Message: "m"})
	require.NoError(t, err)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}

// stalledSink never returns until release is closed.
type stalledSink struct{ release chan struct{} }

func (s stalledSink) Publish(context.Context, queue.Event) error {
	<-s.release
	return nil
}

func TestContactService_CreateDoesNotWaitForBroker(t *testing.T) {
	sink := stalledSink{release: make(chan struct{})}
	notifier := queue.NewAsyncPublisher(sink, 16, time.Second, quietLogger())
	defer func() {
		close(sink.release)
		_ = notifier.Close(context.Background())
	}()
	svc := NewContactService(store.NewMemoryCollection[model.Contact](), notifier, quietLogger())

	start := time.Now()
	_, err := svc.Create(context.Background(), model.ContactInput{Name: "A", Email: "a@example.com", Subject: "s", Message: "m"})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 200*time.Millisecond)
}
