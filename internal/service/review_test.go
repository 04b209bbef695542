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

func newReviewService(t *testing.T) (*ReviewService, *store.MemoryCollection[model.Review]) {
	t.Helper()
	coll := store.NewMemoryCollection[model.Review]()
	return NewReviewService(coll, queue.Discard{}, quietLogger()), coll
}

func TestReviewService_CreateIsApproved(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()

	r, err := svc.Create(ctx, model.ReviewInput{Name: "Test", Rating: 4, Comment: "Très bon"})
	require.NoError(t, err)
	assert.True(t, r.Approved)
	assert.Equal(t, 4, r.Rating)
	assert.Empty(t, r.Email)

	got, err := svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, *r, *got)
}

func TestReviewService_ListApprovedOnlyIsSubset(t *testing.T) {
	svc, coll := newReviewService(t)
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, coll.InsertMany(ctx, []model.Review{
		{ID: "old", Name: "A", Rating: 5, Comment: "x", Approved: true, CreatedAt: base},
		{ID: "hidden", Name: "B", Rating: 1, Comment: "x", Approved: false, CreatedAt: base.Add(time.Hour)},
		{ID: "new", Name: "C", Rating: 4, Comment: "x", Approved: true, CreatedAt: base.Add(2 * time.Hour)},
	}))

	public, err := svc.List(ctx, true)
	require.NoError(t, err)
	all, err := svc.List(ctx, false)
	require.NoError(t, err)

	var publicIDs, allIDs []string
	for _, r := range public {
		assert.True(t, r.Approved)
		publicIDs = append(publicIDs, r.ID)
	}
	for _, r := range all {
		allIDs = append(allIDs, r.ID)
	}
	assert.Equal(t, []string{"new", "old"}, publicIDs)
	assert.Equal(t, []string{"new", "hidden", "old"}, allIDs)
	assert.Subset(t, allIDs, publicIDs)
}

func TestReviewService_SetApproval(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()
	r, err := svc.Create(ctx, model.ReviewInput{Name: "Test", Rating: 2, Comment: "Bof"})
	require.NoError(t, err)

	require.NoError(t, svc.SetApproval(ctx, r.ID, false))
	require.NoError(t, svc.SetApproval(ctx, r.ID, false))
	public, err := svc.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, public)

	require.NoError(t, svc.SetApproval(ctx, r.ID, true))
	got, err := svc.Get(ctx, r.ID)
	require.NoError(t, err)
	assert.True(t, got.Approved)

	assert.ErrorIs(t, svc.SetApproval(ctx, "missing", true), ErrNotFound)
}

func TestReviewService_Delete(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()
	r, err := svc.Create(ctx, model.ReviewInput{Name: "Test", Rating: 5, Comment: "Top"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, r.ID))
	_, err = svc.Get(ctx, r.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, r.ID), ErrNotFound)
}

func TestReviewService_ListBackToBackCreates(t *testing.T) {
	svc, _ := newReviewService(t)
	ctx := context.Background()

	a, err := svc.Create(ctx, model.ReviewInput{Name: "A", Rating: 5, Comment: "first"})
	require.NoError(t, err)
	b, err := svc.Create(ctx, model.ReviewInput{Name: "B", Rating: 4, Comment: "second"})
	require.NoError(t, err)

	list, err := svc.List(ctx, true)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, b.ID, list[0].ID)
	assert.Equal(t, a.ID, list[1].ID)
}
