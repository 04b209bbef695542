package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

func seededMenu(t *testing.T) (*MenuService, *store.MemoryCollection[model.MenuItem]) {
	t.Helper()
	coll := store.NewMemoryCollection[model.MenuItem]()
	reviews := store.NewMemoryCollection[model.Review]()
	require.NoError(t, Seed(context.Background(), coll, reviews, quietLogger()))
	return NewMenuService(coll, quietLogger()), coll
}

func menuIDs(items []model.MenuItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func TestMenuService_ListFilters(t *testing.T) {
	svc, _ := seededMenu(t)
	ctx := context.Background()

	all, err := svc.List(ctx, "", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, menuIDs(all))

	mains, err := svc.List(ctx, "Plats principaux", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, menuIDs(mains))

	none, err := svc.List(ctx, "plats principaux", true)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMenuService_SetAvailabilityAffectsListing(t *testing.T) {
	svc, _ := seededMenu(t)
	ctx := context.Background()

	require.NoError(t, svc.SetAvailability(ctx, "3", false))

	available, err := svc.List(ctx, "", true)
	require.NoError(t, err)
	assert.NotContains(t, menuIDs(available), "3")

	everything, err := svc.List(ctx, "", false)
	require.NoError(t, err)
	assert.Contains(t, menuIDs(everything), "3")

	assert.ErrorIs(t, svc.SetAvailability(ctx, "42", false), ErrNotFound)
}

func TestMenuService_SetAvailabilityIdempotent(t *testing.T) {
	svc, _ := seededMenu(t)
	ctx := context.Background()

	require.NoError(t, svc.SetAvailability(ctx, "2", true))
	once, err := svc.Get(ctx, "2")
	require.NoError(t, err)
	require.NoError(t, svc.SetAvailability(ctx, "2", true))
	twice, err := svc.Get(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestMenuService_Categories(t *testing.T) {
	svc, _ := seededMenu(t)
	cats, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Plats principaux", "Poissons", "Spécialités", "Enfants"}, cats)
}

func TestMenuService_CreateUpdateDelete(t *testing.T) {
	svc, _ := seededMenu(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, model.MenuItemInput{Name: "Tarte Tatin", Description: "crème fraîche", Price: "8€", Category: "Desserts"})
	require.NoError(t, err)
	assert.True(t, created.Available)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)

	off := false
	updated, err := svc.Update(ctx, created.ID, model.MenuItemInput{Name: "Tarte Tatin maison", Description: "glace vanille", Price: "9€", Category: "Desserts", Available: &off, ImageURL: "https://example.com/tatin.jpg"})
	require.NoError(t, err)
	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got)
	assert.Equal(t, created.ID, got.ID)
	assert.False(t, got.Available)

	_, err = svc.Update(ctx, "missing", model.MenuItemInput{Name: "x", Description: "x", Price: "1€", Category: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrNotFound)
}

func TestSeed_SkipsNonEmptyCollections(t *testing.T) {
	ctx := context.Background()
	menu := store.NewMemoryCollection[model.MenuItem]()
	reviews := store.NewMemoryCollection[model.Review]()
	require.NoError(t, menu.InsertOne(ctx, model.MenuItem{ID: "own", Name: "Soupe", Category: "Entrées", Available: true}))

	require.NoError(t, Seed(ctx, menu, reviews, quietLogger()))
	require.NoError(t, Seed(ctx, menu, reviews, quietLogger()))

	n, err := menu.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = reviews.CountAll(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(SeedReviews()), n)
}

func TestSeed_StoreDown(t *testing.T) {
	err := Seed(context.Background(), brokenCollection[model.MenuItem]{}, brokenCollection[model.Review]{}, quietLogger())
	var perr *PersistenceError
	assert.ErrorAs(t, err, &perr)
}
