package service

import (
	"context"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

// MenuService manages menu items.
type MenuService struct {
	coll   store.Collection[model.MenuItem]
	logger *log.Logger
}

// NewMenuService builds the manager.
func NewMenuService(coll store.Collection[model.MenuItem], logger *log.Logger) *MenuService {
	return &MenuService{coll: coll, logger: logger}
}

// List filters by exact category when category is non-empty, and hides
// unavailable items unless availableOnly is false.
func (s *MenuService) List(ctx context.Context, category string, availableOnly bool) ([]model.MenuItem, error) {
	filter := store.Filter{}
	if availableOnly {
		filter["available"] = true
	}
	if category != "" {
		filter["category"] = category
	}
	out, err := s.coll.FindMany(ctx, filter, nil, ListLimit)
	if err != nil {
		return nil, storeError(s.logger, "list menu items", err)
	}
	return out, nil
}

// Categories returns the distinct categories currently on the menu.
func (s *MenuService) Categories(ctx context.Context) ([]string, error) {
	out, err := s.coll.Distinct(ctx, "category")
	if err != nil {
		return nil, storeError(s.logger, "list menu categories", err)
	}
	return out, nil
}

// Get returns item id or ErrNotFound.
func (s *MenuService) Get(ctx context.Context, id string) (*model.MenuItem, error) {
	item, err := s.coll.FindOne(ctx, store.ByID(id))
	if err != nil {
		return nil, storeError(s.logger, "get menu item", err)
	}
	return &item, nil
}

// Create stores a new item; Available defaults to true.
func (s *MenuService) Create(ctx context.Context, in model.MenuItemInput) (*model.MenuItem, error) {
	item := model.MenuItem{
		ID:          model.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Available:   in.IsAvailable(),
		ImageURL:    in.ImageURL,
	}
	if err := s.coll.InsertOne(ctx, item); err != nil {
		return nil, storeError(s.logger, "insert menu item", err)
	}
	s.logger.Infof("menu item created: %s", item.ID)
	return &item, nil
}

// Update replaces every field of item id except the id itself.
func (s *MenuService) Update(ctx context.Context, id string, in model.MenuItemInput) (*model.MenuItem, error) {
	item := model.MenuItem{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Available:   in.IsAvailable(),
		ImageURL:    in.ImageURL,
	}
	set := store.Set{
		"name":        item.Name,
		"description": item.Description,
		"price":       item.Price,
		"category":    item.Category,
		"available":   item.Available,
		"image_url":   item.ImageURL,
	}
	if err := s.coll.UpdateOne(ctx, store.ByID(id), set); err != nil {
		return nil, storeError(s.logger, "update menu item", err)
	}
	return &item, nil
}

// SetAvailability changes only the available flag. Repeating a call is
// harmless.
func (s *MenuService) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := s.coll.UpdateOne(ctx, store.ByID(id), store.Set{"available": available}); err != nil {
		return storeError(s.logger, "update menu item availability", err)
	}
	return nil
}

// Delete removes item id or returns ErrNotFound.
func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.coll.DeleteOne(ctx, store.ByID(id)); err != nil {
		return storeError(s.logger, "delete menu item", err)
	}
	s.logger.Infof("menu item deleted: %s", id)
	return nil
}
