package service

import (
	"context"
	"slices"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/queue"
	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

// ContactService stores messages from the contact form.
type ContactService struct {
	coll     store.Collection[model.Contact]
	notifier Notifier
	logger   *log.Logger
}

// NewContactService builds the manager. notifier may be nil.
func NewContactService(coll store.Collection[model.Contact], notifier Notifier, logger *log.Logger) *ContactService {
	return &ContactService{coll: coll, notifier: notifier, logger: logger}
}

// Create stores a new message with status "new" and notifies staff.
func (s *ContactService) Create(ctx context.Context, in model.ContactInput) (*model.Contact, error) {
	c := model.Contact{
		ID:        model.NewID(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    model.ContactNew,
		CreatedAt: model.Timestamp(),
	}
	if err := s.coll.InsertOne(ctx, c); err != nil {
		return nil, storeError(s.logger, "insert contact", err)
	}
	s.logger.Infof("contact message received: %s from %s", c.ID, c.Name)

	notify(ctx, s.notifier, s.logger, queue.Event{
		Type:     queue.ContactReceived,
		RecordID: c.ID,
		Summary:  c.Subject,
		Fields:   map[string]string{"name": c.Name, "email": c.Email},
	})
	return &c, nil
}

// List returns messages newest first; the admin inbox relies on it.
func (s *ContactService) List(ctx context.Context) ([]model.Contact, error) {
	out, err := s.coll.FindMany(ctx, nil, &store.Sort{Field: "createdAt", Desc: true}, ListLimit)
	if err != nil {
		return nil, storeError(s.logger, "list contacts", err)
	}
	return out, nil
}

// Get returns message id or ErrNotFound.
func (s *ContactService) Get(ctx context.Context, id string) (*model.Contact, error) {
	c, err := s.coll.FindOne(ctx, store.ByID(id))
	if err != nil {
		return nil, storeError(s.logger, "get contact", err)
	}
	return &c, nil
}

// UpdateStatus sets the status of message id. Unknown statuses are an
// InvalidEnumError.
func (s *ContactService) UpdateStatus(ctx context.Context, id, status string) error {
	if !slices.Contains(model.ContactStatuses, status) {
		return &InvalidEnumError{Field: "status", Value: status, Allowed: model.ContactStatuses}
	}
	if err := s.coll.UpdateOne(ctx, store.ByID(id), store.Set{"status": status}); err != nil {
		return storeError(s.logger, "update contact status", err)
	}
	return nil
}
