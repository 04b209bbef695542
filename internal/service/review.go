package service

import (
	"context"
	"strconv"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/queue"
	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

// ReviewService manages customer reviews. The rating range is checked at
// the request boundary (model.ReviewInput); Create trusts it.
type ReviewService struct {
	coll     store.Collection[model.Review]
	notifier Notifier
	logger   *log.Logger
}

// NewReviewService builds the manager. notifier may be nil.
func NewReviewService(coll store.Collection[model.Review], notifier Notifier, logger *log.Logger) *ReviewService {
	return &ReviewService{coll: coll, notifier: notifier, logger: logger}
}

// Create stores an approved review.
func (s *ReviewService) Create(ctx context.Context, in model.ReviewInput) (*model.Review, error) {
	r := model.Review{
		ID:        model.NewID(),
		Name:      in.Name,
		Rating:    in.Rating,
		Comment:   in.Comment,
		Email:     in.Email,
		Approved:  true,
		CreatedAt: model.Timestamp(),
	}
	if err := s.coll.InsertOne(ctx, r); err != nil {
		return nil, storeError(s.logger, "insert review", err)
	}
	s.logger.Infof("review created: %s by %s", r.ID, r.Name)

	notify(ctx, s.notifier, s.logger, queue.Event{
		Type:     queue.ReviewPosted,
		RecordID: r.ID,
		Summary:  strconv.Itoa(r.Rating) + "/5 by " + r.Name,
		Fields:   map[string]string{"comment": r.Comment},
	})
	return &r, nil
}

// List returns reviews newest first. With approvedOnly, hidden reviews are
// left out.
func (s *ReviewService) List(ctx context.Context, approvedOnly bool) ([]model.Review, error) {
	var filter store.Filter
	if approvedOnly {
		filter = store.Filter{"approved": true}
	}
	out, err := s.coll.FindMany(ctx, filter, &store.Sort{Field: "createdAt", Desc: true}, ListLimit)
	if err != nil {
		return nil, storeError(s.logger, "list reviews", err)
	}
	return out, nil
}

// Get returns review id whatever its approval, or ErrNotFound.
func (s *ReviewService) Get(ctx context.Context, id string) (*model.Review, error) {
	r, err := s.coll.FindOne(ctx, store.ByID(id))
	if err != nil {
		return nil, storeError(s.logger, "get review", err)
	}
	return &r, nil
}

// SetApproval publishes or hides a review. Repeating a call is harmless.
func (s *ReviewService) SetApproval(ctx context.Context, id string, approved bool) error {
	if err := s.coll.UpdateOne(ctx, store.ByID(id), store.Set{"approved": approved}); err != nil {
		return storeError(s.logger, "update review approval", err)
	}
	return nil
}

// Delete removes review id or returns ErrNotFound.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	if err := s.coll.DeleteOne(ctx, store.ByID(id)); err != nil {
		return storeError(s.logger, "delete review", err)
	}
	s.logger.Infof("review deleted: %s", id)
	return nil
}
