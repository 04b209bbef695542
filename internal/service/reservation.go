package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/labstack/gommon/log"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/queue"
	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

const dateLayout = "2006-01-02"

// ReservationService manages table reservations. Reservations are never
// deleted; cancelling is a status change.
type ReservationService struct {
	coll     store.Collection[model.Reservation]
	notifier Notifier
	logger   *log.Logger
	loc      *time.Location
	now      func() time.Time
}

// NewReservationService builds the manager. loc is the restaurant's time
// zone and defines what "today" means for date checks.
func NewReservationService(coll store.Collection[model.Reservation], notifier Notifier, logger *log.Logger, loc *time.Location) *ReservationService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReservationService{coll: coll, notifier: notifier, logger: logger, loc: loc, now: time.Now}
}

// WithClock replaces the time source used to compute today's date.
func (s *ReservationService) WithClock(now func() time.Time) *ReservationService {
	s.now = now
	return s
}

// Create validates the requested date and stores a pending reservation.
// An unparseable date yields a *ValidationError, a day before today a
// *PastDateError; in both cases nothing is stored.
func (s *ReservationService) Create(ctx context.Context, in model.ReservationInput) (*model.Reservation, error) {
	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(in.Date), s.loc)
	if err != nil {
		return nil, &ValidationError{Field: "date", Message: "must be a calendar date in YYYY-MM-DD format"}
	}
	if day.Before(s.today()) {
		return nil, &PastDateError{Date: day.Format(dateLayout)}
	}

	r := model.Reservation{
		ID:        model.NewID(),
		Date:      day.Format(dateLayout),
		Time:      in.Time,
		Guests:    in.Guests,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Email:     in.Email,
		Message:   in.Message,
		Status:    model.ReservationPending,
		CreatedAt: model.Timestamp(),
	}
	if err := s.coll.InsertOne(ctx, r); err != nil {
		return nil, storeError(s.logger, "insert reservation", err)
	}
	s.logger.Infof("reservation created: %s for %s on %s at %s", r.ID, r.FullName(), r.Date, r.Time)

	notify(ctx, s.notifier, s.logger, queue.Event{
		Type:     queue.ReservationCreated,
		RecordID: r.ID,
		Summary:  r.FullName() + ", " + r.Guests + " guests",
		Fields: map[string]string{
			"date":  r.Date,
			"time":  r.Time,
			"phone": r.Phone,
			"email": r.Email,
		},
	})
	return &r, nil
}

// List returns every reservation in insertion order.
func (s *ReservationService) List(ctx context.Context) ([]model.Reservation, error) {
	out, err := s.coll.FindMany(ctx, nil, nil, ListLimit)
	if err != nil {
		return nil, storeError(s.logger, "list reservations", err)
	}
	return out, nil
}

// Get returns reservation id or ErrNotFound.
func (s *ReservationService) Get(ctx context.Context, id string) (*model.Reservation, error) {
	r, err := s.coll.FindOne(ctx, store.ByID(id))
	if err != nil {
		return nil, storeError(s.logger, "get reservation", err)
	}
	return &r, nil
}

// UpdateStatus sets the status of reservation id. Any member of
// model.ReservationStatuses may replace any other; only the status field
// changes.
func (s *ReservationService) UpdateStatus(ctx context.Context, id, status string) error {
	if !slices.Contains(model.ReservationStatuses, status) {
		return &InvalidEnumError{Field: "status", Value: status, Allowed: model.ReservationStatuses}
	}
	if err := s.coll.UpdateOne(ctx, store.ByID(id), store.Set{"status": status}); err != nil {
		return storeError(s.logger, "update reservation status", err)
	}
	s.logger.Infof("reservation %s status set to %s", id, status)

	notify(ctx, s.notifier, s.logger, queue.Event{
		Type:     queue.ReservationStatusChanged,
		RecordID: id,
		Summary:  "status " + status,
		Fields:   map[string]string{"status": status},
	})
	return nil
}

func (s *ReservationService) today() time.Time {
	n := s.now().In(s.loc)
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, s.loc)
}
