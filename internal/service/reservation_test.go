package service

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/suite"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/queue"
	"github.com/iliyamo/cafe-comptoir-api/internal/store"
)

type ReservationServiceSuite struct {
	suite.Suite
	ctx      context.Context
	coll     *store.MemoryCollection[model.Reservation]
	recorder *queue.Recorder
	svc      *ReservationService
}

func (s *ReservationServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.coll = store.NewMemoryCollection[model.Reservation]()
	s.recorder = &queue.Recorder{}
	paris, err := time.LoadLocation("Europe/Paris")
	s.Require().NoError(err)
	// 23:30 UTC on Oct 17 is already Oct 18 in Paris.
	clock := func() time.Time { return time.Date(2026, 10, 17, 23, 30, 0, 0, time.UTC) }
	s.svc = NewReservationService(s.coll, s.recorder, quietLogger(), paris).WithClock(clock)
}

func (s *ReservationServiceSuite) input(date string) model.ReservationInput {
	return model.ReservationInput{
		Date:      date,
		Time:      "19:30",
		Guests:    "4",
		FirstName: "Pierre",
		LastName:  "Martin",
		Phone:     "0600000000",
		Email:     "p@example.com",
	}
}

func (s *ReservationServiceSuite) count() int64 {
	n, err := s.coll.CountAll(s.ctx)
	s.Require().NoError(err)
	return n
}

func (s *ReservationServiceSuite) TestCreateFutureDate() {
	r, err := s.svc.Create(s.ctx, s.input("2099-01-01"))
	s.Require().NoError(err)
	s.NotEmpty(r.ID)
	s.Equal(model.ReservationPending, r.Status)
	s.Equal("Pierre Martin", r.FullName())
	s.False(r.CreatedAt.IsZero())

	got, err := s.svc.Get(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(*r, *got)

	events := s.recorder.Events()
	s.Require().Len(events, 1)
	s.Equal(queue.ReservationCreated, events[0].Type)
	s.Equal(r.ID, events[0].RecordID)
}

func (s *ReservationServiceSuite) TestCreateTodayInRestaurantZone() {
	_, err := s.svc.Create(s.ctx, s.input("2026-10-18"))
	s.NoError(err)
}

func (s *ReservationServiceSuite) TestCreatePastDate() {
	_, err := s.svc.Create(s.ctx, s.input("2026-10-17"))
	var past *PastDateError
	s.ErrorAs(err, &past)
	s.Equal("2026-10-17", past.Date)
	s.Zero(s.count())
	s.Empty(s.recorder.Events())
}

func (s *ReservationServiceSuite) TestCreateUnparseableDate() {
	for _, d := range []string{"18/10/2026", "2026-13-01", "2026-1-5", "tomorrow", ""} {
		_, err := s.svc.Create(s.ctx, s.input(d))
		var verr *ValidationError
		s.ErrorAs(err, &verr, d)
		s.Equal("date", verr.Field)
	}
	s.Zero(s.count())
}

func (s *ReservationServiceSuite) TestListKeepsInsertionOrder() {
	a, err := s.svc.Create(s.ctx, s.input("2099-01-02"))
	s.Require().NoError(err)
	b, err := s.svc.Create(s.ctx, s.input("2099-01-01"))
	s.Require().NoError(err)

	all, err := s.svc.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(a.ID, all[0].ID)
	s.Equal(b.ID, all[1].ID)
}

func (s *ReservationServiceSuite) TestGetUnknown() {
	_, err := s.svc.Get(s.ctx, "nope")
	s.ErrorIs(err, ErrNotFound)
}

func (s *ReservationServiceSuite) TestUpdateStatusAnyTransition() {
	r, err := s.svc.Create(s.ctx, s.input("2099-01-01"))
	s.Require().NoError(err)

	for _, st := range []string{"cancelled", "pending", "confirmed", "confirmed", "cancelled"} {
		s.Require().NoError(s.svc.UpdateStatus(s.ctx, r.ID, st))
		got, err := s.svc.Get(s.ctx, r.ID)
		s.Require().NoError(err)
		s.Equal(st, got.Status)
		s.Equal(r.Date, got.Date)
		s.Equal(r.CreatedAt, got.CreatedAt)
	}
}

func (s *ReservationServiceSuite) TestUpdateStatusInvalid() {
	r, err := s.svc.Create(s.ctx, s.input("2099-01-01"))
	s.Require().NoError(err)

	err = s.svc.UpdateStatus(s.ctx, r.ID, "seated")
	var enum *InvalidEnumError
	s.ErrorAs(err, &enum)
	s.Equal(model.ReservationStatuses, enum.Allowed)

	got, err := s.svc.Get(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(model.ReservationPending, got.Status)
}

func (s *ReservationServiceSuite) TestUpdateStatusUnknownID() {
	s.ErrorIs(s.svc.UpdateStatus(s.ctx, "unknown", "confirmed"), ErrNotFound)
}

func (s *ReservationServiceSuite) TestPersistenceFailure() {
	svc := NewReservationService(brokenCollection[model.Reservation]{}, queue.Discard{}, quietLogger(), time.UTC)
	_, err := svc.Create(s.ctx, s.input("2099-01-01"))
	var perr *PersistenceError
	s.ErrorAs(err, &perr)
	s.ErrorIs(err, errStoreDown)

	_, err = svc.List(s.ctx)
	s.ErrorAs(err, &perr)
}

func TestReservationServiceSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceSuite))
}
