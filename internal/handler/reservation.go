package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/service"
)

const msgReservationNotFound = "Réservation non trouvée"

// ReservationHandler exposes table reservations under /api/reservations.
type ReservationHandler struct {
	Reservations *service.ReservationService
}

// NewReservationHandler constructs a ReservationHandler and panics on a nil
// service.
func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	if svc == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{Reservations: svc}
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(c echo.Context) error {
	var in model.ReservationInput
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err, msgReservationNotFound)
	}
	r, err := h.Reservations.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err, msgReservationNotFound)
	}
	return ok(c, http.StatusOK, "Réservation confirmée avec succès ! Nous vous contacterons pour confirmer.", map[string]any{
		"reservation_id": r.ID,
		"date":           r.Date,
		"time":           r.Time,
		"guests":         r.Guests,
		"name":           r.FullName(),
	})
}

// List handles GET /api/reservations.
func (h *ReservationHandler) List(c echo.Context) error {
	items, err := h.Reservations.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, msgReservationNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/reservations/:id.
func (h *ReservationHandler) Get(c echo.Context) error {
	r, err := h.Reservations.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, msgReservationNotFound)
	}
	return c.JSON(http.StatusOK, r)
}

// UpdateStatus handles PATCH /api/reservations/:id/status.
func (h *ReservationHandler) UpdateStatus(c echo.Context) error {
	status, err := statusParam(c)
	if err != nil {
		return respondError(c, err, msgReservationNotFound)
	}
	if err := h.Reservations.UpdateStatus(c.Request().Context(), c.Param("id"), status); err != nil {
		return respondError(c, err, msgReservationNotFound)
	}
	return ok(c, http.StatusOK, "Statut de la réservation mis à jour: "+status, nil)
}
