package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/service"
)

const msgContactNotFound = "Message de contact non trouvé"

// ContactHandler exposes contact form messages under /api/contact.
type ContactHandler struct {
	Contacts *service.ContactService
}

// NewContactHandler constructs a ContactHandler and panics on a nil service.
func NewContactHandler(svc *service.ContactService) *ContactHandler {
	if svc == nil {
		panic("nil service passed to NewContactHandler")
	}
	return &ContactHandler{Contacts: svc}
}

// Create handles POST /api/contact.
func (h *ContactHandler) Create(c echo.Context) error {
	var in model.ContactInput
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err, msgContactNotFound)
	}
	m, err := h.Contacts.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err, msgContactNotFound)
	}
	return ok(c, http.StatusOK, "Votre message a été envoyé avec succès ! Nous vous recontacterons rapidement.", map[string]any{
		"contact_id": m.ID,
		"name":       m.Name,
		"subject":    m.Subject,
	})
}

// List returns every message, newest first.
func (h *ContactHandler) List(c echo.Context) error {
	items, err := h.Contacts.List(c.Request().Context())
	if err != nil {
		return respondError(c, err, msgContactNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/contact/:id.
func (h *ContactHandler) Get(c echo.Context) error {
	m, err := h.Contacts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, msgContactNotFound)
	}
	return c.JSON(http.StatusOK, m)
}

// UpdateStatus handles PATCH /api/contact/:id/status; status comes from
// the query string or the JSON body.
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	status, err := statusParam(c)
	if err != nil {
		return respondError(c, err, msgContactNotFound)
	}
	if err := h.Contacts.UpdateStatus(c.Request().Context(), c.Param("id"), status); err != nil {
		return respondError(c, err, msgContactNotFound)
	}
	return ok(c, http.StatusOK, "Statut du message mis à jour: "+status, nil)
}
