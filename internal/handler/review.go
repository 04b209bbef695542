package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/service"
)

const msgReviewNotFound = "Avis non trouvé"

// ReviewHandler exposes customer reviews under /api/reviews.
type ReviewHandler struct {
	Reviews *service.ReviewService
}

// NewReviewHandler constructs a ReviewHandler and panics on a nil service.
func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	if svc == nil {
		panic("nil service passed to NewReviewHandler")
	}
	return &ReviewHandler{Reviews: svc}
}

// Create handles POST /api/reviews. Ratings outside 1..5 never reach the
// service.
func (h *ReviewHandler) Create(c echo.Context) error {
	var in model.ReviewInput
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err, msgReviewNotFound)
	}
	r, err := h.Reviews.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err, msgReviewNotFound)
	}
	return ok(c, http.StatusOK, "Votre avis a été publié avec succès ! Merci pour votre retour.", map[string]any{
		"review_id": r.ID,
		"name":      r.Name,
		"rating":    r.Rating,
	})
}

// List handles GET /api/reviews?approved_only=true|false (default true).
func (h *ReviewHandler) List(c echo.Context) error {
	approvedOnly, err := boolParam(c, "approved_only", boolPtr(true))
	if err != nil {
		return respondError(c, err, msgReviewNotFound)
	}
	items, err := h.Reviews.List(c.Request().Context(), approvedOnly)
	if err != nil {
		return respondError(c, err, msgReviewNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /api/reviews/:id, approved or not.
func (h *ReviewHandler) Get(c echo.Context) error {
	r, err := h.Reviews.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, msgReviewNotFound)
	}
	return c.JSON(http.StatusOK, r)
}

// Approve handles PATCH /api/reviews/:id/approve; approved defaults to true.
func (h *ReviewHandler) Approve(c echo.Context) error {
	approved, err := boolParam(c, "approved", boolPtr(true))
	if err != nil {
		return respondError(c, err, msgReviewNotFound)
	}
	if err := h.Reviews.SetApproval(c.Request().Context(), c.Param("id"), approved); err != nil {
		return respondError(c, err, msgReviewNotFound)
	}
	word := "approuvé"
	if !approved {
		word = "rejeté"
	}
	return ok(c, http.StatusOK, "Avis "+word+" avec succès", nil)
}

// Delete handles DELETE /api/reviews/:id.
func (h *ReviewHandler) Delete(c echo.Context) error {
	if err := h.Reviews.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err, msgReviewNotFound)
	}
	return ok(c, http.StatusOK, "Avis supprimé avec succès", nil)
}
