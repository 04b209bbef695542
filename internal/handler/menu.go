package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
	"github.com/iliyamo/cafe-comptoir-api/internal/service"
)

const msgMenuNotFound = "Élément du menu non trouvé"

// MenuHandler exposes the menu under /api/menu.
type MenuHandler struct {
	Menu *service.MenuService
}

// NewMenuHandler constructs a MenuHandler and panics on a nil service.
func NewMenuHandler(svc *service.MenuService) *MenuHandler {
	if svc == nil {
		panic("nil service passed to NewMenuHandler")
	}
	return &MenuHandler{Menu: svc}
}

// List handles GET /api/menu?category=&available_only=true|false.
func (h *MenuHandler) List(c echo.Context) error {
	availableOnly, err := boolParam(c, "available_only", boolPtr(true))
	if err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	items, err := h.Menu.List(c.Request().Context(), c.QueryParam("category"), availableOnly)
	if err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	return c.JSON(http.StatusOK, items)
}

// Categories handles GET /api/menu/categories.
func (h *MenuHandler) Categories(c echo.Context) error {
	cats, err := h.Menu.Categories(c.Request().Context())
	if err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	return c.JSON(http.StatusOK, map[string][]string{"categories": cats})
}

// Get handles GET /api/menu/:id.
func (h *MenuHandler) Get(c echo.Context) error {
	item, err := h.Menu.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/menu. A missing available flag means true.
func (h *MenuHandler) Create(c echo.Context) error {
	var in model.MenuItemInput
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	item, err := h.Menu.Create(c.Request().Context(), in)
	if err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	return ok(c, http.StatusOK, "Élément du menu créé avec succès", map[string]any{
		"item_id":  item.ID,
		"name":     item.Name,
		"category": item.Category,
	})
}

// Update replaces every field of an item except its id.
func (h *MenuHandler) Update(c echo.Context) error {
	var in model.MenuItemInput
	if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	item, err := h.Menu.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	return ok(c, http.StatusOK, "Élément du menu mis à jour avec succès", item)
}

// SetAvailability handles PATCH /api/menu/:id/availability. The flag is
// required.
func (h *MenuHandler) SetAvailability(c echo.Context) error {
	available, err := boolParam(c, "available", nil)
	if err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	if err := h.Menu.SetAvailability(c.Request().Context(), c.Param("id"), available); err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	word := "disponible"
	if !available {
		word = "indisponible"
	}
	return ok(c, http.StatusOK, "Élément du menu marqué comme "+word, nil)
}

// Delete handles DELETE /api/menu/:id.
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.Menu.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err, msgMenuNotFound)
	}
	return ok(c, http.StatusOK, "Élément du menu supprimé avec succès", nil)
}
