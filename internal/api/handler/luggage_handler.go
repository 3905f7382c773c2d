package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

type LuggageHandler struct {
	luggageService ports.LuggageService
}

func NewLuggageHandler(luggageService ports.LuggageService) *LuggageHandler {
	return &LuggageHandler{luggageService: luggageService}
}

type createLuggageRequest struct {
	Type     string `json:"type" validate:"required,oneof=small medium large"`
	Position string `json:"position" validate:"required"`
	Status   string `json:"status" validate:"required"`
}

type updateLuggageRequest struct {
	Type     *string `json:"type,omitempty" validate:"omitempty,oneof=small medium large"`
	Position *string `json:"position,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// Create registers a piece of luggage for the authenticated user.
//
// @Summary      Register luggage
// @Tags         luggage
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLuggageRequest  true  "Luggage details"
// @Success      201   {object}  domain.Luggage
// @Failure      400   {object}  map[string]string
// @Router       /luggage [post]
func (h *LuggageHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createLuggageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	l, err := h.luggageService.Create(c.Request().Context(), ports.CreateLuggageInput{
		UserID:   userID,
		Type:     req.Type,
		Position: req.Position,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, l)
}

// Get returns a piece of luggage by identifier.
//
// @Summary      Get luggage
// @Tags         luggage
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Luggage ID"
// @Success      200  {object}  domain.Luggage
// @Failure      404  {object}  map[string]string
// @Router       /luggage/{id} [get]
func (h *LuggageHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	l, err := h.luggageService.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, l)
}

// ListByUser returns all luggage belonging to a user.
//
// @Summary      List a user's luggage
// @Tags         luggage
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "User ID"
// @Success      200  {array}  domain.Luggage
// @Router       /users/{id}/luggage [get]
func (h *LuggageHandler) ListByUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.luggageService.ListByUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if items == nil {
		items = []*domain.Luggage{}
	}
	return c.JSON(http.StatusOK, items)
}

// Update applies a partial update to a piece of luggage.
//
// @Summary      Update luggage
// @Tags         luggage
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                   true  "Luggage ID"
// @Param        body  body      updateLuggageRequest  true  "Fields to update"
// @Success      200   {object}  domain.Luggage
// @Failure      404   {object}  map[string]string
// @Router       /luggage/{id} [put]
func (h *LuggageHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateLuggageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fields := domain.LuggageUpdate{
		Position: req.Position,
		Status:   req.Status,
	}
	if req.Type != nil {
		lt := domain.LuggageType(*req.Type)
		fields.Type = &lt
	}

	l, err := h.luggageService.Update(c.Request().Context(), id, fields)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, l)
}

// Delete removes a piece of luggage.
//
// @Summary      Delete luggage
// @Tags         luggage
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Luggage ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /luggage/{id} [delete]
func (h *LuggageHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.luggageService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "luggage deleted"})
}
