package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/wheeltrip/assist-api/internal/api/metrics"
	"github.com/wheeltrip/assist-api/internal/core/domain"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

type TripHandler struct {
	tripService ports.TripService
}

func NewTripHandler(tripService ports.TripService) *TripHandler {
	return &TripHandler{tripService: tripService}
}

type stepRequest struct {
	Mode          string    `json:"mode" validate:"required"`
	From          string    `json:"from" validate:"required"`
	To            string    `json:"to" validate:"required"`
	DepartureTime time.Time `json:"departure_time" validate:"required"`
	ArrivalTime   time.Time `json:"arrival_time" validate:"required"`
	AssistantID   string    `json:"assistant_id"`
	AssistantName string    `json:"assistant_name"`
}

type createTripRequest struct {
	Origin      string        `json:"origin" validate:"required"`
	Destination string        `json:"destination" validate:"required"`
	Steps       []stepRequest `json:"steps"`
}

type updateTripStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=planned ongoing completed cancelled"`
}

// Create registers a new trip for the authenticated client.
//
// @Summary      Create a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTripRequest  true  "Trip details"
// @Success      201   {object}  domain.Trip
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.CreateTripInput{
		ClientID:    strconv.FormatInt(userID, 10),
		Origin:      req.Origin,
		Destination: req.Destination,
	}
	for _, s := range req.Steps {
		input.Steps = append(input.Steps, ports.StepInput{
			Mode:          s.Mode,
			From:          s.From,
			To:            s.To,
			DepartureTime: s.DepartureTime,
			ArrivalTime:   s.ArrivalTime,
			AssistantID:   s.AssistantID,
			AssistantName: s.AssistantName,
		})
	}

	trip, err := h.tripService.CreateTrip(c.Request().Context(), input)
	if err != nil {
		return err
	}

	metrics.TripsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, trip)
}

// Get returns a single trip. Clients may only read their own trips.
//
// @Summary      Get a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trip ID"
// @Success      200  {object}  domain.Trip
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /trips/{id} [get]
func (h *TripHandler) Get(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	trip, err := h.tripService.GetTrip(c.Request().Context(), c.Param("id"), role, strconv.FormatInt(userID, 10))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trip)
}

// List returns the authenticated client's trips.
//
// @Summary      List trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Trip
// @Router       /trips [get]
func (h *TripHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	trips, err := h.tripService.ListTrips(c.Request().Context(), strconv.FormatInt(userID, 10))
	if err != nil {
		return err
	}
	if trips == nil {
		trips = []*domain.Trip{}
	}
	return c.JSON(http.StatusOK, trips)
}

// UpdateStatus advances a trip through its lifecycle.
//
// @Summary      Update trip status
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Trip ID"
// @Param        body  body      updateTripStatusRequest  true  "New status"
// @Success      200   {object}  domain.Trip
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /trips/{id}/status [patch]
func (h *TripHandler) UpdateStatus(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateTripStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trip, err := h.tripService.UpdateStatus(c.Request().Context(), c.Param("id"),
		domain.TripStatus(req.Status), role, strconv.FormatInt(userID, 10))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, trip)
}

// Delete removes a trip.
//
// @Summary      Delete a trip
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Trip ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /trips/{id} [delete]
func (h *TripHandler) Delete(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.tripService.DeleteTrip(c.Request().Context(), c.Param("id"), role, strconv.FormatInt(userID, 10)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "trip deleted"})
}
