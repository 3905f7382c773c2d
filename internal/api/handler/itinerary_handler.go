package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/wheeltrip/assist-api/internal/api/metrics"
	"github.com/wheeltrip/assist-api/internal/core/ports"
)

// ItineraryCache abstracts the read-through cache for journey searches.
type ItineraryCache interface {
	Get(ctx context.Context, from, to string, departure time.Time) ([]byte, error)
	Set(ctx context.Context, from, to string, departure time.Time, payload []byte) error
}

type ItineraryHandler struct {
	planner ports.JourneyPlanner
	cache   ItineraryCache
	log     zerolog.Logger
}

func NewItineraryHandler(planner ports.JourneyPlanner, cache ItineraryCache, log zerolog.Logger) *ItineraryHandler {
	return &ItineraryHandler{planner: planner, cache: cache, log: log}
}

type itineraryResponse struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Journeys []ports.Journey `json:"journeys"`
}

// Search looks up itinerary options between two places via the external
// journey-planning API, serving repeated searches from cache.
//
// @Summary      Search itineraries
// @Tags         itineraries
// @Produce      json
// @Security     BearerAuth
// @Param        from      query     string  true   "Origin place name"
// @Param        to        query     string  true   "Destination place name"
// @Param        datetime  query     string  false  "Departure time (RFC 3339); defaults to now"
// @Success      200       {object}  itineraryResponse
// @Failure      400       {object}  map[string]string
// @Failure      502       {object}  map[string]string
// @Router       /itineraries [get]
func (h *ItineraryHandler) Search(c echo.Context) error {
	from := c.QueryParam("from")
	to := c.QueryParam("to")
	if from == "" || to == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "from and to are required")
	}

	departure := time.Now().UTC().Truncate(time.Minute)
	if raw := c.QueryParam("datetime"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "datetime must be RFC 3339")
		}
		departure = parsed.UTC()
	}

	ctx := c.Request().Context()

	if payload, err := h.cache.Get(ctx, from, to, departure); err == nil {
		metrics.ItineraryCacheTotal.WithLabelValues("hit").Inc()
		return c.JSONBlob(http.StatusOK, payload)
	}
	metrics.ItineraryCacheTotal.WithLabelValues("miss").Inc()

	journeys, err := h.planner.Search(ctx, from, to, departure)
	if err != nil {
		h.log.Warn().Err(err).Str("from", from).Str("to", to).Msg("journey search failed")
		return echo.NewHTTPError(http.StatusBadGateway, "journey search failed")
	}

	res := itineraryResponse{From: from, To: to, Journeys: journeys}
	payload, err := json.Marshal(res)
	if err != nil {
		return err
	}
	if err := h.cache.Set(ctx, from, to, departure, payload); err != nil {
		h.log.Warn().Err(err).Msg("failed to cache itinerary result")
	}

	return c.JSONBlob(http.StatusOK, payload)
}
