// Package journey implements the client for the external journey-planning
// API (navitia-style: place search plus journey search between stop areas).
package journey

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/wheeltrip/assist-api/internal/core/ports"
)

const (
	requestTimeout = 10 * time.Second
	datetimeLayout = "20060102T150405"
)

// Config holds the journey API settings.
type Config struct {
	BaseURL string
	APIKey  string
}

// Client queries the external journey-planning API over HTTP.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: requestTimeout},
		log:     log,
	}
}

type placesResponse struct {
	Places []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"places"`
}

type journeysResponse struct {
	Journeys []struct {
		DepartureDateTime string `json:"departure_date_time"`
		ArrivalDateTime   string `json:"arrival_date_time"`
		Duration          int    `json:"duration"`
		Sections          []struct {
			Mode              string `json:"mode,omitempty"`
			DepartureDateTime string `json:"departure_date_time"`
			ArrivalDateTime   string `json:"arrival_date_time"`
			From              struct {
				Name string `json:"name"`
			} `json:"from"`
			To struct {
				Name string `json:"name"`
			} `json:"to"`
			DisplayInformations struct {
				CommercialMode string `json:"commercial_mode"`
			} `json:"display_informations"`
		} `json:"sections"`
	} `json:"journeys"`
}

// Search resolves both place names to stop areas and returns the itinerary
// options between them.
func (c *Client) Search(ctx context.Context, from, to string, departure time.Time) ([]ports.Journey, error) {
	fromID, err := c.findPlace(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("resolve origin %q: %w", from, err)
	}
	toID, err := c.findPlace(ctx, to)
	if err != nil {
		return nil, fmt.Errorf("resolve destination %q: %w", to, err)
	}

	query := url.Values{}
	query.Set("from", fromID)
	query.Set("to", toID)
	query.Set("datetime", departure.Format(datetimeLayout))

	var res journeysResponse
	if err := c.get(ctx, "/journeys?"+query.Encode(), &res); err != nil {
		return nil, err
	}

	journeys := make([]ports.Journey, 0, len(res.Journeys))
	for _, j := range res.Journeys {
		journey := ports.Journey{
			DepartureTime: c.parseDatetime(j.DepartureDateTime),
			ArrivalTime:   c.parseDatetime(j.ArrivalDateTime),
			DurationSec:   j.Duration,
		}
		for _, s := range j.Sections {
			mode := s.DisplayInformations.CommercialMode
			if mode == "" {
				mode = s.Mode
			}
			journey.Sections = append(journey.Sections, ports.JourneySection{
				Mode:          mode,
				From:          s.From.Name,
				To:            s.To.Name,
				DepartureTime: c.parseDatetime(s.DepartureDateTime),
				ArrivalTime:   c.parseDatetime(s.ArrivalDateTime),
			})
		}
		journeys = append(journeys, journey)
	}
	return journeys, nil
}

// findPlace returns the stop-area id of the best match for a place name.
func (c *Client) findPlace(ctx context.Context, name string) (string, error) {
	query := url.Values{}
	query.Set("q", name)
	query.Set("type[]", "stop_area")

	var res placesResponse
	if err := c.get(ctx, "/places?"+query.Encode(), &res); err != nil {
		return "", err
	}
	if len(res.Places) == 0 {
		return "", fmt.Errorf("no station found for %q", name)
	}
	return res.Places[0].ID, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("journey api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("journey api returned non-200")
		return fmt.Errorf("journey api status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// parseDatetime parses an upstream timestamp, logging any malformed value
// before falling back to the zero time.
func (c *Client) parseDatetime(s string) time.Time {
	t, err := time.Parse(datetimeLayout, s)
	if err != nil {
		c.log.Warn().Str("value", s).Msg("journey api returned malformed datetime")
		return time.Time{}
	}
	return t
}
