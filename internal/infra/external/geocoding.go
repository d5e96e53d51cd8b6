package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"sportfields/internal/pkg/errs"
)

const geocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

var (
	ErrGeocodeFailed = errs.New("geocoding request failed")
	ErrNoCoordinates = errs.New("no coordinates found for address")
)

// GeocodingClient resolves field addresses to coordinates for the map
// view. The API key stays server-side; the SPA talks to our proxy.
type GeocodingClient struct {
	apiKey string
	client *http.Client
}

func NewGeocodingClient(apiKey string) *GeocodingClient {
	return &GeocodingClient{
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (c *GeocodingClient) Geocode(ctx context.Context, address string) (*Coordinates, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, geocodeURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errs.Wrap(err, "build geocode request")
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Mark(err, ErrGeocodeFailed)
	}
	defer res.Body.Close()

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location Coordinates `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, errs.Mark(err, ErrGeocodeFailed)
	}
	if payload.Status == "ZERO_RESULTS" || (payload.Status == "OK" && len(payload.Results) == 0) {
		return nil, ErrNoCoordinates
	}
	if payload.Status != "OK" {
		return nil, errs.Mark(fmt.Errorf("geocode status %q", payload.Status), ErrGeocodeFailed)
	}

	location := payload.Results[0].Geometry.Location
	return &location, nil
}
