package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/irclabs/weathercmd/internal/httpx"
	"github.com/irclabs/weathercmd/internal/weather"
)

// Geocoder resolves free-text locations through the Google geocoding API.
type Geocoder struct {
	client  *http.Client
	apiKey  string
	region  string
	circuit *gobreaker.CircuitBreaker

	// BaseURL is overridable in tests.
	BaseURL string
}

// New creates a Geocoder. region is an optional ccTLD code (eg. uk, nz) that
// biases results towards that country; empty means no bias.
func New(client *http.Client, apiKey, region string) *Geocoder {
	return &Geocoder{
		client:  client,
		apiKey:  apiKey,
		region:  region,
		circuit: httpx.NewBreaker("geocode"),
		BaseURL: "https://maps.googleapis.com/maps/api/geocode/json",
	}
}

// Resolve turns a location string into coordinates. A non-OK provider status
// comes back as *weather.GeocodeError with the raw status preserved; only the
// first candidate's coordinates are used.
func (g *Geocoder) Resolve(ctx context.Context, location string) (weather.Coordinates, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("address", location)
		values.Set("key", g.apiKey)
		if g.region != "" {
			values.Set("region", g.region)
		}

		u := fmt.Sprintf("%s?%s", g.BaseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := httpx.Do(ctx, g.client, g.circuit, buildRequest)
	if err != nil {
		return weather.Coordinates{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Status  string `json:"status"`
		Results []struct {
			Geometry struct {
				Location weather.Coordinates `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Coordinates{}, err
	}

	if payload.Status != weather.StatusOK {
		return weather.Coordinates{}, &weather.GeocodeError{Status: payload.Status}
	}
	if len(payload.Results) == 0 {
		return weather.Coordinates{}, fmt.Errorf("geocode: status OK but no results")
	}

	return payload.Results[0].Geometry.Location, nil
}
