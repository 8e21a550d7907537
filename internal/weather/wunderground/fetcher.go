package wunderground

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sony/gobreaker"

	"github.com/irclabs/weathercmd/internal/common"
	"github.com/irclabs/weathercmd/internal/httpx"
	"github.com/irclabs/weathercmd/internal/shorten"
	"github.com/irclabs/weathercmd/internal/weather"
)

// placeholderQuery marks an ob_url that does not point at a specific station.
const placeholderQuery = "?query=,"

// Fetcher implements weather.Fetcher against the Weather Underground
// geolookup/conditions/forecast API.
type Fetcher struct {
	client    *http.Client
	apiKey    string
	shortener shorten.Shortener
	circuit   *gobreaker.CircuitBreaker

	// BaseURL is overridable in tests.
	BaseURL string
}

// New creates a Fetcher.
func New(client *http.Client, apiKey string, shortener shorten.Shortener) *Fetcher {
	return &Fetcher{
		client:    client,
		apiKey:    apiKey,
		shortener: shortener,
		circuit:   httpx.NewBreaker("wunderground"),
		BaseURL:   "http://api.wunderground.com/api",
	}
}

// Fetch retrieves current conditions and the two-day forecast for coords.
// Provider-reported errors and an empty forecast are soft failures carried in
// Outcome.Message; only transport-level problems return an error.
func (f *Fetcher) Fetch(ctx context.Context, coords weather.Coordinates, langCode string) (weather.Outcome, error) {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s/%s/forecast/lang:%s/geolookup/conditions/q/%v,%v.json",
			f.BaseURL, f.apiKey, langCode, coords.Lat, coords.Lng)
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := httpx.Do(ctx, f.client, f.circuit, buildRequest)
	if err != nil {
		return weather.Outcome{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Response struct {
			Error *struct {
				Description string `json:"description"`
			} `json:"error"`
		} `json:"response"`
		CurrentObservation struct {
			DisplayLocation struct {
				Full string `json:"full"`
			} `json:"display_location"`
			Weather          string  `json:"weather"`
			TempF            float64 `json:"temp_f"`
			TempC            float64 `json:"temp_c"`
			RelativeHumidity string  `json:"relative_humidity"`
			WindMph          float64 `json:"wind_mph"`
			WindKph          float64 `json:"wind_kph"`
			WindDir          string  `json:"wind_dir"`
			ObURL            string  `json:"ob_url"`
			ForecastURL      string  `json:"forecast_url"`
		} `json:"current_observation"`
		Forecast struct {
			SimpleForecast struct {
				ForecastDay []forecastDay `json:"forecastday"`
			} `json:"simpleforecast"`
		} `json:"forecast"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Outcome{}, err
	}

	if payload.Response.Error != nil {
		// Provider-reported failure: pass its description through verbatim.
		return weather.Outcome{Message: payload.Response.Error.Description}, nil
	}

	days := payload.Forecast.SimpleForecast.ForecastDay
	if len(days) < 2 {
		return weather.Outcome{Message: weather.MsgForecastUnavailable}, nil
	}

	today, tomorrow := days[0], days[1]
	obs := payload.CurrentObservation

	// Prefer the station-specific URL unless it is the placeholder form.
	chosen := obs.ObURL
	if common.HasAny(chosen, placeholderQuery) {
		chosen = obs.ForecastURL
	}

	report := &weather.Report{
		Place:         obs.DisplayLocation.Full,
		Conditions:    obs.Weather,
		TempF:         obs.TempF,
		TempC:         obs.TempC,
		Humidity:      obs.RelativeHumidity,
		WindMph:       obs.WindMph,
		WindKph:       obs.WindKph,
		WindDirection: obs.WindDir,

		TodayConditions: today.Conditions,
		TodayHighF:      today.High.Fahrenheit,
		TodayHighC:      today.High.Celsius,
		TodayLowF:       today.Low.Fahrenheit,
		TodayLowC:       today.Low.Celsius,

		TomorrowConditions: tomorrow.Conditions,
		TomorrowHighF:      tomorrow.High.Fahrenheit,
		TomorrowHighC:      tomorrow.High.Celsius,
		TomorrowLowF:       tomorrow.Low.Fahrenheit,
		TomorrowLowC:       tomorrow.Low.Celsius,

		URL: f.shortener.Shorten(ctx, chosen),
	}

	return weather.Outcome{Report: report}, nil
}

type forecastDay struct {
	Conditions string `json:"conditions"`
	High       struct {
		Fahrenheit string `json:"fahrenheit"`
		Celsius    string `json:"celsius"`
	} `json:"high"`
	Low struct {
		Fahrenheit string `json:"fahrenheit"`
		Celsius    string `json:"celsius"`
	} `json:"low"`
}
