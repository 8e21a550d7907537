package weather

import (
	"context"
	"log"
)

// Geocoder resolves free-text locations to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, location string) (Coordinates, error)
}

// Fetcher retrieves and normalizes weather data for resolved coordinates.
// langCode is the provider's two-letter language code (e.g. "EN", "FR").
type Fetcher interface {
	Fetch(ctx context.Context, coords Coordinates, langCode string) (Outcome, error)
}

// LocationCache remembers each user's last-used location.
type LocationCache interface {
	Get(nick string) (string, bool)
	Set(ctx context.Context, nick, location string) error
}

// Request describes one weather lookup on behalf of a user. Query may be
// empty, meaning "use my saved location". Notify is invoked when there is no
// query and no saved location; the caller decides what the user then sees.
type Request struct {
	Nick     string
	Query    string
	LangCode string
	Notify   func()
}

// Service orchestrates one lookup: cache fallback, geocode, fetch, and the
// cache update that makes a bare invocation work next time.
type Service struct {
	googleKey string
	wunderKey string
	cache     LocationCache
	geocoder  Geocoder
	fetcher   Fetcher
}

// NewService creates a new Service.
func NewService(googleKey, wunderKey string, cache LocationCache, geocoder Geocoder, fetcher Fetcher) *Service {
	return &Service{
		googleKey: googleKey,
		wunderKey: wunderKey,
		cache:     cache,
		geocoder:  geocoder,
		fetcher:   fetcher,
	}
}

// Lookup runs the pipeline for a single request. A zero-valued Outcome with a
// nil error means req.Notify was invoked and there is nothing to render.
// GeocodeError and MissingKeyError propagate untouched so the caller can pick
// the rendering language.
func (s *Service) Lookup(ctx context.Context, req Request) (Outcome, error) {
	if s.wunderKey == "" {
		return Outcome{}, &MissingKeyError{Provider: "Weather Underground"}
	}
	if s.googleKey == "" {
		return Outcome{}, &MissingKeyError{Provider: "Google Developers Console"}
	}

	location := req.Query
	explicit := location != ""
	if !explicit {
		saved, ok := s.cache.Get(req.Nick)
		if !ok {
			if req.Notify != nil {
				req.Notify()
			}
			return Outcome{}, nil
		}
		location = saved
	}

	coords, err := s.geocoder.Resolve(ctx, location)
	if err != nil {
		return Outcome{}, err
	}

	out, err := s.fetcher.Fetch(ctx, coords, req.LangCode)
	if err != nil {
		return Outcome{}, err
	}

	// Remember the location only when the user typed one and the fetch
	// actually produced a report.
	if explicit && out.Report != nil {
		if err := s.cache.Set(ctx, req.Nick, location); err != nil {
			log.Printf("weather: failed to save location for %s: %v", req.Nick, err)
		}
	}

	return out, nil
}
