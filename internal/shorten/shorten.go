package shorten

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sony/gobreaker"

	"github.com/irclabs/weathercmd/internal/httpx"
)

// Shortener produces a short form of a URL, best effort: implementations
// return the input unchanged when shortening fails for any reason.
type Shortener interface {
	Shorten(ctx context.Context, longURL string) string
}

// IsGd shortens URLs through the is.gd simple-format endpoint.
type IsGd struct {
	client  *http.Client
	circuit *gobreaker.CircuitBreaker

	// BaseURL is overridable in tests.
	BaseURL string
}

// NewIsGd creates a new IsGd shortener.
func NewIsGd(client *http.Client) *IsGd {
	return &IsGd{
		client:  client,
		circuit: httpx.NewBreaker("shortener"),
		BaseURL: "https://is.gd",
	}
}

func (s *IsGd) Shorten(ctx context.Context, longURL string) string {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("format", "simple")
		values.Set("url", longURL)
		return http.NewRequest(http.MethodGet, s.BaseURL+"/create.php?"+values.Encode(), nil)
	}

	resp, err := httpx.Do(ctx, s.client, s.circuit, buildRequest)
	if err != nil {
		return longURL
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2048))
	if err != nil {
		return longURL
	}

	short := strings.TrimSpace(string(body))
	if !strings.HasPrefix(short, "http") {
		return longURL
	}
	return short
}

// Noop never shortens; it exists for wiring without an upstream.
type Noop struct{}

func (Noop) Shorten(_ context.Context, longURL string) string { return longURL }
