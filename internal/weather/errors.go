package weather

import "fmt"

// Geocoding provider status codes that map to fixed messages. Any other
// non-OK status falls through to a rendering that echoes the raw value.
const (
	StatusOK             = "OK"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusUnknownError   = "UNKNOWN_ERROR"
	StatusInvalidRequest = "INVALID_REQUEST"
)

// GeocodeError is returned when the geocoding provider answers with a non-OK
// status field. It carries the raw status only; Error() is the English
// rendering and the lang package owns the French one.
type GeocodeError struct {
	Status string
}

func (e *GeocodeError) Error() string {
	switch e.Status {
	case StatusRequestDenied:
		return "The geocode API is off in the Google Developers Console."
	case StatusZeroResults:
		return "No results found."
	case StatusOverQueryLimit:
		return "The geocode API quota has run out."
	case StatusUnknownError:
		return "Unknown Error."
	case StatusInvalidRequest:
		return "Invalid Request."
	default:
		return fmt.Sprintf("%q", e.Status)
	}
}

// MissingKeyError is returned when a required API key is not configured.
// Provider is the human-readable provider name the message embeds.
type MissingKeyError struct {
	Provider string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("This command requires a %s API key.", e.Provider)
}
