package weather

// Coordinates is a latitude/longitude pair produced by geocoding and consumed
// immediately by the weather fetch. Never persisted.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Report is the flat, normalized view of one weather lookup: the current
// observation plus the first two forecast days. Forecast highs/lows and
// humidity stay strings because that is how the provider sends them.
//
// A Report handed to the presenter must have every string field populated;
// the `required` tags back the presenter's missing-field check.
type Report struct {
	Place         string  `validate:"required"`
	Conditions    string  `validate:"required"`
	TempF         float64 `validate:"-"`
	TempC         float64 `validate:"-"`
	Humidity      string  `validate:"required"`
	WindMph       float64 `validate:"-"`
	WindKph       float64 `validate:"-"`
	WindDirection string  `validate:"required"`

	TodayConditions string `validate:"required"`
	TodayHighF      string `validate:"required"`
	TodayHighC      string `validate:"required"`
	TodayLowF       string `validate:"required"`
	TodayLowC       string `validate:"required"`

	TomorrowConditions string `validate:"required"`
	TomorrowHighF      string `validate:"required"`
	TomorrowHighC      string `validate:"required"`
	TomorrowLowF       string `validate:"required"`
	TomorrowLowC       string `validate:"required"`

	URL string `validate:"required"`
}

// MsgForecastUnavailable is the fixed terminal message for an empty forecast
// list. The French command matches this exact string to localize it.
const MsgForecastUnavailable = "Unable to retrieve forecast data."

// Outcome is what a lookup produces: a normalized report, a terminal
// human-readable message (soft provider failure), or neither (the
// "no saved location" notification path).
type Outcome struct {
	Report  *Report
	Message string
}
