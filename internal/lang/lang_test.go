package lang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irclabs/weathercmd/internal/weather"
)

func TestRenderGeocodeErrorAllStatuses(t *testing.T) {
	cases := []struct {
		status string
		en     string
		fr     string
	}{
		{weather.StatusRequestDenied,
			"The geocode API is off in the Google Developers Console.",
			"L'API de géocodage est désactivée dans la console des développeurs Google."},
		{weather.StatusZeroResults,
			"No results found.",
			"Aucun resultat n'a été trouvé."},
		{weather.StatusOverQueryLimit,
			"The geocode API quota has run out.",
			"Le quota de API de géocodage est épuisé."},
		{weather.StatusUnknownError,
			"Unknown Error.",
			"Quelque chose a mal tourné."},
		{weather.StatusInvalidRequest,
			"Invalid Request.",
			"Il y a eu une demande invalide."},
	}

	for _, tc := range cases {
		err := &weather.GeocodeError{Status: tc.status}
		assert.Equal(t, tc.en, RenderError(err, English), tc.status)
		assert.Equal(t, tc.fr, RenderError(err, French), tc.status)
	}
}

func TestRenderGeocodeErrorUnknownStatusEchoesRawValue(t *testing.T) {
	err := &weather.GeocodeError{Status: "SOMETHING_NEW"}

	assert.Contains(t, RenderError(err, English), `"SOMETHING_NEW"`)
	assert.Contains(t, RenderError(err, French), `"SOMETHING_NEW"`)
}

func TestRenderMissingKeyError(t *testing.T) {
	err := &weather.MissingKeyError{Provider: "Weather Underground"}

	assert.Equal(t, "This command requires a Weather Underground API key.",
		RenderError(err, English))
	assert.Equal(t, "Cette commande nécessite une clé API Weather Underground.",
		RenderError(err, French))
}

func TestLocalizeForecastUnavailableOverride(t *testing.T) {
	assert.Equal(t, "Impossible de récupérer les données météorologiques.",
		Localize(weather.MsgForecastUnavailable, French))
	assert.Equal(t, weather.MsgForecastUnavailable,
		Localize(weather.MsgForecastUnavailable, English))

	// Only the exact sentence is overridden; provider descriptions pass through.
	assert.Equal(t, "this key does not exist",
		Localize("this key does not exist", French))
}

func fullReport() *weather.Report {
	return &weather.Report{
		Place:         "Paris, France",
		Conditions:    "Clear",
		TempF:         71.6,
		TempC:         22,
		Humidity:      "81%",
		WindMph:       5,
		WindKph:       8,
		WindDirection: "NW",

		TodayConditions: "Clear",
		TodayHighF:      "75",
		TodayHighC:      "24",
		TodayLowF:       "59",
		TodayLowC:       "15",

		TomorrowConditions: "Rain",
		TomorrowHighF:      "68",
		TomorrowHighC:      "20",
		TomorrowLowF:       "55",
		TomorrowLowC:       "13",

		URL: "https://is.gd/abc123",
	}
}

func TestPresentEnglishLine(t *testing.T) {
	line, err := Present(fullReport(), English)
	require.NoError(t, err)

	want := "Paris, France - \x02Current:\x02 Clear, 71.6F/22C, 81%, " +
		"Wind: 5MPH/8KPH NW, " +
		"\x02Today:\x02 Clear, High: 75F/24C, Low: 59F/15C. " +
		"\x02Tomorrow:\x02 Rain, High: 68F/20C, Low: 55F/13C - https://is.gd/abc123"
	assert.Equal(t, want, line)
}

func TestPresentFrenchLine(t *testing.T) {
	line, err := Present(fullReport(), French)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(line, "Paris, France - \x02Actuelle:\x02 Clear, 71.6F/22C, 81%"))
	assert.Contains(t, line, "Vent: 5MPH/8KPH NW")
	assert.Contains(t, line, "\x02Aujourd'hui:\x02 Clear, Haute: 75F/24C, Basse: 59F/15C.")
	assert.Contains(t, line, "\x02Demain:\x02 Rain, Haute: 68F/20C, Basse: 55F/13C - https://is.gd/abc123")
}

func TestPresentFailsLoudlyOnMissingField(t *testing.T) {
	r := fullReport()
	r.TomorrowLowC = ""

	_, err := Present(r, English)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete report")

	_, err = Present(nil, English)
	require.Error(t, err)
}
