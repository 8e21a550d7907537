// Package lang owns everything language-dependent: error rendering, terminal
// message localization, and the response templates. Error values stay
// language-neutral; rendering picks the language at the command boundary.
package lang

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/irclabs/weathercmd/internal/weather"
)

// Language selects one of the two supported renderings. The value doubles as
// the provider's two-letter language code.
type Language string

const (
	English Language = "EN"
	French  Language = "FR"
)

// Code returns the two-letter code embedded in the weather request URL.
func (l Language) Code() string { return string(l) }

// RenderError converts a pipeline error into the command's output text.
// English is the errors' own Error(); French has its own tables here.
func RenderError(err error, l Language) string {
	if l != French {
		return err.Error()
	}

	var ge *weather.GeocodeError
	if errors.As(err, &ge) {
		switch ge.Status {
		case weather.StatusRequestDenied:
			return "L'API de géocodage est désactivée dans la console des développeurs Google."
		case weather.StatusZeroResults:
			return "Aucun resultat n'a été trouvé."
		case weather.StatusOverQueryLimit:
			return "Le quota de API de géocodage est épuisé."
		case weather.StatusUnknownError:
			return "Quelque chose a mal tourné."
		case weather.StatusInvalidRequest:
			return "Il y a eu une demande invalide."
		default:
			return fmt.Sprintf("La France a été trahie! %q", ge.Status)
		}
	}

	var mk *weather.MissingKeyError
	if errors.As(err, &mk) {
		return fmt.Sprintf("Cette commande nécessite une clé API %s.", mk.Provider)
	}

	return err.Error()
}

// Localize translates terminal messages for the French command. It matches
// the exact English forecast-unavailable sentence, so any wording drift in
// weather.MsgForecastUnavailable silently breaks this path; the constant and
// the test pin them together.
func Localize(message string, l Language) string {
	if l == French && message == weather.MsgForecastUnavailable {
		return "Impossible de récupérer les données météorologiques."
	}
	return message
}

// UsageNotice is what the user sees when they pass no location and none is
// saved for them.
func UsageNotice(l Language) string {
	if l == French {
		return "météo <lieu> - Quel temps fait-il à <lieu>?"
	}
	return "weather <location> - Gets weather data for <location>."
}

var validate = validator.New()

// Present formats a normalized report as the single-line command response.
// It is pure formatting: a report with any missing field is a pipeline
// defect, so it fails with an error instead of rendering a partial line.
// The \x02 markers are the chat protocol's bold toggles.
func Present(r *weather.Report, l Language) (string, error) {
	if r == nil {
		return "", errors.New("present: nil report")
	}
	if err := validate.Struct(r); err != nil {
		return "", fmt.Errorf("present: incomplete report: %w", err)
	}

	if l == French {
		return fmt.Sprintf("%s - \x02Actuelle:\x02 %s, %vF/%vC, %s, "+
			"Vent: %vMPH/%vKPH %s, "+
			"\x02Aujourd'hui:\x02 %s, Haute: %sF/%sC, Basse: %sF/%sC. "+
			"\x02Demain:\x02 %s, Haute: %sF/%sC, Basse: %sF/%sC - %s",
			r.Place, r.Conditions, r.TempF, r.TempC, r.Humidity,
			r.WindMph, r.WindKph, r.WindDirection,
			r.TodayConditions, r.TodayHighF, r.TodayHighC, r.TodayLowF, r.TodayLowC,
			r.TomorrowConditions, r.TomorrowHighF, r.TomorrowHighC, r.TomorrowLowF, r.TomorrowLowC,
			r.URL), nil
	}

	return fmt.Sprintf("%s - \x02Current:\x02 %s, %vF/%vC, %s, "+
		"Wind: %vMPH/%vKPH %s, "+
		"\x02Today:\x02 %s, High: %sF/%sC, Low: %sF/%sC. "+
		"\x02Tomorrow:\x02 %s, High: %sF/%sC, Low: %sF/%sC - %s",
		r.Place, r.Conditions, r.TempF, r.TempC, r.Humidity,
		r.WindMph, r.WindKph, r.WindDirection,
		r.TodayConditions, r.TodayHighF, r.TodayHighC, r.TodayLowF, r.TodayLowC,
		r.TomorrowConditions, r.TomorrowHighF, r.TomorrowHighC, r.TomorrowLowF, r.TomorrowLowC,
		r.URL), nil
}
