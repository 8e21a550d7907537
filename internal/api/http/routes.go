package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/irclabs/weathercmd/internal/lang"
	"github.com/irclabs/weathercmd/internal/weather"
)

var validate = validator.New()

// RegisterRoutes wires the two command endpoints into the Fiber app.
// /weather answers in English, /meteo en français; both take the caller's
// nick and an optional free-text location.
func RegisterRoutes(app *fiber.App, service *weather.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather", commandHandler(service, lang.English))
	v1.Get("/meteo", commandHandler(service, lang.French))
}

// commandQuery holds query parameters for a weather command.
type commandQuery struct {
	Nick  string `validate:"required"`
	Query string
}

func commandHandler(service *weather.Service, l lang.Language) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := commandQuery{
			Nick:  c.Query("nick"),
			Query: c.Query("query"),
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		noLocation := false
		out, err := service.Lookup(c.Context(), weather.Request{
			Nick:     q.Nick,
			Query:    q.Query,
			LangCode: l.Code(),
			Notify:   func() { noLocation = true },
		})
		if err != nil {
			// Config and geocode errors are the command's output, rendered
			// in the invoked command's language. Anything else is a
			// transport failure and stays an HTTP error.
			var ge *weather.GeocodeError
			var mk *weather.MissingKeyError
			if errors.As(err, &ge) || errors.As(err, &mk) {
				return respond(c, lang.RenderError(err, l))
			}
			return fiber.NewError(fiber.StatusBadGateway, "weather lookup failed")
		}

		if noLocation {
			return respond(c, lang.UsageNotice(l))
		}
		if out.Message != "" {
			return respond(c, lang.Localize(out.Message, l))
		}

		line, err := lang.Present(out.Report, l)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return respond(c, line)
	}
}

func respond(c *fiber.Ctx, line string) error {
	return c.JSON(fiber.Map{"response": line})
}
