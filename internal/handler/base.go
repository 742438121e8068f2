package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/view"
)

// base holds what every page handler shares.
type base struct {
	flash *Flash
}

// page starts the template data for this request, consuming pending flashes.
func (b base) page(c echo.Context, title string) *view.Page {
	token, _ := c.Get(echomw.DefaultCSRFConfig.ContextKey).(string)
	return &view.Page{
		Title:   title,
		Flashes: b.flash.Pop(c),
		CSRF:    token,
	}
}

func (b base) redirect(c echo.Context, to string, msgs ...string) error {
	if len(msgs) > 0 {
		b.flash.Add(c, msgs...)
	}
	return c.Redirect(http.StatusSeeOther, to)
}

// formFailed renders the outcome of a rejected form submission. A validation
// error re-renders the form with the submitted values; a persistence error
// shows the home page with a generic message. Anything else is returned for
// the central error handler.
func (b base) formFailed(c echo.Context, err error, tmpl string, page *view.Page, generic string) error {
	var validationErr *service.ValidationError
	var persistenceErr *service.PersistenceError
	switch {
	case errors.As(err, &validationErr):
		page.Errors = validationErr.Fields
		page.Flashes = append(page.Flashes, validationErr.Fields.Messages()...)
		return c.Render(http.StatusUnprocessableEntity, tmpl, page)
	case errors.Is(err, service.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.As(err, &persistenceErr):
		log.Error().Err(persistenceErr.Err).Str("op", persistenceErr.Op).Msg("write rolled back")
		home := b.page(c, "")
		home.Flashes = append(page.Flashes, generic)
		return c.Render(http.StatusInternalServerError, "pages/home", home)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
	}
}

// lookupFailed maps a read error onto a 404 or 500 response.
func lookupFailed(err error) error {
	if errors.Is(err, service.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(err)
}

func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return uint(id), nil
}
