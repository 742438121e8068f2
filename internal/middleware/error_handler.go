package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/view"
)

// pageLookup is implemented by renderers that can report which pages exist.
type pageLookup interface {
	Has(name string) bool
}

type ErrorInfo struct {
	Code    int
	Message string
}

// ErrorHandler renders every unhandled error: an error page for browsers and
// a JSON body for clients that ask for JSON.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	if code >= http.StatusInternalServerError {
		cause := err
		if he != nil && he.Internal != nil {
			cause = he.Internal
		}
		log.Error().Err(cause).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Msg("request failed")
		// Internal details never reach the client.
		msg = http.StatusText(code)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	if wantsJSON(c.Request()) {
		_ = c.JSON(code, dto.ErrorResponse{Message: msg})
		return
	}

	page := &view.Page{
		Title: http.StatusText(code),
		Data:  ErrorInfo{Code: code, Message: msg},
	}
	name := errorTemplate(code)
	if pages, ok := c.Echo().Renderer.(pageLookup); ok && !pages.Has(name) {
		name = genericErrorTemplate
	}
	if err := c.Render(code, name, page); err != nil {
		log.Error().Err(err).Int("status", code).Msg("render error page")
		_ = c.String(code, msg)
	}
}

const genericErrorTemplate = "errors/error"

func errorTemplate(code int) string {
	switch {
	case code == http.StatusNotFound || code == http.StatusMethodNotAllowed:
		return "errors/404"
	case code >= http.StatusInternalServerError:
		return "errors/500"
	default:
		return genericErrorTemplate
	}
}

func wantsJSON(r *http.Request) bool {
	if r.Header.Get("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	accept := r.Header.Get(echo.HeaderAccept)
	return strings.Contains(accept, echo.MIMEApplicationJSON) && !strings.Contains(accept, echo.MIMETextHTML)
}
