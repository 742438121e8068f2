package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HomeHandler struct {
	base
}

func NewHomeHandler(flash *Flash) *HomeHandler {
	return &HomeHandler{base: base{flash: flash}}
}

func (h *HomeHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Home)
}

func (h *HomeHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "pages/home", h.page(c, ""))
}
