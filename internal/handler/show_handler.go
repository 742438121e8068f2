package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
)

type ShowHandler struct {
	base
	svc service.ShowService
}

func NewShowHandler(svc service.ShowService, flash *Flash) *ShowHandler {
	return &ShowHandler{base: base{flash: flash}, svc: svc}
}

func (h *ShowHandler) RegisterRoutes(e *echo.Echo) {
	shows := e.Group("/shows")
	shows.GET("", h.ListShows)
	shows.GET("/create", h.NewShowForm)
	shows.POST("/create", h.CreateShow)
}

func (h *ShowHandler) ListShows(c echo.Context) error {
	shows, err := h.svc.ListShows(c.Request().Context())
	if err != nil {
		return lookupFailed(err)
	}

	page := h.page(c, "Shows")
	page.Data = shows
	return c.Render(http.StatusOK, "pages/shows", page)
}

func (h *ShowHandler) NewShowForm(c echo.Context) error {
	page := h.page(c, "New show")
	page.Form = dto.ShowForm{}
	page.Action = "/shows/create"
	return c.Render(http.StatusOK, "forms/new_show", page)
}

func (h *ShowHandler) CreateShow(c echo.Context) error {
	var form dto.ShowForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	if _, err := h.svc.CreateShow(c.Request().Context(), form); err != nil {
		page := h.page(c, "New show")
		page.Form = form
		page.Action = "/shows/create"
		return h.formFailed(c, err, "forms/new_show", page, "An error occurred. Show could not be listed.")
	}

	return h.redirect(c, "/", "Show was successfully listed!")
}
