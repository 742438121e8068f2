package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
)

type ArtistHandler struct {
	base
	svc service.ArtistService
}

func NewArtistHandler(svc service.ArtistService, flash *Flash) *ArtistHandler {
	return &ArtistHandler{base: base{flash: flash}, svc: svc}
}

func (h *ArtistHandler) RegisterRoutes(e *echo.Echo) {
	artists := e.Group("/artists")
	artists.GET("", h.ListArtists)
	artists.POST("/search", h.SearchArtists)
	artists.GET("/create", h.NewArtistForm)
	artists.POST("/create", h.CreateArtist)
	artists.GET("/:id", h.ShowArtist)
	artists.GET("/:id/edit", h.EditArtistForm)
	artists.POST("/:id/edit", h.UpdateArtist)
}

func (h *ArtistHandler) ListArtists(c echo.Context) error {
	artists, err := h.svc.ListArtists(c.Request().Context())
	if err != nil {
		return lookupFailed(err)
	}

	page := h.page(c, "Artists")
	page.Data = artists
	return c.Render(http.StatusOK, "pages/artists", page)
}

func (h *ArtistHandler) SearchArtists(c echo.Context) error {
	term := c.FormValue("search_term")

	result, err := h.svc.SearchArtists(c.Request().Context(), term)
	if err != nil {
		return lookupFailed(err)
	}

	page := h.page(c, "Search artists")
	page.Form = term
	page.Data = result
	return c.Render(http.StatusOK, "pages/search_artists", page)
}

func (h *ArtistHandler) ShowArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.svc.GetArtist(c.Request().Context(), id)
	if err != nil {
		return lookupFailed(err)
	}

	page := h.page(c, detail.Name)
	page.Data = detail
	return c.Render(http.StatusOK, "pages/show_artist", page)
}

func (h *ArtistHandler) NewArtistForm(c echo.Context) error {
	page := h.page(c, "New artist")
	page.Form = dto.ArtistForm{}
	page.Action = "/artists/create"
	return c.Render(http.StatusOK, "forms/new_artist", page)
}

func (h *ArtistHandler) CreateArtist(c echo.Context) error {
	var form dto.ArtistForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	artist, err := h.svc.CreateArtist(c.Request().Context(), form)
	if err != nil {
		page := h.page(c, "New artist")
		page.Form = form
		page.Action = "/artists/create"
		return h.formFailed(c, err, "forms/new_artist", page,
			fmt.Sprintf("An error occurred. Artist %s could not be listed.", strings.TrimSpace(form.Name)))
	}

	return h.redirect(c, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

func (h *ArtistHandler) EditArtistForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	form, err := h.svc.GetArtistForm(c.Request().Context(), id)
	if err != nil {
		return lookupFailed(err)
	}

	page := h.page(c, "Edit artist")
	page.Form = form
	page.Action = fmt.Sprintf("/artists/%d/edit", id)
	return c.Render(http.StatusOK, "forms/edit_artist", page)
}

func (h *ArtistHandler) UpdateArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var form dto.ArtistForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	artist, err := h.svc.UpdateArtist(c.Request().Context(), id, form)
	if err != nil {
		page := h.page(c, "Edit artist")
		page.Form = form
		page.Action = fmt.Sprintf("/artists/%d/edit", id)
		return h.formFailed(c, err, "forms/edit_artist", page,
			fmt.Sprintf("An error occurred. Artist %d could not be updated.", id))
	}

	return h.redirect(c, fmt.Sprintf("/artists/%d", id), fmt.Sprintf("Artist %s was successfully updated!", artist.Name))
}
