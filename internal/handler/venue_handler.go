package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/Eursukkul/booking-microservice/directory-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/directory-service/internal/service"
)

type VenueHandler struct {
	base
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService, flash *Flash) *VenueHandler {
	return &VenueHandler{base: base{flash: flash}, svc: svc}
}

func (h *VenueHandler) RegisterRoutes(e *echo.Echo) {
	venues := e.Group("/venues")
	venues.GET("", h.ListVenues)
	venues.POST("/search", h.SearchVenues)
	venues.GET("/create", h.NewVenueForm)
	venues.POST("/create", h.CreateVenue)
	venues.GET("/:id", h.ShowVenue)
	venues.DELETE("/:id", h.DeleteVenue)
	venues.GET("/:id/edit", h.EditVenueForm)
	venues.POST("/:id/edit", h.UpdateVenue)
}

func (h *VenueHandler) ListVenues(c echo.Context) error {
	groups, err := h.svc.Directory(c.Request().Context())
	if err != nil {
		return lookupFailed(err)
	}

	page := h.page(c, "Venues")
	page.Data = groups
	return c.Render(http.StatusOK, "pages/venues", page)
}

func (h *VenueHandler) SearchVenues(c echo.Context) error {
	term := c.FormValue("search_term")

	result, err := h.svc.SearchVenues(c.Request().Context(), term)
	if err != nil {
		return lookupFailed(err)
	}

	page := h.page(c, "Search venues")
	page.Form = term
	page.Data = result
	return c.Render(http.StatusOK, "pages/search_venues", page)
}

func (h *VenueHandler) ShowVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	detail, err := h.svc.GetVenue(c.Request().Context(), id)
	if err != nil {
		return lookupFailed(err)
	}

	page := h.page(c, detail.Name)
	page.Data = detail
	return c.Render(http.StatusOK, "pages/show_venue", page)
}

func (h *VenueHandler) NewVenueForm(c echo.Context) error {
	page := h.page(c, "New venue")
	page.Form = dto.VenueForm{}
	page.Action = "/venues/create"
	return c.Render(http.StatusOK, "forms/new_venue", page)
}

func (h *VenueHandler) CreateVenue(c echo.Context) error {
	var form dto.VenueForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	venue, err := h.svc.CreateVenue(c.Request().Context(), form)
	if err != nil {
		page := h.page(c, "New venue")
		page.Form = form
		page.Action = "/venues/create"
		return h.formFailed(c, err, "forms/new_venue", page,
			fmt.Sprintf("An error occurred. Venue %s could not be listed.", strings.TrimSpace(form.Name)))
	}

	return h.redirect(c, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

func (h *VenueHandler) EditVenueForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	form, err := h.svc.GetVenueForm(c.Request().Context(), id)
	if err != nil {
		return lookupFailed(err)
	}

	page := h.page(c, "Edit venue")
	page.Form = form
	page.Action = fmt.Sprintf("/venues/%d/edit", id)
	return c.Render(http.StatusOK, "forms/edit_venue", page)
}

func (h *VenueHandler) UpdateVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var form dto.VenueForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form body")
	}

	venue, err := h.svc.UpdateVenue(c.Request().Context(), id, form)
	if err != nil {
		page := h.page(c, "Edit venue")
		page.Form = form
		page.Action = fmt.Sprintf("/venues/%d/edit", id)
		return h.formFailed(c, err, "forms/edit_venue", page,
			fmt.Sprintf("An error occurred. Venue %d could not be updated.", id))
	}

	return h.redirect(c, fmt.Sprintf("/venues/%d", id), fmt.Sprintf("Venue %s was successfully updated!", venue.Name))
}

// DeleteVenue answers JSON: the page calling it follows redirect_url.
func (h *VenueHandler) DeleteVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	name, err := h.svc.DeleteVenue(c.Request().Context(), id)
	switch {
	case err == nil:
		msg := fmt.Sprintf("Venue %s was successfully deleted!", name)
		h.flash.Add(c, msg)
		return c.JSON(http.StatusOK, dto.DeleteResponse{Success: true, Message: &msg, RedirectURL: "/"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, dto.DeleteResponse{Success: false, RedirectURL: "/venues"})
	default:
		log.Error().Err(err).Uint("venue_id", id).Msg("delete venue failed")
		h.flash.Add(c, fmt.Sprintf("An error occurred. Venue %d could not be deleted.", id))
		return c.JSON(http.StatusInternalServerError, dto.DeleteResponse{
			Success:     false,
			RedirectURL: fmt.Sprintf("/venues/%d", id),
		})
	}
}
