package handler

import (
	"net/http"
	"strconv"

	"heyfarmer/internal/delivery/api/response"
	"heyfarmer/internal/domain/county"
	domainerrors "heyfarmer/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
)

// CountyHandler serves the static county directory.
type CountyHandler struct{}

// NewCountyHandler is the constructor for CountyHandler
func NewCountyHandler() *CountyHandler {
	return &CountyHandler{}
}

// List returns every county, or those of ?metro= when given.
func (h *CountyHandler) List(c echo.Context) error {
	metro := c.QueryParam("metro")
	if metro == "" {
		return response.List(c, newCountyViews(county.All()))
	}

	return response.List(c, newCountyViews(county.InMetro(county.Metro(metro))))
}

// Get resolves a county by id or slug.
func (h *CountyHandler) Get(c echo.Context) error {
	id := county.ID(c.Param("slug"))
	if !county.IsValid(id) {
		var ok bool
		if id, ok = county.Unslugify(c.Param("slug")); !ok {
			return response.HandleAppError(c, domainerrors.ErrUnknownCounty)
		}
	}

	found, _ := county.Lookup(id)

	return response.Success(c, http.StatusOK, &CountyView{County: found, Slug: found.Slug()})
}

// Nearest returns the county whose seat is closest to ?lat=&lon=.
func (h *CountyHandler) Nearest(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if latErr != nil || lonErr != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails("lat and lon must be valid coordinates"))
	}

	found := county.Nearest(orb.Point{lon, lat})

	return response.Success(c, http.StatusOK, &CountyView{County: found, Slug: found.Slug()})
}
