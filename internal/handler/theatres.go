package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-booking/internal/model"
	"github.com/iliyamo/movie-booking/internal/repository"
)

// TheatreHandler exposes the theatre registry.  Listing is public;
// creation is restricted to admins by the route middleware.
type TheatreHandler struct {
	Theatres *repository.TheatreRepo
}

func NewTheatreHandler(t *repository.TheatreRepo) *TheatreHandler {
	if t == nil {
		panic("nil repository passed to NewTheatreHandler")
	}
	return &TheatreHandler{Theatres: t}
}

type theatreCreateReq struct {
	Name        string `json:"name"`
	Location    string `json:"location"`
	TotalSeats  int    `json:"totalSeats"`
	Rows        int    `json:"rows"`
	SeatsPerRow int    `json:"seatsPerRow"`
}

// List handles GET /api/theatres.
func (h *TheatreHandler) List(c echo.Context) error {
	theatres, err := h.Theatres.ListAll(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to load theatres")
	}
	return c.JSON(http.StatusOK, theatres)
}

// Create handles POST /api/theatres (admin only).  Rows × seatsPerRow is
// not validated against totalSeats; the seat map is derived purely from
// the geometry.
func (h *TheatreHandler) Create(c echo.Context) error {
	var req theatreCreateReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Location == "" {
		return fail(c, http.StatusBadRequest, "name and location are required")
	}
	if req.Rows <= 0 || req.SeatsPerRow <= 0 || req.TotalSeats <= 0 {
		return fail(c, http.StatusBadRequest, "seat counts must be positive")
	}

	t, err := h.Theatres.Create(c.Request().Context(), model.Theatre{
		Name:        req.Name,
		Location:    req.Location,
		TotalSeats:  req.TotalSeats,
		Rows:        req.Rows,
		SeatsPerRow: req.SeatsPerRow,
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "failed to create theatre")
	}
	return c.JSON(http.StatusCreated, t)
}
