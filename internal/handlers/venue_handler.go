package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/marquee-api/internal/forms"
	"github.com/gravadigital/marquee-api/internal/response"
	"github.com/gravadigital/marquee-api/internal/services"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

type VenueHandler struct {
	venues *services.VenueService
}

func NewVenueHandler(venues *services.VenueService) *VenueHandler {
	return &VenueHandler{venues: venues}
}

// ListAreas handles GET /venues
func (h *VenueHandler) ListAreas(c *gin.Context) {
	areas, err := h.venues.ListAreas(time.Now())
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve venues")
		return
	}

	c.JSON(http.StatusOK, gin.H{"areas": areas})
}

// Search handles POST /venues/search
func (h *VenueHandler) Search(c *gin.Context) {
	term := c.DefaultPostForm("search_term", "")

	results, err := h.venues.Search(term)
	if err != nil {
		response.InternalServerError(c, "Failed to search venues")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":     results,
		"search_term": term,
	})
}

// Get handles GET /venues/:id
func (h *VenueHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequestError(c, "Invalid venue id")
		return
	}

	detail, err := h.venues.Get(id, time.Now())
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Venue not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve venue")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create handles POST /venues
func (h *VenueHandler) Create(c *gin.Context) {
	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequestError(c, "Invalid request payload")
		return
	}

	if ok, fieldErrors := form.Validate(); !ok {
		response.ValidationError(c, "Venue was not listed successfully.", fieldErrors)
		return
	}

	v, err := h.venues.Create(&form)
	if err != nil {
		response.InternalServerError(c, "An error occurred. Venue "+form.Name+" could not be listed.")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Venue "+v.Name+" was successfully listed!", v)
}

// Update handles POST /venues/:id/edit
func (h *VenueHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequestError(c, "Invalid venue id")
		return
	}

	var form forms.VenueForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequestError(c, "Invalid request payload")
		return
	}

	if ok, fieldErrors := form.Validate(); !ok {
		response.ValidationError(c, "Venue was not edited successfully.", fieldErrors)
		return
	}

	v, err := h.venues.Update(id, &form)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Venue not found")
			return
		}
		response.InternalServerError(c, "Oops! An error occurred. Venue "+form.Name+" could not be edited.")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Venue "+v.Name+" was successfully edited!", v)
}

// Delete handles DELETE /venues/:id. Storage failures here surface only as
// a failure message, never as a server error.
func (h *VenueHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequestError(c, "Invalid venue id")
		return
	}

	name, err := h.venues.Delete(id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Venue not found")
			return
		}
		response.FailureMessage(c, "Venue was not deleted successfully.")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Venue "+name+" was deleted successfully!", nil)
}

// parseID parses a decimal path parameter into an identifier
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
