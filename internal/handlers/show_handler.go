package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/marquee-api/internal/forms"
	"github.com/gravadigital/marquee-api/internal/response"
	"github.com/gravadigital/marquee-api/internal/services"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

type ShowHandler struct {
	shows *services.ShowService
}

func NewShowHandler(shows *services.ShowService) *ShowHandler {
	return &ShowHandler{shows: shows}
}

// List handles GET /shows
func (h *ShowHandler) List(c *gin.Context) {
	listings, err := h.shows.List()
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve shows")
		return
	}

	c.JSON(http.StatusOK, gin.H{"shows": listings})
}

// Create handles POST /shows
func (h *ShowHandler) Create(c *gin.Context) {
	var form forms.ShowForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequestError(c, "Invalid request payload")
		return
	}

	if ok, fieldErrors := form.Validate(); !ok {
		response.ValidationError(c, "Show was not successfully listed.", fieldErrors)
		return
	}

	sh, err := h.shows.Create(&form)
	if err != nil {
		if errors.Is(err, postgres.ErrForeignKey) {
			response.BadRequestError(c, "Show references a missing artist or venue")
			return
		}
		response.InternalServerError(c, "An error occurred. Show could not be listed.")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "The Show was successfully listed!", sh)
}
