package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/marquee-api/internal/forms"
	"github.com/gravadigital/marquee-api/internal/response"
	"github.com/gravadigital/marquee-api/internal/services"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

type ArtistHandler struct {
	artists *services.ArtistService
}

func NewArtistHandler(artists *services.ArtistService) *ArtistHandler {
	return &ArtistHandler{artists: artists}
}

// List handles GET /artists
func (h *ArtistHandler) List(c *gin.Context) {
	refs, err := h.artists.List()
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve artists")
		return
	}

	c.JSON(http.StatusOK, gin.H{"artists": refs})
}

// Search handles POST /artists/search
func (h *ArtistHandler) Search(c *gin.Context) {
	term := c.DefaultPostForm("search_term", "")

	results, err := h.artists.Search(term)
	if err != nil {
		response.InternalServerError(c, "Failed to search artists")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"results":     results,
		"search_term": term,
	})
}

// Get handles GET /artists/:id
func (h *ArtistHandler) Get(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequestError(c, "Invalid artist id")
		return
	}

	detail, err := h.artists.Get(id, time.Now())
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Artist not found")
			return
		}
		response.InternalServerError(c, "Failed to retrieve artist")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Create handles POST /artists
func (h *ArtistHandler) Create(c *gin.Context) {
	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequestError(c, "Invalid request payload")
		return
	}

	if ok, fieldErrors := form.Validate(); !ok {
		response.ValidationError(c, "Artist was not successfully listed.", fieldErrors)
		return
	}

	a, err := h.artists.Create(&form)
	if err != nil {
		response.InternalServerError(c, "An error occurred. Artist "+form.Name+" could not be listed.")
		return
	}

	response.SuccessResponse(c, http.StatusCreated, "Artist "+a.Name+" was successfully listed!", a)
}

// Update handles POST /artists/:id/edit
func (h *ArtistHandler) Update(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequestError(c, "Invalid artist id")
		return
	}

	var form forms.ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		response.BadRequestError(c, "Invalid request payload")
		return
	}

	if ok, fieldErrors := form.Validate(); !ok {
		response.ValidationError(c, "Artist was not edited successfully.", fieldErrors)
		return
	}

	a, err := h.artists.Update(id, &form)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Artist not found")
			return
		}
		response.InternalServerError(c, "Oops! An error occurred. Artist "+form.Name+" could not be edited.")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Artist "+a.Name+" was successfully edited!", a)
}

// Delete handles DELETE /artists/:id, symmetric with venue deletion
func (h *ArtistHandler) Delete(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequestError(c, "Invalid artist id")
		return
	}

	name, err := h.artists.Delete(id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Artist not found")
			return
		}
		response.FailureMessage(c, "Artist was not deleted successfully.")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Artist "+name+" was deleted successfully!", nil)
}
