package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gravadigital/marquee-api/internal/response"
	"github.com/gravadigital/marquee-api/internal/services"
	"github.com/gravadigital/marquee-api/internal/storage/objectstore"
	"github.com/gravadigital/marquee-api/internal/storage/postgres"
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// MediaHandler uploads listing images to object storage and persists the
// resulting URL as the venue's or artist's image link.
type MediaHandler struct {
	store   objectstore.ImageStore
	venues  *services.VenueService
	artists *services.ArtistService
	maxSize int64
}

func NewMediaHandler(store objectstore.ImageStore, venues *services.VenueService, artists *services.ArtistService, maxSize int64) *MediaHandler {
	return &MediaHandler{
		store:   store,
		venues:  venues,
		artists: artists,
		maxSize: maxSize,
	}
}

// UploadVenueImage handles POST /venues/:id/image
func (h *MediaHandler) UploadVenueImage(c *gin.Context) {
	h.upload(c, "venues", func(id uint, url string) error {
		return h.venues.SetImageLink(id, url)
	})
}

// UploadArtistImage handles POST /artists/:id/image
func (h *MediaHandler) UploadArtistImage(c *gin.Context) {
	h.upload(c, "artists", func(id uint, url string) error {
		return h.artists.SetImageLink(id, url)
	})
}

func (h *MediaHandler) upload(c *gin.Context, folder string, persist func(id uint, url string) error) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.BadRequestError(c, "Invalid id")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.BadRequestError(c, "No image provided")
		return
	}
	defer file.Close()

	if header.Size > h.maxSize {
		response.BadRequestError(c, "Image exceeds the maximum allowed size")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		response.BadRequestError(c, "Image type not allowed")
		return
	}

	url, err := h.store.PutImage(c.Request.Context(), folder, header.Filename, contentType, header.Size, file)
	if err != nil {
		response.InternalServerError(c, "Failed to store image")
		return
	}

	if err := persist(id, url); err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFoundError(c, "Listing not found")
			return
		}
		response.InternalServerError(c, "Failed to save image link")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Image uploaded successfully", gin.H{"image_link": url})
}
