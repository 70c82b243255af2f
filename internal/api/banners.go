package api

import (
	"errors"
	"net/http"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/store"

	"github.com/gin-gonic/gin"
)

// listBanners returns every banner sorted ascending by order; callers
// filter for isActive themselves.
func (h *Handler) listBanners(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetBanners())
}

func (h *Handler) createBanner(c *gin.Context) {
	var banner models.Banner
	if err := c.ShouldBindJSON(&banner); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, h.store.CreateBanner(banner))
}

func (h *Handler) updateBanner(c *gin.Context) {
	var updates models.BannerUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	banner, err := h.store.UpdateBanner(c.Param("id"), &updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Banner not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update banner"})
		return
	}

	c.JSON(http.StatusOK, banner)
}

func (h *Handler) deleteBanner(c *gin.Context) {
	h.store.DeleteBanner(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
