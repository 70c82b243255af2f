package api

import (
	"errors"
	"net/http"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/store"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listAccommodations(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetAccommodations())
}

func (h *Handler) createAccommodation(c *gin.Context) {
	var accommodation models.Accommodation
	if err := c.ShouldBindJSON(&accommodation); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, h.store.CreateAccommodation(accommodation))
}

func (h *Handler) updateAccommodation(c *gin.Context) {
	var updates models.AccommodationUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	accommodation, err := h.store.UpdateAccommodation(c.Param("id"), &updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Accommodation not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update accommodation"})
		return
	}

	c.JSON(http.StatusOK, accommodation)
}

func (h *Handler) deleteAccommodation(c *gin.Context) {
	h.store.DeleteAccommodation(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
