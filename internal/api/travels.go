package api

import (
	"errors"
	"net/http"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/store"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listTravels(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetTravels())
}

func (h *Handler) createTravel(c *gin.Context) {
	var travel models.Travel
	if err := c.ShouldBindJSON(&travel); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, h.store.CreateTravel(travel))
}

func (h *Handler) updateTravel(c *gin.Context) {
	var updates models.TravelUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	travel, err := h.store.UpdateTravel(c.Param("id"), &updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Travel package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update travel package"})
		return
	}

	c.JSON(http.StatusOK, travel)
}

func (h *Handler) deleteTravel(c *gin.Context) {
	h.store.DeleteTravel(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
