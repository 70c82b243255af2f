package api

import (
	"errors"
	"net/http"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/store"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listShraddhaPackages(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetShraddhaPackages())
}

func (h *Handler) createShraddhaPackage(c *gin.Context) {
	var pkg models.ShraddhaPackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, h.store.CreateShraddhaPackage(pkg))
}

func (h *Handler) updateShraddhaPackage(c *gin.Context) {
	var updates models.ShraddhaPackageUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	pkg, err := h.store.UpdateShraddhaPackage(c.Param("id"), &updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Shraddha package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update shraddha package"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

func (h *Handler) deleteShraddhaPackage(c *gin.Context) {
	h.store.DeleteShraddhaPackage(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
