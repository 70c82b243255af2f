package api

import (
	"errors"
	"net/http"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/service"
	"shivasadhana-api/internal/session"
	"shivasadhana-api/internal/store"

	"github.com/gin-gonic/gin"
)

// listEnquiries returns every enquiry, newest first. Admin view.
func (h *Handler) listEnquiries(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.GetEnquiries())
}

// listUserEnquiries returns one user's enquiries, newest first. A
// customer may only read their own; admins may read anyone's.
func (h *Handler) listUserEnquiries(c *gin.Context) {
	userID := c.Param("userId")
	actor := currentUser(c)
	if actor.ID != userID && !session.IsAdmin(actor) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	c.JSON(http.StatusOK, h.store.GetUserEnquiries(userID))
}

func (h *Handler) createEnquiry(c *gin.Context) {
	var req service.CreateEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	enquiry, err := h.enquiries.Create(c.Request.Context(), currentUser(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create enquiry"})
		return
	}

	c.JSON(http.StatusCreated, enquiry)
}

func (h *Handler) updateEnquiry(c *gin.Context) {
	var updates models.EnquiryUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	enquiry, err := h.enquiries.Update(c.Request.Context(), c.Param("id"), &updates)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Enquiry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update enquiry"})
		return
	}

	c.JSON(http.StatusOK, enquiry)
}

func (h *Handler) deleteEnquiry(c *gin.Context) {
	h.store.DeleteEnquiry(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"success": true})
}
