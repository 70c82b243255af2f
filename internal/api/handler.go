package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"shivasadhana-api/internal/models"
	"shivasadhana-api/internal/service"
	"shivasadhana-api/internal/store"
	"shivasadhana-api/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SessionStore tracks the acting identity behind each client token.
type SessionStore interface {
	Create(ctx context.Context, user models.User) (string, error)
	Resolve(ctx context.Context, token string) (*models.User, error)
	Destroy(ctx context.Context, token string) error
}

// Handler contains the HTTP handlers for the public site and the admin
// back-office.
type Handler struct {
	store     *store.Store
	auth      *service.AuthService
	enquiries *service.EnquiryService
	sessions  SessionStore
}

// NewHandler creates a new HTTP handler
func NewHandler(st *store.Store, auth *service.AuthService, enquiries *service.EnquiryService, sessions SessionStore) *Handler {
	return &Handler{
		store:     st,
		auth:      auth,
		enquiries: enquiries,
		sessions:  sessions,
	}
}

// SetupRoutes sets up HTTP routes. Catalog reads are public; catalog
// mutations and the admin enquiry views sit behind the admin guard.
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	api.Use(h.resolveSession())

	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
		auth.POST("/logout", h.logout)
	}

	products := api.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.requireAdmin(), h.createProduct)
		products.PUT("/:id", h.requireAdmin(), h.updateProduct)
		products.DELETE("/:id", h.requireAdmin(), h.deleteProduct)
	}

	travels := api.Group("/travels")
	{
		travels.GET("", h.listTravels)
		travels.POST("", h.requireAdmin(), h.createTravel)
		travels.PUT("/:id", h.requireAdmin(), h.updateTravel)
		travels.DELETE("/:id", h.requireAdmin(), h.deleteTravel)
	}

	accommodations := api.Group("/accommodations")
	{
		accommodations.GET("", h.listAccommodations)
		accommodations.POST("", h.requireAdmin(), h.createAccommodation)
		accommodations.PUT("/:id", h.requireAdmin(), h.updateAccommodation)
		accommodations.DELETE("/:id", h.requireAdmin(), h.deleteAccommodation)
	}

	shraddha := api.Group("/shraddha-packages")
	{
		shraddha.GET("", h.listShraddhaPackages)
		shraddha.POST("", h.requireAdmin(), h.createShraddhaPackage)
		shraddha.PUT("/:id", h.requireAdmin(), h.updateShraddhaPackage)
		shraddha.DELETE("/:id", h.requireAdmin(), h.deleteShraddhaPackage)
	}

	banners := api.Group("/banners")
	{
		banners.GET("", h.listBanners)
		banners.POST("", h.requireAdmin(), h.createBanner)
		banners.PUT("/:id", h.requireAdmin(), h.updateBanner)
		banners.DELETE("/:id", h.requireAdmin(), h.deleteBanner)
	}

	enquiries := api.Group("/enquiries")
	{
		enquiries.GET("", h.requireAdmin(), h.listEnquiries)
		enquiries.GET("/user/:userId", h.requireAuth(), h.listUserEnquiries)
		enquiries.POST("", h.requireAuth(), h.createEnquiry)
		enquiries.PUT("/:id", h.requireAdmin(), h.updateEnquiry)
		enquiries.DELETE("/:id", h.requireAdmin(), h.deleteEnquiry)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
