package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"storefront/internal/models"
	"storefront/internal/service"
	"storefront/internal/session"
	"storefront/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const sessionCookie = "storefront_session"

// SessionStore is the session surface the handlers need; implemented by
// session.Manager.
type SessionStore interface {
	Issue() (token, cookie string)
	Verify(cookie string) (string, bool)
	Get(ctx context.Context, token string) (*models.CartSession, error)
	Save(ctx context.Context, token string, sess *models.CartSession) error
}

// Handler contains HTTP handlers
type Handler struct {
	catalog    *service.CatalogService
	checkout   *service.CheckoutService
	sessions   SessionStore
	sessionTTL time.Duration
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(catalog *service.CatalogService, checkout *service.CheckoutService, sessions SessionStore, sessionTTL time.Duration) *Handler {
	return &Handler{
		catalog:    catalog,
		checkout:   checkout,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		logger:     util.GetLogger(),
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/", h.listProducts)
	router.GET("/products", h.listProducts)
	router.GET("/single_product", h.singleProduct)
	router.GET("/about", h.about)

	router.POST("/add_to_cart", h.addToCart)
	router.GET("/cart", h.viewCart)
	router.POST("/remove_product", h.removeProduct)
	router.POST("/edit_product_quantity", h.editProductQuantity)

	router.GET("/checkout", h.showCheckout)
	router.POST("/place_order", h.placeOrder)
	router.GET("/payment", h.showPayment)
	router.GET("/verify_payment", h.verifyPayment)
	router.GET("/thank_you", h.thankYou)
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

// loadSession returns the cart session for the request's cookie, issuing a
// fresh token (and cookie) when none is present or the signature is bad.
func (h *Handler) loadSession(c *gin.Context) (string, *models.CartSession) {
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		if token, ok := h.sessions.Verify(cookie); ok {
			sess, err := h.sessions.Get(c.Request.Context(), token)
			if err == nil {
				return token, sess
			}
			if !errors.Is(err, session.ErrNoSession) {
				h.logger.Error("Failed to load session", zap.Error(err))
			}
			return token, &models.CartSession{}
		}
	}

	token, cookie := h.sessions.Issue()
	c.SetCookie(sessionCookie, cookie, int(h.sessionTTL.Seconds()), "/", "", false, true)
	return token, &models.CartSession{}
}

// saveSession persists the session and renders the error page on failure.
// Returns false when the caller should stop handling the request.
func (h *Handler) saveSession(c *gin.Context, token string, sess *models.CartSession) bool {
	if err := h.sessions.Save(c.Request.Context(), token, sess); err != nil {
		h.logger.Error("Failed to save session", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return false
	}
	return true
}

func (h *Handler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.tmpl", gin.H{"Message": message})
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
