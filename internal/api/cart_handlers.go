package api

import (
	"errors"
	"net/http"

	"storefront/internal/cart"
	"storefront/internal/store"
	"storefront/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type addToCartRequest struct {
	ID       int64 `form:"id" binding:"required"`
	Quantity int   `form:"quantity" binding:"required,min=1"`
}

type removeProductRequest struct {
	ID int64 `form:"id" binding:"required"`
}

type editQuantityRequest struct {
	ID       int64  `form:"id" binding:"required"`
	Increase string `form:"increase_product_quantity"`
	Decrease string `form:"decrease_product_quantity"`
}

// addToCart snapshots the product into the session cart. Adding a product
// that is already in the cart leaves the existing line untouched.
func (h *Handler) addToCart(c *gin.Context) {
	var req addToCartRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid product or quantity.")
		return
	}

	product, err := h.catalog.GetProduct(c.Request.Context(), req.ID)
	if errors.Is(err, store.ErrNotFound) {
		h.renderError(c, http.StatusNotFound, "Product not found.")
		return
	}
	if err != nil {
		h.logger.Error("Failed to load product", zap.Int64("product_id", req.ID), zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	token, sess := h.loadSession(c)
	cart.Add(sess, product, req.Quantity)
	util.CartOperationsTotal.WithLabelValues("add").Inc()

	if !h.saveSession(c, token, sess) {
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

// viewCart renders the cart page. An empty cart renders fine with a zero
// total.
func (h *Handler) viewCart(c *gin.Context) {
	_, sess := h.loadSession(c)
	c.HTML(http.StatusOK, "cart.tmpl", gin.H{
		"Lines": sess.Lines,
		"Total": sess.Total,
	})
}

func (h *Handler) removeProduct(c *gin.Context) {
	var req removeProductRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid product id.")
		return
	}

	token, sess := h.loadSession(c)
	cart.Remove(sess, req.ID)
	util.CartOperationsTotal.WithLabelValues("remove").Inc()

	if !h.saveSession(c, token, sess) {
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}

// editProductQuantity adjusts a line's quantity by one in the direction of
// whichever submit button was pressed.
func (h *Handler) editProductQuantity(c *gin.Context) {
	var req editQuantityRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid product id.")
		return
	}

	var dir cart.Direction
	switch {
	case req.Increase != "":
		dir = cart.Increase
	case req.Decrease != "":
		dir = cart.Decrease
	default:
		h.renderError(c, http.StatusBadRequest, "No quantity change requested.")
		return
	}

	token, sess := h.loadSession(c)
	cart.Adjust(sess, req.ID, dir)
	util.CartOperationsTotal.WithLabelValues("adjust").Inc()

	if !h.saveSession(c, token, sess) {
		return
	}
	c.Redirect(http.StatusFound, "/cart")
}
