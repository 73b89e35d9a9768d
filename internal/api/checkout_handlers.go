package api

import (
	"errors"
	"net/http"

	"storefront/internal/models"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type placeOrderRequest struct {
	Name    string `form:"name" binding:"required"`
	Email   string `form:"email" binding:"required,email"`
	Phone   string `form:"phone" binding:"required"`
	City    string `form:"city" binding:"required"`
	Address string `form:"address" binding:"required"`
}

type verifyPaymentRequest struct {
	TransactionID string `form:"transaction_id" binding:"required"`
}

func (h *Handler) showCheckout(c *gin.Context) {
	_, sess := h.loadSession(c)
	c.HTML(http.StatusOK, "checkout.tmpl", gin.H{"Total": sess.Total})
}

// placeOrder creates the order from the session cart and sends the customer
// on to the payment page. The cart is left as-is.
func (h *Handler) placeOrder(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		h.renderError(c, http.StatusBadRequest, "Please fill in all checkout fields.")
		return
	}

	token, sess := h.loadSession(c)

	customer := models.Customer{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		City:    req.City,
		Address: req.Address,
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), sess, customer)
	if err != nil {
		if service.IsValidationError(err) {
			h.renderError(c, http.StatusBadRequest, "Your cart is empty or the checkout form is incomplete.")
			return
		}
		h.logger.Error("Failed to place order", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	sess.OrderID = order.ID
	if !h.saveSession(c, token, sess) {
		return
	}
	c.Redirect(http.StatusFound, "/payment")
}

func (h *Handler) showPayment(c *gin.Context) {
	_, sess := h.loadSession(c)
	c.HTML(http.StatusOK, "payment.tmpl", gin.H{
		"Total":   sess.Total,
		"OrderID": sess.OrderID,
	})
}

// verifyPayment records the transaction reference from the payment provider
// against the order placed earlier in this session.
func (h *Handler) verifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.renderError(c, http.StatusBadRequest, "Missing transaction reference.")
		return
	}

	_, sess := h.loadSession(c)
	if sess.OrderID == 0 {
		h.renderError(c, http.StatusBadRequest, "No order has been placed in this session.")
		return
	}

	_, err := h.checkout.RecordPayment(c.Request.Context(), sess.OrderID, req.TransactionID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.renderError(c, http.StatusNotFound, "Order not found.")
		return
	case errors.Is(err, service.ErrAlreadyPaid):
		h.renderError(c, http.StatusConflict, "This order has already been paid.")
		return
	case err != nil:
		h.logger.Error("Failed to record payment", zap.Int64("order_id", sess.OrderID), zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	c.Redirect(http.StatusFound, "/thank_you")
}

func (h *Handler) thankYou(c *gin.Context) {
	_, sess := h.loadSession(c)
	c.HTML(http.StatusOK, "thank_you.tmpl", gin.H{"OrderID": sess.OrderID})
}
