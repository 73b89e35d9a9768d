package api

import (
	"errors"
	"net/http"

	"storefront/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type singleProductRequest struct {
	ID int64 `form:"id" binding:"required"`
}

// listProducts renders the product listing for both / and /products.
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list products", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	template := "index.tmpl"
	if c.FullPath() == "/products" {
		template = "products.tmpl"
	}
	c.HTML(http.StatusOK, template, gin.H{"Products": products})
}

// singleProduct renders one product's detail page.
func (h *Handler) singleProduct(c *gin.Context) {
	var req singleProductRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.renderError(c, http.StatusBadRequest, "Invalid product id.")
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

	c.HTML(http.StatusOK, "single_product.tmpl", gin.H{"Product": product})
}

func (h *Handler) about(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", gin.H{})
}
