package api

import (
	"net/http"

	"commerce-service/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.products.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Product Not Found")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) getProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	product, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Product Not Found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) getProductByName(c *gin.Context) {
	name := c.Query("name")

	product, err := h.products.GetByName(c.Request.Context(), name)
	if err != nil {
		respondError(c, err, "Product Not Found")
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *Handler) createProduct(c *gin.Context) {
	var in validation.ProductInput
	if !bindJSON(c, &in) {
		return
	}

	product, err := h.products.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, "Product Not Found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Product has been added successfully",
		"id":      product.ID,
	})
}

func (h *Handler) updateProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in validation.ProductInput
	if !bindJSON(c, &in) {
		return
	}

	if err := h.products.Update(c.Request.Context(), id, &in); err != nil {
		respondError(c, err, "Product Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product details updated successfully"})
}

func (h *Handler) deleteProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.products.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Product Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed successfully"})
}
