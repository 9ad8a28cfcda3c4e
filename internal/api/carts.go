package api

import (
	"net/http"

	"commerce-service/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createCart(c *gin.Context) {
	var in validation.CartInput
	if !bindJSON(c, &in) {
		return
	}

	result, err := h.carts.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, "Not Found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Products added successfully",
		"cart_id": result.CartID,
	})
}

func (h *Handler) getCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	cart, err := h.carts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Cart Not Found")
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *Handler) listCarts(c *gin.Context) {
	carts, err := h.carts.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Cart Not Found")
		return
	}
	c.JSON(http.StatusOK, carts)
}

func (h *Handler) listCartsByCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	carts, err := h.carts.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Cart Not Found")
		return
	}
	c.JSON(http.StatusOK, carts)
}

func (h *Handler) listCartsGroupedByCustomer(c *gin.Context) {
	grouped, err := h.carts.GroupByCustomer(c.Request.Context())
	if err != nil {
		respondError(c, err, "Cart Not Found")
		return
	}
	c.JSON(http.StatusOK, grouped)
}

func (h *Handler) updateCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in validation.CartUpdateInput
	if !bindJSON(c, &in) {
		return
	}

	if err := h.carts.Update(c.Request.Context(), id, &in); err != nil {
		respondError(c, err, "Cart Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
}

func (h *Handler) deleteCart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.carts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Cart Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart deleted successfully"})
}

func (h *Handler) deleteCartItem(c *gin.Context) {
	cartID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID, ok := parseID(c, "item_id")
	if !ok {
		return
	}

	if err := h.carts.DeleteItem(c.Request.Context(), cartID, itemID); err != nil {
		respondError(c, err, "Item Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}
