package api

import (
	"net/http"

	"commerce-service/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orders.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Order Not Found")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) getOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Order Not Found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) getOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	status, err := h.orders.Status(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Order Not Found")
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *Handler) listOrdersByCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	orders, err := h.orders.ListByCustomer(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Order Not Found")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) createOrder(c *gin.Context) {
	var in validation.OrderInput
	if !bindJSON(c, &in) {
		return
	}

	result, err := h.orders.Create(c.Request.Context(), &in, c.GetHeader("Idempotency-Key"))
	if err != nil {
		respondError(c, err, "Not Found")
		return
	}

	if result.Duplicate {
		c.JSON(http.StatusOK, result)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":  "New Order Added Successfully!",
		"order_id": result.OrderID,
	})
}

func (h *Handler) updateOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in validation.OrderInput
	if !bindJSON(c, &in) {
		return
	}

	if err := h.orders.Update(c.Request.Context(), id, &in); err != nil {
		respondError(c, err, "Order Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order Updated Successfully!"})
}

func (h *Handler) deleteOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.orders.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Order Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order removed successfully"})
}
