package api

import (
	"net/http"

	"commerce-service/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listCustomers(c *gin.Context) {
	customers, err := h.customers.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Customer Not Found")
		return
	}
	c.JSON(http.StatusOK, customers)
}

func (h *Handler) getCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	customer, err := h.customers.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Customer Not Found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) getCustomerByEmail(c *gin.Context) {
	email := c.Query("email")

	customer, err := h.customers.GetByEmail(c.Request.Context(), email)
	if err != nil {
		respondError(c, err, "Customer Not Found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) createCustomer(c *gin.Context) {
	var in validation.CustomerInput
	if !bindJSON(c, &in) {
		return
	}

	customer, err := h.customers.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, "Customer Not Found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "New Customer Added Successfully!",
		"id":      customer.ID,
	})
}

func (h *Handler) updateCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in validation.CustomerInput
	if !bindJSON(c, &in) {
		return
	}

	if err := h.customers.Update(c.Request.Context(), id, &in); err != nil {
		respondError(c, err, "Customer Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer details updated successfully"})
}

func (h *Handler) deleteCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.customers.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Customer Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer removed successfully"})
}
