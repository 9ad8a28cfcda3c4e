package api

import (
	"net/http"

	"commerce-service/internal/validation"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listAccounts(c *gin.Context) {
	accounts, err := h.accounts.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "Customer Account Not Found")
		return
	}
	c.JSON(http.StatusOK, accounts)
}

func (h *Handler) getAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	account, err := h.accounts.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Customer Account Not Found")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *Handler) getAccountByCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	account, err := h.accounts.GetByCustomerID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Customer Account Not Found")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *Handler) getAccountByUsername(c *gin.Context) {
	username := c.Param("username")

	account, err := h.accounts.GetByUsername(c.Request.Context(), username)
	if err != nil {
		respondError(c, err, "Customer Account Not Found")
		return
	}
	c.JSON(http.StatusOK, account)
}

func (h *Handler) createAccount(c *gin.Context) {
	var in validation.AccountInput
	if !bindJSON(c, &in) {
		return
	}

	account, err := h.accounts.Create(c.Request.Context(), &in)
	if err != nil {
		respondError(c, err, "Customer Account Not Found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "New Customer Account has been created successfully",
		"id":      account.ID,
	})
}

func (h *Handler) updateAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in validation.AccountInput
	if !bindJSON(c, &in) {
		return
	}

	if err := h.accounts.Update(c.Request.Context(), id, &in); err != nil {
		respondError(c, err, "Customer Account Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer Account details have been updated successfully"})
}

func (h *Handler) deleteAccount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.accounts.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, "Customer Account Not Found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer Account has been removed successfully"})
}
