package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"commerce-service/internal/service"
	"commerce-service/internal/store"
	"commerce-service/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains HTTP handlers
type Handler struct {
	customers *service.CustomerService
	products  *service.ProductService
	orders    *service.OrderService
	accounts  *service.AccountService
	carts     *service.CartService
}

// NewHandler creates a new HTTP handler
func NewHandler(
	customers *service.CustomerService,
	products *service.ProductService,
	orders *service.OrderService,
	accounts *service.AccountService,
	carts *service.CartService,
) *Handler {
	return &Handler{
		customers: customers,
		products:  products,
		orders:    orders,
		accounts:  accounts,
		carts:     carts,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/customers", h.listCustomers)
	router.POST("/customers", h.createCustomer)
	router.GET("/customers/by-email", h.getCustomerByEmail)
	router.GET("/customers/:id", h.getCustomer)
	router.PUT("/customers/:id", h.updateCustomer)
	router.DELETE("/customers/:id", h.deleteCustomer)

	router.GET("/products", h.listProducts)
	router.POST("/products", h.createProduct)
	router.GET("/products/by-name", h.getProductByName)
	router.GET("/products/:id", h.getProduct)
	router.PUT("/products/:id", h.updateProduct)
	router.DELETE("/products/:id", h.deleteProduct)

	router.GET("/orders", h.listOrders)
	router.POST("/orders", h.createOrder)
	router.GET("/orders/:id", h.getOrder)
	router.PUT("/orders/:id", h.updateOrder)
	router.DELETE("/orders/:id", h.deleteOrder)
	router.GET("/orders/status/:id", h.getOrderStatus)
	router.GET("/orders/by_customer_id/:id", h.listOrdersByCustomer)

	router.GET("/customer_accounts", h.listAccounts)
	router.POST("/customer_accounts", h.createAccount)
	router.GET("/customer_accounts/:id", h.getAccount)
	router.PUT("/customer_accounts/:id", h.updateAccount)
	router.DELETE("/customer_accounts/:id", h.deleteAccount)
	router.GET("/customer_accounts/by_customer_id/:id", h.getAccountByCustomer)
	router.GET("/customer_accounts/by_username/:username", h.getAccountByUsername)

	router.POST("/cart", h.createCart)
	router.GET("/cart/:id", h.getCart)
	router.PUT("/cart/:id", h.updateCart)
	router.DELETE("/cart/:id", h.deleteCart)
	router.DELETE("/cart/:id/item/:item_id", h.deleteCartItem)
	router.GET("/carts", h.listCarts)
	router.GET("/carts_by_customer", h.listCartsGroupedByCustomer)
	router.GET("/carts_by_customer/:id", h.listCartsByCustomer)
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

// parseID extracts a numeric path parameter, writing a 400 itself when
// the segment is not a number
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return id, true
}

// respondError maps the error taxonomy onto status codes: validation
// failures carry the field→message map as a 400 body, missing rows are
// 404, anything else surfaces as a generic 500
func respondError(c *gin.Context, err error, notFound string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, verr.Fields)
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": notFound})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Internal server error",
		"details": err.Error(),
	})
}

// bindJSON decodes the request body, writing a 400 itself on malformed input
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return false
	}
	return true
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
