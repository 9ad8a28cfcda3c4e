package validation

import (
	"fmt"
	"strings"
	"time"
)

// Violations maps a field name to what is wrong with it. An empty map
// means the input passed. Validation is all-or-nothing: a request with
// any violation is rejected before it touches storage.
type Violations map[string]string

// Empty reports whether the input passed validation
func (v Violations) Empty() bool { return len(v) == 0 }

func requireString(v Violations, field string, val *string) {
	if val == nil {
		v[field] = "required"
		return
	}
	if strings.TrimSpace(*val) == "" {
		v[field] = "must not be empty"
	}
}

// CustomerInput is the request body for creating or replacing a customer
type CustomerInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// Validate checks the customer payload
func (in *CustomerInput) Validate() Violations {
	v := Violations{}
	requireString(v, "name", in.Name)
	requireString(v, "email", in.Email)
	requireString(v, "phone", in.Phone)
	return v
}

// ProductInput is the request body for creating or replacing a product
type ProductInput struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Description *string  `json:"description"`
}

// Validate checks the product payload
func (in *ProductInput) Validate() Violations {
	v := Violations{}
	requireString(v, "name", in.Name)
	requireString(v, "description", in.Description)
	if in.Price == nil {
		v["price"] = "required"
	} else if *in.Price < 0 {
		v["price"] = "must be greater than or equal to 0"
	}
	if in.Quantity == nil {
		v["quantity"] = "required"
	}
	return v
}

// LineInput is one (product, quantity) pair in an order or cart payload
type LineInput struct {
	ProductID *int64 `json:"product_id"`
	Quantity  *int   `json:"quantity"`
}

func validateLines(v Violations, field string, lines []LineInput, rejectDuplicates bool) {
	if len(lines) == 0 {
		v[field] = "required"
		return
	}

	seen := make(map[int64]bool, len(lines))
	for i, line := range lines {
		if line.ProductID == nil {
			v[field] = fmt.Sprintf("%s[%d].product_id is required", field, i)
			return
		}
		if line.Quantity == nil {
			v[field] = fmt.Sprintf("%s[%d].quantity is required", field, i)
			return
		}
		if rejectDuplicates && seen[*line.ProductID] {
			v[field] = fmt.Sprintf("duplicate product_id %d", *line.ProductID)
			return
		}
		seen[*line.ProductID] = true
	}
}

// OrderInput is the request body for creating or replacing an order.
// Duplicate product ids are rejected outright rather than producing
// duplicate association rows with undefined precedence.
type OrderInput struct {
	CustomerID   *int64      `json:"customer_id"`
	DeliveryDate *time.Time  `json:"delivery_date"`
	Products     []LineInput `json:"products"`
}

// Validate checks the order payload
func (in *OrderInput) Validate() Violations {
	v := Violations{}
	if in.CustomerID == nil {
		v["customer_id"] = "required"
	}
	validateLines(v, "products", in.Products, true)
	return v
}

// AccountInput is the request body for creating or replacing a customer account
type AccountInput struct {
	Username   *string `json:"username"`
	Password   *string `json:"password"`
	CustomerID *int64  `json:"customer_id"`
}

// Validate checks the account payload
func (in *AccountInput) Validate() Violations {
	v := Violations{}
	requireString(v, "username", in.Username)
	requireString(v, "password", in.Password)
	if in.CustomerID == nil {
		v["customer_id"] = "required"
	}
	return v
}

// CartInput is the request body for creating a cart
type CartInput struct {
	CustomerID *int64      `json:"customer_id"`
	Items      []LineInput `json:"items"`
}

// Validate checks the cart payload
func (in *CartInput) Validate() Violations {
	v := Violations{}
	if in.CustomerID == nil {
		v["customer_id"] = "required"
	}
	validateLines(v, "items", in.Items, false)
	return v
}

// CartUpdateInput is the request body for merging quantities into a cart
type CartUpdateInput struct {
	Items []LineInput `json:"items"`
}

// Validate checks the cart update payload
func (in *CartUpdateInput) Validate() Violations {
	v := Violations{}
	validateLines(v, "items", in.Items, false)
	return v
}
