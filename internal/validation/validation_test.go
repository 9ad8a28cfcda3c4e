package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string   { return &s }
func intPtr(i int) *int         { return &i }
func i64Ptr(i int64) *int64     { return &i }
func f64Ptr(f float64) *float64 { return &f }

func TestCustomerInput(t *testing.T) {
	in := &CustomerInput{
		Name:  strPtr("Ada Lovelace"),
		Email: strPtr("ada@example.com"),
		Phone: strPtr("555-0100"),
	}
	assert.True(t, in.Validate().Empty())

	in = &CustomerInput{Name: strPtr("Ada Lovelace")}
	v := in.Validate()
	assert.Equal(t, "required", v["email"])
	assert.Equal(t, "required", v["phone"])
	assert.NotContains(t, v, "name")

	in = &CustomerInput{Name: strPtr("   "), Email: strPtr("a@b.c"), Phone: strPtr("1")}
	v = in.Validate()
	assert.Equal(t, "must not be empty", v["name"])
}

func TestProductInput(t *testing.T) {
	in := &ProductInput{
		Name:        strPtr("Keyboard"),
		Price:       f64Ptr(49.99),
		Quantity:    intPtr(10),
		Description: strPtr("Mechanical keyboard"),
	}
	assert.True(t, in.Validate().Empty())

	in = &ProductInput{Name: strPtr("Keyboard"), Quantity: intPtr(1), Description: strPtr("x")}
	v := in.Validate()
	assert.Contains(t, v, "price")

	in = &ProductInput{
		Name:        strPtr("Keyboard"),
		Price:       f64Ptr(-1),
		Quantity:    intPtr(1),
		Description: strPtr("x"),
	}
	v = in.Validate()
	assert.Equal(t, "must be greater than or equal to 0", v["price"])

	// zero is a legal price
	in.Price = f64Ptr(0)
	assert.True(t, in.Validate().Empty())
}

func TestOrderInput(t *testing.T) {
	in := &OrderInput{
		CustomerID: i64Ptr(1),
		Products: []LineInput{
			{ProductID: i64Ptr(1), Quantity: intPtr(2)},
			{ProductID: i64Ptr(2), Quantity: intPtr(3)},
		},
	}
	assert.True(t, in.Validate().Empty())

	in = &OrderInput{Products: []LineInput{{ProductID: i64Ptr(1), Quantity: intPtr(2)}}}
	v := in.Validate()
	assert.Equal(t, "required", v["customer_id"])

	in = &OrderInput{CustomerID: i64Ptr(1)}
	v = in.Validate()
	assert.Equal(t, "required", v["products"])

	in = &OrderInput{
		CustomerID: i64Ptr(1),
		Products:   []LineInput{{ProductID: i64Ptr(1)}},
	}
	v = in.Validate()
	assert.Contains(t, v["products"], "quantity is required")
}

func TestOrderInputRejectsDuplicateProducts(t *testing.T) {
	in := &OrderInput{
		CustomerID: i64Ptr(1),
		Products: []LineInput{
			{ProductID: i64Ptr(7), Quantity: intPtr(2)},
			{ProductID: i64Ptr(7), Quantity: intPtr(5)},
		},
	}
	v := in.Validate()
	assert.Equal(t, "duplicate product_id 7", v["products"])
}

func TestAccountInput(t *testing.T) {
	in := &AccountInput{
		Username:   strPtr("ada"),
		Password:   strPtr("hunter2"),
		CustomerID: i64Ptr(1),
	}
	assert.True(t, in.Validate().Empty())

	in = &AccountInput{Username: strPtr("ada")}
	v := in.Validate()
	assert.Equal(t, "required", v["password"])
	assert.Equal(t, "required", v["customer_id"])
}

func TestCartInput(t *testing.T) {
	in := &CartInput{
		CustomerID: i64Ptr(1),
		Items: []LineInput{
			{ProductID: i64Ptr(1), Quantity: intPtr(1)},
			{ProductID: i64Ptr(1), Quantity: intPtr(2)},
		},
	}
	// carts tolerate repeated product ids; the update path merges by product
	assert.True(t, in.Validate().Empty())

	in = &CartInput{CustomerID: i64Ptr(1)}
	v := in.Validate()
	assert.Equal(t, "required", v["items"])

	up := &CartUpdateInput{}
	v = up.Validate()
	assert.Equal(t, "required", v["items"])
}
