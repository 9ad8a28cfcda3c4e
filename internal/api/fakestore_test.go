package api_test

import (
	"context"
	"fmt"
	"sort"

	"commerce-service/internal/models"
	"commerce-service/internal/service"
	"commerce-service/internal/store"
)

// fakeStore is an in-memory stand-in for the sqlx store, mirroring its
// semantics closely enough to drive the handlers end to end
type fakeStore struct {
	customers  map[int64]models.Customer
	products   map[int64]models.Product
	orders     map[int64]models.Order
	orderLines map[int64][]models.OrderProduct
	accounts   map[int64]models.CustomerAccount
	carts      map[int64]models.Cart
	cartItems  map[int64]models.CartItem
	nextID     int64
}

var _ service.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		customers:  map[int64]models.Customer{},
		products:   map[int64]models.Product{},
		orders:     map[int64]models.Order{},
		orderLines: map[int64][]models.OrderProduct{},
		accounts:   map[int64]models.CustomerAccount{},
		carts:      map[int64]models.Cart{},
		cartItems:  map[int64]models.CartItem{},
	}
}

func (f *fakeStore) id() int64 {
	f.nextID++
	return f.nextID
}

func notFound(what string, id interface{}) error {
	return fmt.Errorf("%s %v: %w", what, id, store.ErrNotFound)
}

func sortedIDs[M any](m map[int64]M) []int64 {
	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (f *fakeStore) CreateCustomer(_ context.Context, c *models.Customer) error {
	c.ID = f.id()
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeStore) GetCustomerByID(_ context.Context, id int64) (*models.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, notFound("customer", id)
	}
	return &c, nil
}

func (f *fakeStore) GetCustomerByEmail(_ context.Context, email string) (*models.Customer, error) {
	for _, id := range sortedIDs(f.customers) {
		if f.customers[id].Email == email {
			c := f.customers[id]
			return &c, nil
		}
	}
	return nil, notFound("customer with email", email)
}

func (f *fakeStore) GetCustomers(_ context.Context) ([]models.Customer, error) {
	out := []models.Customer{}
	for _, id := range sortedIDs(f.customers) {
		out = append(out, f.customers[id])
	}
	return out, nil
}

func (f *fakeStore) UpdateCustomer(_ context.Context, c *models.Customer) error {
	if _, ok := f.customers[c.ID]; !ok {
		return notFound("customer", c.ID)
	}
	f.customers[c.ID] = *c
	return nil
}

func (f *fakeStore) DeleteCustomer(_ context.Context, id int64) error {
	if _, ok := f.customers[id]; !ok {
		return notFound("customer", id)
	}
	delete(f.customers, id)
	return nil
}

func (f *fakeStore) CreateProduct(_ context.Context, p *models.Product) error {
	p.ID = f.id()
	f.products[p.ID] = *p
	return nil
}

func (f *fakeStore) GetProductByID(_ context.Context, id int64) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, notFound("product", id)
	}
	return &p, nil
}

func (f *fakeStore) GetProductByName(_ context.Context, name string) (*models.Product, error) {
	for _, id := range sortedIDs(f.products) {
		if f.products[id].Name == name {
			p := f.products[id]
			return &p, nil
		}
	}
	return nil, notFound("product named", name)
}

func (f *fakeStore) GetProducts(_ context.Context) ([]models.Product, error) {
	out := []models.Product{}
	for _, id := range sortedIDs(f.products) {
		out = append(out, f.products[id])
	}
	return out, nil
}

func (f *fakeStore) GetProductsByIDs(_ context.Context, ids []int64) ([]models.Product, error) {
	out := []models.Product{}
	seen := map[int64]bool{}
	for _, id := range ids {
		if p, ok := f.products[id]; ok && !seen[id] {
			out = append(out, p)
			seen[id] = true
		}
	}
	return out, nil
}

func (f *fakeStore) UpdateProduct(_ context.Context, p *models.Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return notFound("product", p.ID)
	}
	f.products[p.ID] = *p
	return nil
}

func (f *fakeStore) DeleteProduct(_ context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return notFound("product", id)
	}
	delete(f.products, id)
	return nil
}

func (f *fakeStore) CreateOrder(_ context.Context, order *models.Order, lines []models.OrderProduct) error {
	order.ID = f.id()
	f.orders[order.ID] = *order
	for i := range lines {
		lines[i].OrderID = order.ID
	}
	f.orderLines[order.ID] = append([]models.OrderProduct{}, lines...)
	return nil
}

func (f *fakeStore) ReplaceOrderLines(_ context.Context, order *models.Order, lines []models.OrderProduct) error {
	if _, ok := f.orders[order.ID]; !ok {
		return notFound("order", order.ID)
	}
	f.orders[order.ID] = *order
	for i := range lines {
		lines[i].OrderID = order.ID
	}
	f.orderLines[order.ID] = append([]models.OrderProduct{}, lines...)
	return nil
}

func (f *fakeStore) GetOrderByID(_ context.Context, id int64) (*models.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, notFound("order", id)
	}
	return &o, nil
}

func (f *fakeStore) GetOrderByIdempotencyKey(_ context.Context, key string) (*models.Order, error) {
	for _, id := range sortedIDs(f.orders) {
		o := f.orders[id]
		if o.IdempotencyKey.Valid && o.IdempotencyKey.String == key {
			return &o, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) GetOrders(_ context.Context) ([]models.Order, error) {
	out := []models.Order{}
	for _, id := range sortedIDs(f.orders) {
		out = append(out, f.orders[id])
	}
	return out, nil
}

func (f *fakeStore) OrdersForCustomer(_ context.Context, customerID int64) ([]models.Order, error) {
	out := []models.Order{}
	for _, id := range sortedIDs(f.orders) {
		if f.orders[id].CustomerID == customerID {
			out = append(out, f.orders[id])
		}
	}
	return out, nil
}

func (f *fakeStore) LineItemsForOrder(_ context.Context, orderID int64) ([]models.OrderLine, error) {
	out := []models.OrderLine{}
	for _, line := range f.orderLines[orderID] {
		p := f.products[line.ProductID]
		out = append(out, models.OrderLine{
			ProductID: line.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  line.Quantity,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (f *fakeStore) DeleteOrder(_ context.Context, id int64) error {
	if _, ok := f.orders[id]; !ok {
		return notFound("order", id)
	}
	delete(f.orders, id)
	delete(f.orderLines, id)
	return nil
}

func (f *fakeStore) CreateAccount(_ context.Context, a *models.CustomerAccount) error {
	for _, existing := range f.accounts {
		if existing.Username == a.Username {
			return fmt.Errorf("duplicate username %q", a.Username)
		}
	}
	a.ID = f.id()
	f.accounts[a.ID] = *a
	return nil
}

func (f *fakeStore) GetAccountByID(_ context.Context, id int64) (*models.CustomerAccount, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, notFound("account", id)
	}
	return &a, nil
}

func (f *fakeStore) GetAccountByUsername(_ context.Context, username string) (*models.CustomerAccount, error) {
	for _, id := range sortedIDs(f.accounts) {
		if f.accounts[id].Username == username {
			a := f.accounts[id]
			return &a, nil
		}
	}
	return nil, notFound("account", username)
}

func (f *fakeStore) GetAccountByCustomerID(_ context.Context, customerID int64) (*models.CustomerAccount, error) {
	for _, id := range sortedIDs(f.accounts) {
		if f.accounts[id].CustomerID == customerID {
			a := f.accounts[id]
			return &a, nil
		}
	}
	return nil, notFound("account for customer", customerID)
}

func (f *fakeStore) GetAccounts(_ context.Context) ([]models.CustomerAccount, error) {
	out := []models.CustomerAccount{}
	for _, id := range sortedIDs(f.accounts) {
		out = append(out, f.accounts[id])
	}
	return out, nil
}

func (f *fakeStore) UpdateAccount(_ context.Context, a *models.CustomerAccount) error {
	if _, ok := f.accounts[a.ID]; !ok {
		return notFound("account", a.ID)
	}
	f.accounts[a.ID] = *a
	return nil
}

func (f *fakeStore) DeleteAccount(_ context.Context, id int64) error {
	if _, ok := f.accounts[id]; !ok {
		return notFound("account", id)
	}
	delete(f.accounts, id)
	return nil
}

func (f *fakeStore) CreateCart(_ context.Context, cart *models.Cart, items []models.CartItem) error {
	cart.ID = f.id()
	f.carts[cart.ID] = *cart
	for _, item := range items {
		item.ID = f.id()
		item.CartID = cart.ID
		f.cartItems[item.ID] = item
	}
	return nil
}

func (f *fakeStore) GetCartByID(_ context.Context, id int64) (*models.Cart, error) {
	c, ok := f.carts[id]
	if !ok {
		return nil, notFound("cart", id)
	}
	return &c, nil
}

func (f *fakeStore) GetCarts(_ context.Context) ([]models.Cart, error) {
	out := []models.Cart{}
	for _, id := range sortedIDs(f.carts) {
		out = append(out, f.carts[id])
	}
	return out, nil
}

func (f *fakeStore) CartsForCustomer(_ context.Context, customerID int64) ([]models.Cart, error) {
	out := []models.Cart{}
	for _, id := range sortedIDs(f.carts) {
		if f.carts[id].CustomerID == customerID {
			out = append(out, f.carts[id])
		}
	}
	return out, nil
}

func (f *fakeStore) ItemsForCart(_ context.Context, cartID int64) ([]models.CartLine, error) {
	out := []models.CartLine{}
	for _, id := range sortedIDs(f.cartItems) {
		item := f.cartItems[id]
		if item.CartID != cartID {
			continue
		}
		p := f.products[item.ProductID]
		out = append(out, models.CartLine{
			ItemID:    item.ID,
			ProductID: item.ProductID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity,
		})
	}
	return out, nil
}

func (f *fakeStore) MergeCartItems(_ context.Context, cartID int64, items []models.CartItem) error {
	for _, update := range items {
		for id, item := range f.cartItems {
			if item.CartID == cartID && item.ProductID == update.ProductID {
				item.Quantity = update.Quantity
				f.cartItems[id] = item
			}
		}
	}
	return nil
}

func (f *fakeStore) DeleteCart(_ context.Context, id int64) error {
	if _, ok := f.carts[id]; !ok {
		return notFound("cart", id)
	}
	delete(f.carts, id)
	for itemID, item := range f.cartItems {
		if item.CartID == id {
			delete(f.cartItems, itemID)
		}
	}
	return nil
}

func (f *fakeStore) DeleteCartItem(_ context.Context, cartID, itemID int64) error {
	item, ok := f.cartItems[itemID]
	if !ok || item.CartID != cartID {
		return notFound("cart item", itemID)
	}
	delete(f.cartItems, itemID)
	return nil
}
