package gen

import (
	"fmt"

	"github.com/fakemart/fakemart/internal/models"
)

// Counts configures how many rows each batch stage produces.
type Counts struct {
	Customers int
	Products  int
	Orders    int
}

// Dataset is one complete generated batch. Orders carry their final
// totals; Items reference rows in Orders and Products only.
type Dataset struct {
	Customers []models.Customer
	Products  []models.Product
	Orders    []models.Order
	Items     []models.OrderItem
}

// Dataset runs the four batch stages in their required order
// (customers, products, orders, items) and verifies the finished
// result before returning it.
func (g *Generator) Dataset(counts Counts) (*Dataset, error) {
	customers, err := g.Customers(counts.Customers)
	if err != nil {
		return nil, err
	}

	products, err := g.Products(counts.Products)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]int64, len(customers))
	for i, c := range customers {
		customerIDs[i] = c.ID
	}

	orders, err := g.Orders(counts.Orders, customerIDs)
	if err != nil {
		return nil, err
	}

	items, orders, err := g.OrderItems(orders, products)
	if err != nil {
		return nil, err
	}

	if err := Verify(orders, products, items); err != nil {
		return nil, fmt.Errorf("generated dataset failed verification: %w", err)
	}

	return &Dataset{
		Customers: customers,
		Products:  products,
		Orders:    orders,
		Items:     items,
	}, nil
}
