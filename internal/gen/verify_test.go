package gen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fakemart/fakemart/internal/gen"
	"github.com/fakemart/fakemart/internal/models"
)

func verifyFixture() ([]models.Order, []models.Product, []models.OrderItem) {
	orders := []models.Order{
		{ID: 1, Total: 45.00},
		{ID: 2, Total: 10.50},
	}
	products := []models.Product{
		{ID: 1, Price: 15.00},
		{ID: 2, Price: 10.50},
	}
	items := []models.OrderItem{
		{ID: 1, OrderID: 1, ProductID: 1, Quantity: 3, UnitPrice: 15.00, Total: 45.00},
		{ID: 2, OrderID: 2, ProductID: 2, Quantity: 1, UnitPrice: 10.50, Total: 10.50},
	}
	return orders, products, items
}

func TestVerify_AcceptsConsistentDataset(t *testing.T) {
	orders, products, items := verifyFixture()
	require.NoError(t, gen.Verify(orders, products, items))
}

func TestVerify_RejectsTotalMismatch(t *testing.T) {
	orders, products, items := verifyFixture()
	orders[0].Total = 44.99

	err := gen.Verify(orders, products, items)
	require.ErrorIs(t, err, gen.ErrTotalMismatch)
	require.ErrorContains(t, err, "order 1")
}

func TestVerify_RejectsUnknownOrder(t *testing.T) {
	orders, products, items := verifyFixture()
	items[1].OrderID = 99

	err := gen.Verify(orders, products, items)
	require.ErrorIs(t, err, gen.ErrBadReference)
}

func TestVerify_RejectsUnknownProduct(t *testing.T) {
	orders, products, items := verifyFixture()
	items[0].ProductID = 42

	err := gen.Verify(orders, products, items)
	require.ErrorIs(t, err, gen.ErrBadReference)
	require.ErrorContains(t, err, "product 42")
}

func TestVerify_RejectsDuplicateProductInOrder(t *testing.T) {
	orders, products, items := verifyFixture()
	orders[0].Total = 60.00
	items = append(items, models.OrderItem{
		ID: 3, OrderID: 1, ProductID: 1, Quantity: 1, UnitPrice: 15.00, Total: 15.00,
	})

	err := gen.Verify(orders, products, items)
	require.ErrorIs(t, err, gen.ErrDuplicateProduct)
}
