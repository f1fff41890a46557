package gen_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fakemart/fakemart/internal/gen"
	"github.com/fakemart/fakemart/internal/models"
)

func generateBatch(t *testing.T, seed uint64, customers, products, orders int) (*gen.Generator, []models.Order, []models.Product) {
	t.Helper()
	g := newGenerator(t, seed)

	cs, err := g.Customers(customers)
	require.NoError(t, err)
	ids := make([]int64, len(cs))
	for i, c := range cs {
		ids[i] = c.ID
	}

	ps, err := g.Products(products)
	require.NoError(t, err)

	ords, err := g.Orders(orders, ids)
	require.NoError(t, err)

	return g, ords, ps
}

func TestOrderItems_TotalsMatchItems(t *testing.T) {
	g, orders, products := generateBatch(t, 42, 100, 50, 200)

	items, filled, err := g.OrderItems(orders, products)
	require.NoError(t, err)
	require.Len(t, filled, len(orders))

	sums := make(map[int64]float64)
	for _, item := range items {
		sums[item.OrderID] += item.Total
	}

	for _, o := range filled {
		want := math.Round(sums[o.ID]*100) / 100
		assert.InDelta(t, want, o.Total, 1e-9, "order %d", o.ID)
	}
}

func TestOrderItems_InputOrdersUntouched(t *testing.T) {
	g, orders, products := generateBatch(t, 42, 10, 10, 30)

	_, filled, err := g.OrderItems(orders, products)
	require.NoError(t, err)

	for _, o := range orders {
		assert.Zero(t, o.Total, "input order %d was mutated", o.ID)
	}
	for _, o := range filled {
		assert.Greater(t, o.Total, 0.0, "filled order %d has no total", o.ID)
	}
}

func TestOrderItems_SequentialGlobalIdentifiers(t *testing.T) {
	g, orders, products := generateBatch(t, 42, 20, 15, 40)

	items, _, err := g.OrderItems(orders, products)
	require.NoError(t, err)

	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID)
	}
}

func TestOrderItems_SnapshotUnitPrices(t *testing.T) {
	g, orders, products := generateBatch(t, 42, 20, 15, 40)

	byID := make(map[int64]models.Product)
	for _, p := range products {
		byID[p.ID] = p
	}

	items, _, err := g.OrderItems(orders, products)
	require.NoError(t, err)

	for _, item := range items {
		product, ok := byID[item.ProductID]
		require.True(t, ok, "item %d references unknown product %d", item.ID, item.ProductID)

		assert.Equal(t, product.Price, item.UnitPrice)
		assert.GreaterOrEqual(t, item.Quantity, 1)
		assert.LessOrEqual(t, item.Quantity, 3)

		want := math.Round(float64(item.Quantity)*item.UnitPrice*100) / 100
		assert.InDelta(t, want, item.Total, 1e-9, "item %d", item.ID)

		assert.GreaterOrEqual(t, item.Discount, 0.0)
		assert.LessOrEqual(t, item.Discount, 20.0)
	}
}

func TestOrderItems_NoDuplicateProductPerOrder(t *testing.T) {
	g, orders, products := generateBatch(t, 42, 30, 20, 100)

	items, filled, err := g.OrderItems(orders, products)
	require.NoError(t, err)
	require.NoError(t, gen.Verify(filled, products, items))
}

func TestOrderItems_SmallProductPool(t *testing.T) {
	g, orders, products := generateBatch(t, 42, 10, 2, 50)
	require.Len(t, products, 2)

	items, filled, err := g.OrderItems(orders, products)
	require.NoError(t, err)

	perOrder := make(map[int64]int)
	for _, item := range items {
		perOrder[item.OrderID]++
	}
	for _, o := range filled {
		require.GreaterOrEqual(t, perOrder[o.ID], 1, "order %d has no items", o.ID)
		require.LessOrEqual(t, perOrder[o.ID], 2, "order %d has more items than products exist", o.ID)
	}

	require.NoError(t, gen.Verify(filled, products, items))
}

func TestOrderItems_EmptyProductPool(t *testing.T) {
	g, orders, _ := generateBatch(t, 42, 10, 5, 20)

	_, _, err := g.OrderItems(orders, nil)
	require.ErrorIs(t, err, gen.ErrNoProducts)
}

func TestOrderItems_NoOrders(t *testing.T) {
	g := newGenerator(t, 42)

	items, filled, err := g.OrderItems(nil, nil)
	require.NoError(t, err)
	require.Empty(t, items)
	require.Empty(t, filled)
}
