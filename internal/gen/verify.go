package gen

import (
	"fmt"
	"math"

	"github.com/fakemart/fakemart/internal/models"
)

// Verify checks the cross-table invariants of a finished dataset:
// every item references an existing order and product, no order lists
// the same product twice, and every order total equals the rounded sum
// of its items' totals. Any violation is a hard error; it means the
// generation stages were run out of order or the output was tampered
// with.
func Verify(orders []models.Order, products []models.Product, items []models.OrderItem) error {
	productIDs := make(map[int64]struct{}, len(products))
	for _, p := range products {
		productIDs[p.ID] = struct{}{}
	}

	orderIDs := make(map[int64]struct{}, len(orders))
	for _, o := range orders {
		orderIDs[o.ID] = struct{}{}
	}

	sums := make(map[int64]float64, len(orders))
	seen := make(map[int64]map[int64]struct{}, len(orders))

	for _, item := range items {
		if _, ok := orderIDs[item.OrderID]; !ok {
			return fmt.Errorf("item %d: %w: order %d", item.ID, ErrBadReference, item.OrderID)
		}
		if _, ok := productIDs[item.ProductID]; !ok {
			return fmt.Errorf("item %d: %w: product %d", item.ID, ErrBadReference, item.ProductID)
		}

		if seen[item.OrderID] == nil {
			seen[item.OrderID] = make(map[int64]struct{})
		}
		if _, dup := seen[item.OrderID][item.ProductID]; dup {
			return fmt.Errorf("order %d: %w: product %d", item.OrderID, ErrDuplicateProduct, item.ProductID)
		}
		seen[item.OrderID][item.ProductID] = struct{}{}

		sums[item.OrderID] += item.Total
	}

	for _, o := range orders {
		if math.Abs(o.Total-round2(sums[o.ID])) > 1e-9 {
			return fmt.Errorf("order %d: %w: total %.2f, items sum %.2f",
				o.ID, ErrTotalMismatch, o.Total, round2(sums[o.ID]))
		}
	}

	return nil
}
