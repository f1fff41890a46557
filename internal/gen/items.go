package gen

import (
	"fmt"

	"github.com/fakemart/fakemart/internal/models"
)

// OrderItems builds between 1 and 5 line items for every order and
// returns the item slice together with a copy of orders whose totals
// equal the rounded sum of their items. The input slice is never
// mutated. Products within one order are sampled without replacement,
// so an order never lists the same product twice; when fewer than 5
// products exist the per-order item count is capped at the pool size.
// Item IDs run sequentially across the entire output, not per order.
func (g *Generator) OrderItems(orders []models.Order, products []models.Product) ([]models.OrderItem, []models.Order, error) {
	if len(orders) > 0 && len(products) == 0 {
		return nil, nil, fmt.Errorf("generate order items: %w", ErrNoProducts)
	}

	filled := make([]models.Order, len(orders))
	copy(filled, orders)

	maxPerOrder := min(5, len(products))
	items := make([]models.OrderItem, 0, len(orders)*3)
	itemID := int64(1)

	for i := range filled {
		count := 1 + g.rng.IntN(maxPerOrder)
		total := 0.0

		for _, pick := range g.rng.Perm(len(products))[:count] {
			product := products[pick]
			quantity := 1 + g.rng.IntN(3)

			item := models.OrderItem{
				ID:        itemID,
				OrderID:   filled[i].ID,
				ProductID: product.ID,
				Quantity:  quantity,
				UnitPrice: product.Price,
				Total:     round2(float64(quantity) * product.Price),
			}
			// Recorded but never subtracted from any total.
			if g.rng.Float64() < 0.2 {
				item.Discount = g.money(0, 20)
			}

			items = append(items, item)
			total += item.Total
			itemID++
		}

		filled[i].Total = round2(total)
	}

	g.log.Info().Int("items", len(items)).Int("orders", len(orders)).Msg("order items generated")
	return items, filled, nil
}
