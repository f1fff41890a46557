package gen

import (
	"fmt"

	"github.com/fakemart/fakemart/internal/models"
)

var installments = []int{1, 2, 3, 6, 12}

// Orders generates count orders, each referencing a customer chosen
// uniformly (with replacement) from customerIDs. Total is emitted as 0
// and is back-filled later by OrderItems; the update timestamp is
// never earlier than the order timestamp. An empty customerIDs set is
// rejected when at least one order is requested.
func (g *Generator) Orders(count int, customerIDs []int64) ([]models.Order, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate orders: %w: got %d", ErrNegativeCount, count)
	}
	if count > 0 && len(customerIDs) == 0 {
		return nil, fmt.Errorf("generate orders: %w", ErrNoCustomers)
	}

	orders := make([]models.Order, 0, count)
	for i := 0; i < count; i++ {
		orderedAt := g.withinYears(2)
		order := models.Order{
			ID:            int64(i + 1),
			CustomerID:    customerIDs[g.rng.IntN(len(customerIDs))],
			OrderedAt:     orderedAt,
			Total:         0,
			Freight:       g.money(0, 50),
			Discount:      g.money(0, 100),
			Status:        models.OrderStatuses[g.rng.IntN(len(models.OrderStatuses))],
			PaymentMethod: models.PaymentMethods[g.rng.IntN(len(models.PaymentMethods))],
			Installments:  installments[g.rng.IntN(len(installments))],
			UpdatedAt:     orderedAt.AddDate(0, 0, g.rng.IntN(31)),
		}
		if g.rng.Float64() < 0.3 {
			order.CouponCode = g.faker.Numerify("COUPON####")
		}
		orders = append(orders, order)

		if (i+1)%5000 == 0 {
			g.log.Debug().Int("generated", i+1).Msg("generating orders")
		}
	}

	g.log.Info().Int("count", count).Msg("orders generated")
	return orders, nil
}
