package gen

import (
	"fmt"

	"github.com/fakemart/fakemart/internal/models"
)

// Products generates count products with dense IDs 1..count. Price and
// cost are drawn independently; cost exceeding price is allowed, the
// catalog is not required to be profitable. A count of zero yields an
// empty result.
func (g *Generator) Products(count int) ([]models.Product, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate products: %w: got %d", ErrNegativeCount, count)
	}

	products := make([]models.Product, 0, count)
	for i := 0; i < count; i++ {
		category := models.Categories[g.rng.IntN(len(models.Categories))]
		products = append(products, models.Product{
			ID:          int64(i + 1),
			Name:        g.faker.ProductName(),
			Description: g.faker.ProductDescription(),
			Category:    category,
			Subcategory: fmt.Sprintf("%s - %s", category, title(g.faker.Word())),
			Price:       g.money(10, 5000),
			Cost:        g.money(5, 2500),
			StockQty:    g.rng.IntN(1001),
			Supplier:    g.faker.Company(),
			WeightKg:    g.money(0.1, 50),
			Dimensions:  fmt.Sprintf("%dx%dx%d", 10+g.rng.IntN(91), 10+g.rng.IntN(91), 5+g.rng.IntN(46)),
			Active:      g.rng.Float64() < 0.75,
			CreatedAt:   g.withinYears(2),
		})
	}

	g.log.Info().Int("count", count).Msg("products generated")
	return products, nil
}
