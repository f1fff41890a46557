package gen

import (
	"fmt"

	"github.com/fakemart/fakemart/internal/models"
)

// Customers generates count customers with dense IDs 1..count in
// generation order. Registration dates fall uniformly in the three
// years before the reference time; birth dates put every customer
// between 18 and 80 years old. A count of zero yields an empty result.
func (g *Generator) Customers(count int) ([]models.Customer, error) {
	if count < 0 {
		return nil, fmt.Errorf("generate customers: %w: got %d", ErrNegativeCount, count)
	}

	oldest := g.now.AddDate(-80, 0, 0)
	youngest := g.now.AddDate(-18, 0, 0)

	customers := make([]models.Customer, 0, count)
	for i := 0; i < count; i++ {
		customers = append(customers, models.Customer{
			ID:           int64(i + 1),
			Name:         g.faker.Name(),
			Email:        g.faker.Email(),
			Phone:        g.faker.Phone(),
			TaxID:        g.faker.SSN(),
			BirthDate:    g.faker.DateRange(oldest, youngest),
			Street:       g.faker.Street(),
			City:         g.faker.City(),
			State:        g.faker.StateAbr(),
			PostalCode:   g.faker.Zip(),
			RegisteredAt: g.withinYears(3),
			Active:       g.rng.Float64() < 0.75,
		})

		if (i+1)%1000 == 0 {
			g.log.Debug().Int("generated", i+1).Msg("generating customers")
		}
	}

	g.log.Info().Int("count", count).Msg("customers generated")
	return customers, nil
}
