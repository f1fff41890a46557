package gen

import (
	"time"

	"github.com/fakemart/fakemart/internal/models"
)

// eventCustomerRange is the fixed customer id range events draw from.
// It is intentionally independent of how many customers were generated
// in the same run, so the event stream can run unbounded without any
// knowledge of the batch tables.
const eventCustomerRange = 10000

// Event produces one website interaction event. Events are stateless:
// no two calls are correlated and the timestamp is wall-clock, so the
// stream sits outside the batch determinism guarantee.
func (g *Generator) Event() models.WebsiteEvent {
	event := models.WebsiteEvent{
		Timestamp:  time.Now(),
		CustomerID: int64(1 + g.rng.IntN(eventCustomerRange)),
		SessionID:  g.faker.UUID(),
		EventType:  models.EventTypes[g.rng.IntN(len(models.EventTypes))],
		Page:       models.EventPages[g.rng.IntN(len(models.EventPages))],
		Device:     models.Devices[g.rng.IntN(len(models.Devices))],
		Browser:    models.EventBrowsers[g.rng.IntN(len(models.EventBrowsers))],
		OS:         models.EventOperatingSystems[g.rng.IntN(len(models.EventOperatingSystems))],
		IP:         g.faker.IPv4Address(),
		Country:    models.EventCountry,
		City:       g.faker.City(),
	}
	event.Referrer = models.EventReferrers[g.rng.IntN(len(models.EventReferrers))]
	return event
}
