// Package dataset produces the synthetic shipment records the dashboard
// loads at startup.
package dataset

import (
	"math/rand"
	"time"

	"github.com/cargodash/cargodash/internal/model"
)

// DefaultCount is the record count used when none is configured.
const DefaultCount = 50

// Generate builds count synthetic shipments with delivery dates spread over
// a 31-day window centered on now. A fixed seed reproduces the same
// dataset; seed 0 picks one from the clock.
func Generate(count int, seed int64, now time.Time) []model.Record {
	if count <= 0 {
		count = DefaultCount
	}
	if seed == 0 {
		seed = now.UnixNano()
	}
	rnd := rand.New(rand.NewSource(seed))

	records := make([]model.Record, 0, count)
	for i := 0; i < count; i++ {
		deliveryDate := now.AddDate(0, 0, rnd.Intn(31)-15).Format(model.DateLayout)
		records = append(records, model.Record{
			ID:           i + 1,
			Carrier:      pick(rnd, model.Carriers),
			Region:       pick(rnd, model.Regions),
			Status:       pick(rnd, model.Statuses),
			Priority:     pick(rnd, model.Priorities),
			DeliveryDate: deliveryDate,
			PackageCount: rnd.Intn(100) + 1,
			Weight:       float64(rnd.Intn(50) + 1),
			Cost:         float64(rnd.Intn(1000) + 50),
			Distance:     float64(rnd.Intn(5000) + 100),
			DeliveryTime: float64(rnd.Intn(72) + 1),
			Timestamp:    now,
			CreatedDate:  deliveryDate,
		})
	}
	return records
}

func pick(rnd *rand.Rand, values []string) string {
	return values[rnd.Intn(len(values))]
}
