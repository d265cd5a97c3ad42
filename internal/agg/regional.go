package agg

import (
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cargodash/cargodash/internal/model"
)

// GeoBucket selects the regional rollup dimension.
type GeoBucket int

const (
	GeoRegion GeoBucket = iota
	GeoCountry
	GeoCity
)

// RegionalRow is one rollup bucket: a region, or a simulated sub-region.
type RegionalRow struct {
	Region         string
	TotalShipments int
	TotalWeight    float64
	TotalDistance  float64
	TotalCost      decimal.Decimal
}

// Simulated sub-region maps for country/city drill-downs. Each record is
// re-bucketed into a random member of its region's list, so those two
// rollups are not deterministic for a fixed input; see DESIGN.md.
var (
	countryBuckets = map[string][]string{
		"North America": {"USA", "Canada", "Mexico"},
		"Europe":        {"Germany", "France", "UK"},
		"Asia Pacific":  {"Japan", "Australia", "Singapore"},
		"Latin America": {"Brazil", "Argentina", "Chile"},
	}
	cityBuckets = map[string][]string{
		"North America": {"New York", "Los Angeles", "Chicago"},
		"Europe":        {"London", "Paris", "Berlin"},
		"Asia Pacific":  {"Tokyo", "Sydney", "Singapore"},
		"Latin America": {"São Paulo", "Buenos Aires", "Santiago"},
	}
)

// RegionalRows sums shipments, weight, distance, and cost per region or
// simulated sub-region. rnd drives the sub-region simulation; nil falls
// back to a time-seeded generator.
func RegionalRows(records []model.Record, bucket GeoBucket, rnd *rand.Rand) []RegionalRow {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	perBucket := map[string]*RegionalRow{}
	order := []string{}
	for _, r := range records {
		key := bucketKeyFor(r.Region, bucket, rnd)
		row := perBucket[key]
		if row == nil {
			row = &RegionalRow{Region: key, TotalCost: decimal.Zero}
			perBucket[key] = row
			order = append(order, key)
		}
		row.TotalShipments++
		row.TotalWeight += r.Weight
		row.TotalDistance += r.Distance
		row.TotalCost = row.TotalCost.Add(decimal.NewFromFloat(r.Cost))
	}
	rows := make([]RegionalRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, *perBucket[key])
	}
	return rows
}

func bucketKeyFor(region string, bucket GeoBucket, rnd *rand.Rand) string {
	var candidates []string
	switch bucket {
	case GeoCountry:
		candidates = countryBuckets[region]
	case GeoCity:
		candidates = cityBuckets[region]
	default:
		return region
	}
	if len(candidates) == 0 {
		return region
	}
	return candidates[rnd.Intn(len(candidates))]
}
