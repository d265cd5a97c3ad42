// Package model defines shared data structures.
package model

import "time"

// Record is one logistics shipment entry. Records are immutable once
// generated and shared by reference; no component mutates them.
type Record struct {
	ID           int
	Carrier      string
	Region       string
	Status       string
	Priority     string
	DeliveryDate string // YYYY-MM-DD, the primary time dimension
	PackageCount int
	Weight       float64 // kg
	Cost         float64
	Distance     float64 // km
	DeliveryTime float64 // hours
	Timestamp    time.Time
	CreatedDate  string // YYYY-MM-DD
}

// Closed enumerations. Values outside these sets never match a filter and
// never error.
var (
	Carriers   = []string{"FedEx", "UPS", "DHL", "USPS", "Amazon Logistics"}
	Regions    = []string{"North America", "Europe", "Asia Pacific", "Latin America"}
	Statuses   = []string{"In Transit", "Delivered", "Pending", "Delayed", "Exception"}
	Priorities = []string{"High", "Medium", "Low"}
)

const (
	StatusInTransit = "In Transit"
	StatusDelivered = "Delivered"
	StatusPending   = "Pending"
	StatusDelayed   = "Delayed"
	StatusException = "Exception"

	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"
)

// DateLayout is the calendar-date format used throughout the dataset.
const DateLayout = "2006-01-02"

// OnTime reports whether a record counts as delivered on time: status
// Delivered with a delivery time of at most 48 hours.
func OnTime(r Record) bool {
	return r.Status == StatusDelivered && r.DeliveryTime <= 48
}
