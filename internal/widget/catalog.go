// Package widget declares the dashboard widget catalog and resolves raw
// drill-down tags into typed groupings at the boundary.
package widget

import (
	"github.com/cargodash/cargodash/internal/agg"
	"github.com/cargodash/cargodash/internal/filter"
)

// Option is one drill-down choice offered by a widget.
type Option struct {
	Tag   filter.Tag
	Label string
}

// Widget describes one dashboard widget: identity, title, drill-down
// options, and the default grouping used when no tag is set or the set tag
// is unrecognized.
type Widget struct {
	ID      string
	Title   string
	Options []Option
	Default filter.Tag
}

// Widget identities.
const (
	CostAnalysis         = "cost-analysis"
	PriorityBreakdown    = "priority-breakdown"
	PerformanceMetrics   = "performance-metrics"
	CarrierPerformance   = "carrier-performance"
	RegionalDistribution = "regional-distribution"
	StatusOverview       = "status-overview"
	LiveStats            = "live-stats"
	ShipmentVolume       = "shipment-volume"
	DeliveryTime         = "delivery-time"
	WeightDistribution   = "weight-distribution"
	HighPriority         = "high-priority"
	Capacity             = "capacity"
)

// Catalog lists the twelve dashboard widgets in display order.
var Catalog = []Widget{
	{
		ID:    CostAnalysis,
		Title: "Cost Analysis",
		Options: []Option{
			{filter.TagDay, "Daily"},
			{filter.TagWeek, "Weekly"},
			{filter.TagMonth, "Monthly"},
			{filter.TagQuarter, "Quarterly"},
		},
		Default: filter.TagDay,
	},
	{
		ID:    PriorityBreakdown,
		Title: "Priority Breakdown",
		Options: []Option{
			{filter.TagAll, "All Priorities"},
			{filter.TagHigh, "High Only"},
			{filter.TagMediumHigh, "Med + High"},
		},
		Default: filter.TagAll,
	},
	{
		ID:    PerformanceMetrics,
		Title: "Performance Metrics",
		Options: []Option{
			{filter.TagRealtime, "Live"},
			{filter.TagHour, "Hourly"},
			{filter.TagDay, "Daily"},
		},
	},
	{
		ID:    CarrierPerformance,
		Title: "Carrier Performance",
		Options: []Option{
			{filter.TagAll, "All Carriers"},
			{filter.TagTop3, "Top 3"},
			{filter.TagPerform, "Performance"},
		},
		Default: filter.TagAll,
	},
	{
		ID:    RegionalDistribution,
		Title: "Regional Distribution",
		Options: []Option{
			{filter.TagRegion, "By Region"},
			{filter.TagCountry, "By Country"},
			{filter.TagCity, "By City"},
		},
		Default: filter.TagRegion,
	},
	{
		ID:    StatusOverview,
		Title: "Status Overview",
		Options: []Option{
			{filter.TagAll, "All Status"},
			{filter.TagActive, "Active Only"},
			{filter.TagIssues, "Issues"},
		},
		Default: filter.TagAll,
	},
	{
		ID:    LiveStats,
		Title: "Live Stats",
		Options: []Option{
			{filter.TagRealtime, "Real-time"},
			{filter.TagHour, "Last Hour"},
			{filter.TagToday, "Today"},
		},
	},
	{
		ID:    ShipmentVolume,
		Title: "Shipment Volume Trends",
		Options: []Option{
			{filter.TagDay, "Daily"},
			{filter.TagWeek, "Weekly"},
			{filter.TagMonth, "Monthly"},
			{filter.TagYear, "Yearly"},
		},
		Default: filter.TagDay,
	},
	{
		ID:    DeliveryTime,
		Title: "Delivery Time Analysis",
		Options: []Option{
			{filter.TagHours, "By Hours"},
			{filter.TagDays, "By Days"},
			{filter.TagRoute, "By Route"},
		},
		Default: filter.TagHours,
	},
	{
		ID:    WeightDistribution,
		Title: "Weight Distribution",
		Options: []Option{
			{filter.TagWeight, "By Weight"},
			{filter.TagPackage, "By Package"},
			{filter.TagRoute, "By Route"},
		},
		Default: filter.TagWeight,
	},
	{
		ID:    HighPriority,
		Title: "High Priority Alert",
		Options: []Option{
			{filter.TagCritical, "Critical"},
			{filter.TagUrgent, "Urgent"},
			{filter.TagAll, "All Alerts"},
		},
	},
	{
		ID:    Capacity,
		Title: "Capacity Utilization",
		Options: []Option{
			{filter.TagCurrent, "Current"},
			{filter.TagProjected, "Projected"},
			{filter.TagHistorical, "Historical"},
		},
	},
}

// ByID looks a widget up by identity.
func ByID(id string) (Widget, bool) {
	for _, w := range Catalog {
		if w.ID == id {
			return w, true
		}
	}
	return Widget{}, false
}

// Grouping resolves a widget's raw tag: unknown or empty tags fall back to
// the widget's default, never an error.
func (w Widget) Grouping(tag filter.Tag) filter.Tag {
	for _, opt := range w.Options {
		if opt.Tag == tag {
			return tag
		}
	}
	return w.Default
}

// TimeBucketFor maps a time-grouping tag to its bucket, falling back when
// the tag names no bucket.
func TimeBucketFor(tag filter.Tag, fallback agg.TimeBucket) agg.TimeBucket {
	switch tag {
	case filter.TagDay:
		return agg.BucketDay
	case filter.TagWeek:
		return agg.BucketWeek
	case filter.TagMonth:
		return agg.BucketMonth
	case filter.TagQuarter:
		return agg.BucketQuarter
	case filter.TagYear:
		return agg.BucketYear
	}
	return fallback
}

// GeoBucketFor maps a regional tag to its rollup dimension.
func GeoBucketFor(tag filter.Tag) agg.GeoBucket {
	switch tag {
	case filter.TagCountry:
		return agg.GeoCountry
	case filter.TagCity:
		return agg.GeoCity
	}
	return agg.GeoRegion
}

// HistogramModeFor maps a delivery-time tag to its fixed bucket edges.
func HistogramModeFor(tag filter.Tag) agg.HistogramMode {
	switch tag {
	case filter.TagHours:
		return agg.HistogramHours
	case filter.TagDays:
		return agg.HistogramDays
	case filter.TagRoute:
		return agg.HistogramRoute
	}
	return agg.HistogramDefault
}

// ScatterModeFor maps a weight-distribution tag to its axis mapping.
func ScatterModeFor(tag filter.Tag) agg.ScatterMode {
	switch tag {
	case filter.TagPackage:
		return agg.ScatterPackageCost
	case filter.TagRoute:
		return agg.ScatterDistanceWeight
	}
	return agg.ScatterWeightCost
}

// CarrierGroupingFor maps a carrier-performance tag to its row filter.
func CarrierGroupingFor(tag filter.Tag) agg.CarrierGrouping {
	switch tag {
	case filter.TagTop3:
		return agg.CarrierTop3
	case filter.TagPerform:
		return agg.CarrierReliable
	}
	return agg.CarrierAll
}
