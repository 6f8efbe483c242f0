// Package property - Property upkeep, hauling and consulting evaluators
package property

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Maintenance prices hourly property upkeep
type Maintenance struct{}

// NewMaintenance creates the property maintenance evaluator
func NewMaintenance() *Maintenance {
	return &Maintenance{}
}

func (m *Maintenance) ID() string    { return "property-maintenance" }
func (m *Maintenance) Title() string { return "Property Maintenance" }

func (m *Maintenance) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("property-type", "Property type", "medium-residential").From("property-type"),
		vertical.Choice("frequency", "Service frequency", "one-time",
			"one-time", "weekly", "monthly", "quarterly", "annually"),
		vertical.Number("hours", "Estimated hours", 1),
		vertical.Number("hourly-rate", "Hourly rate (0 uses the standard range)", 0),
		vertical.Flag("gutter-cleaning", "Gutter cleaning"),
		vertical.Flag("landscaping", "Basic landscaping"),
		vertical.Flag("filter-replacement", "Filter replacement"),
		vertical.Flag("pressure-washing", "Small pressure washing"),
		vertical.Flag("minor-plumbing", "Minor plumbing"),
		vertical.Flag("minor-electrical", "Minor electrical"),
	}
}

// Evaluate computes the maintenance range. A custom hourly rate replaces
// both bounds of the standard rate. Recurring plans adjust by frequency;
// only one-time jobs carry the minimum fee.
func (m *Maintenance) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	rate := t.Pair("hourly")
	if custom := s.Number("hourly-rate"); custom.IsPositive() {
		rate = types.PairOf(custom)
	}

	r := types.Zero().AddEach(rate, s.Number("hours")).
		Times(t.Factor("property-type", s.Choice("property-type")))
	frequency := s.Choice("frequency")
	if frequency != "one-time" {
		r = r.Times(t.Factor("frequency", frequency))
	}

	r = vertical.AddOns(r, s, t,
		"gutter-cleaning", "landscaping", "filter-replacement",
		"pressure-washing", "minor-plumbing", "minor-electrical")
	if frequency != "one-time" {
		return r
	}
	return r.Floor(t.Pair("minimum-fee"))
}
