// Package cleaning - Cleaning family evaluators
// Pricing model per vertical:
// - House cleaning: visit base plus rooms or square footage
// - Windows: per-pane counts scaled by story and service
// - Carpets: per room or per sqft scaled by soil condition
// - Janitorial: per sqft scaled by frequency, plus restroom visits
// - Pressure washing: per sqft by surface, or hourly for other work
package cleaning

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// House prices recurring and one-time home cleaning
type House struct{}

// NewHouse creates the house cleaning evaluator
func NewHouse() *House {
	return &House{}
}

// ID returns the vertical id
func (h *House) ID() string { return "cleaning" }

// Title returns the display name
func (h *House) Title() string { return "House Cleaning" }

// Fields returns the input schema
func (h *House) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("visit", "Visit type", "one-time").From("visit"),
		vertical.Flag("by-sqft", "Price by square footage instead of rooms"),
		vertical.Count("bedrooms", "Bedrooms", 1, 1),
		vertical.Count("bathrooms", "Bathrooms", 1, 1),
		vertical.Area("sqft", "Square footage", 1000),
		vertical.Flag("floors", "Floor cleaning"),
		vertical.Flag("appliances", "Inside appliances"),
		vertical.Flag("windows", "Interior windows"),
		vertical.Flag("laundry", "Laundry"),
	}
}

// Evaluate computes the cleaning range
func (h *House) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	r := types.RangeOf(t.Pair("visit", s.Choice("visit")))

	if s.Flag("by-sqft") {
		// each bound is rounded to whole currency units
		r = r.Add(t.Pair("per-sqft").Scale(s.Number("sqft")).Round(0))
	} else {
		r = r.AddEach(t.Pair("per-bedroom"), s.Number("bedrooms"))
		r = r.AddEach(t.Pair("per-bathroom"), s.Number("bathrooms"))
	}

	r = vertical.AddOns(r, s, t, "floors", "appliances", "windows", "laundry")
	return r.Floor(t.Pair("minimum-fee"))
}

// Hints reports which sizing inputs apply
func (h *House) Hints(s vertical.State) vertical.Hints {
	if s.Flag("by-sqft") {
		return vertical.Hints{Mode: "sqft", Hidden: []string{"bedrooms", "bathrooms"}}
	}
	return vertical.Hints{Mode: "rooms", Hidden: []string{"sqft"}}
}
