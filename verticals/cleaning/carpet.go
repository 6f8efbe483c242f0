package cleaning

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Carpet prices carpet cleaning per room or per square foot
type Carpet struct{}

// NewCarpet creates the carpet cleaning evaluator
func NewCarpet() *Carpet {
	return &Carpet{}
}

// ID returns the vertical id
func (c *Carpet) ID() string { return "carpet-cleaning" }

// Title returns the display name
func (c *Carpet) Title() string { return "Carpet Cleaning" }

// Fields returns the input schema
func (c *Carpet) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("method", "Cleaning method", "steam").From("per-room"),
		vertical.Choice("measure", "Measure by", "rooms", "rooms", "sqft"),
		vertical.Count("rooms", "Rooms", 1, 1),
		vertical.Area("sqft", "Area (sq ft)", 200),
		vertical.Choice("condition", "Carpet condition", "light").From("condition"),
		vertical.Flag("spot-treatment", "Spot treatment"),
		vertical.Flag("deodorizing", "Deodorizing"),
		vertical.Flag("protector", "Fabric protector"),
		vertical.Flag("stair-cleaning", "Stair cleaning"),
		vertical.Count("stairs", "Stairs", 1, 1),
	}
}

// Evaluate computes the carpet cleaning range
func (c *Carpet) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	method := s.Choice("method")

	var r types.CostRange
	if s.Is("measure", "sqft") {
		r = types.Zero().AddEach(t.Pair("per-sqft", method), s.Number("sqft"))
	} else {
		r = types.Zero().AddEach(t.Pair("per-room", method), s.Number("rooms"))
	}
	r = r.Times(t.Factor("condition", s.Choice("condition")))

	r = vertical.AddOns(r, s, t, "spot-treatment", "deodorizing")
	// protector is always charged on the square footage
	r = r.AddEach(s.When("protector", t.Pair("protector")), s.Number("sqft"))
	r = r.AddEach(s.When("stair-cleaning", t.Pair("per-stair")), s.Number("stairs"))

	return r.Floor(t.Pair("minimum-fee"))
}

// Hints reports which sizing input applies
func (c *Carpet) Hints(s vertical.State) vertical.Hints {
	h := vertical.Hints{Mode: s.Choice("measure")}
	if s.Is("measure", "sqft") {
		h.Hidden = append(h.Hidden, "rooms")
	} else if !s.Flag("protector") {
		h.Hidden = append(h.Hidden, "sqft")
	}
	if !s.Flag("stair-cleaning") {
		h.Hidden = append(h.Hidden, "stairs")
	}
	return h
}
