// Package trades - Skilled trade evaluators
// Most trades follow one shape: a task or hourly base, one or two
// multiplicative tiers, flat add-ons, then the minimum job fee.
// Painting and flooring price by area; HVAC picks a size tier from the
// property's square footage.
package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

var paintingAddOns = []string{"wall-prep", "trim", "ceiling", "deck-staining"}

// Painting prices interior and exterior painting by area or by room
type Painting struct{}

// NewPainting creates the painting evaluator
func NewPainting() *Painting {
	return &Painting{}
}

// ID returns the vertical id
func (p *Painting) ID() string { return "painting" }

// Title returns the display name
func (p *Painting) Title() string { return "Painting" }

// Fields returns the input schema
func (p *Painting) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service type", "interior").From("per-sqft"),
		vertical.Flag("by-rooms", "Price by rooms instead of area"),
		vertical.Area("sqft", "Area (sq ft)", 1000),
		vertical.Count("rooms", "Rooms", 1, 1),
		vertical.Choice("coats", "Number of coats", "2").From("coats"),
		vertical.Choice("quality", "Paint quality", "standard").From("quality"),
		vertical.Flag("wall-prep", "Wall preparation"),
		vertical.Flag("trim", "Trim painting"),
		vertical.Flag("ceiling", "Ceiling painting"),
		vertical.Flag("deck-staining", "Deck staining"),
	}
}

// Evaluate computes the painting range
func (p *Painting) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	service := s.Choice("service")

	var r types.CostRange
	if s.Flag("by-rooms") {
		r = types.Zero().AddEach(t.Pair("per-room", service), s.Number("rooms"))
	} else {
		r = types.Zero().AddEach(t.Pair("per-sqft", service), s.Number("sqft"))
	}
	r = r.Times(t.Factor("coats", s.Choice("coats"))).
		Times(t.Factor("quality", s.Choice("quality")))

	for _, name := range paintingAddOns {
		// rooms mode converts each room to a nominal area per add-on
		area := s.Number("sqft")
		if s.Flag("by-rooms") {
			area = s.Number("rooms").Mul(t.Scalar("room-sqft", name))
		}
		r = r.AddEach(s.When(name, t.Pair("add-ons", name)), area)
	}

	return r.Floor(t.Pair("minimum-fee"))
}

// Hints reports which sizing input applies
func (p *Painting) Hints(s vertical.State) vertical.Hints {
	if s.Flag("by-rooms") {
		return vertical.Hints{Mode: "rooms", Hidden: []string{"sqft"}}
	}
	return vertical.Hints{Mode: "area", Hidden: []string{"rooms"}}
}
