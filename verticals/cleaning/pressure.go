package cleaning

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// surfaces that take a sealant coat
var sealable = map[string]bool{"driveway": true, "patio": true, "deck": true}

// surfaces priced higher on taller buildings
var storied = map[string]bool{"siding": true, "roof": true}

// Pressure prices pressure washing
type Pressure struct{}

// NewPressure creates the pressure washing evaluator
func NewPressure() *Pressure {
	return &Pressure{}
}

func (p *Pressure) ID() string    { return "pressure-washing" }
func (p *Pressure) Title() string { return "Pressure Washing" }

func (p *Pressure) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("surface", "Surface", "driveway",
			"driveway", "patio", "siding", "deck", "fence", "roof", "other"),
		vertical.Area("sqft", "Area (sq ft)", 500),
		vertical.Number("hours", "Estimated hours", 1),
		vertical.Choice("material", "Material", "concrete").From("material"),
		vertical.Choice("condition", "Dirt condition", "light").From("condition"),
		vertical.Choice("story", "Story height", "1").From("story"),
		vertical.Flag("sealing", "Sealing"),
		vertical.Flag("gutter-brightening", "Gutter brightening"),
		vertical.Flag("mold-treatment", "Mold and mildew treatment"),
	}
}

// Evaluate computes the pressure washing range. "other" surfaces are billed
// hourly without any multiplier.
func (p *Pressure) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	surface := s.Choice("surface")
	sqft := s.Number("sqft")

	var r types.CostRange
	if surface == "other" {
		r = types.Zero().AddEach(t.Pair("hourly"), s.Number("hours"))
	} else {
		r = types.Zero().AddEach(t.Pair("per-sqft", surface), sqft)
		r = r.Times(t.Factor("condition", s.Choice("condition")))
		if storied[surface] {
			r = r.Times(t.Factor("story", s.Choice("story")))
		}
		r = r.Times(t.Factor("material", s.Choice("material")))
	}

	if sealable[surface] {
		r = r.AddEach(s.When("sealing", t.Pair("sealing")), sqft)
	}
	r = vertical.AddOns(r, s, t, "gutter-brightening", "mold-treatment")

	return r.Floor(t.Pair("minimum-fee"))
}

func (p *Pressure) Hints(s vertical.State) vertical.Hints {
	surface := s.Choice("surface")
	if surface == "other" {
		return vertical.Hints{Mode: "hourly", Hidden: []string{"sqft", "material", "condition", "story", "sealing"}}
	}
	h := vertical.Hints{Mode: "area", Hidden: []string{"hours"}}
	if !storied[surface] {
		h.Hidden = append(h.Hidden, "story")
	}
	if !sealable[surface] {
		h.Hidden = append(h.Hidden, "sealing")
	}
	return h
}
