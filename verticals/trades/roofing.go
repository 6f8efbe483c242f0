package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Roofing prices roof repair, replacement, cleaning and inspection
type Roofing struct{}

// NewRoofing creates the roofing evaluator
func NewRoofing() *Roofing {
	return &Roofing{}
}

func (r *Roofing) ID() string    { return "roofing" }
func (r *Roofing) Title() string { return "Roofing" }

func (r *Roofing) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "repair", "repair", "replacement", "cleaning", "inspection"),
		vertical.Area("sqft", "Roof area (sq ft)", 1500),
		vertical.Choice("complexity", "Repair complexity", "minor").From("complexity"),
		vertical.Choice("material", "Material", "asphalt-shingles").From("material"),
		vertical.Choice("story", "Story height", "1").From("story"),
		vertical.Flag("old-roof-removal", "Old roof removal"),
		vertical.Flag("gutter-work", "Gutter work"),
		vertical.Flag("skylight-work", "Skylight work"),
		vertical.Flag("permit", "Permit fees"),
	}
}

// Evaluate computes the roofing range. Story height applies to every
// service except inspection.
func (r *Roofing) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	service := s.Choice("service")
	sqft := s.Number("sqft")

	cost := types.Zero()
	switch service {
	case "repair":
		cost = types.RangeOf(t.Pair("repair")).Times(t.Factor("complexity", s.Choice("complexity")))
	case "replacement":
		cost = cost.AddEach(t.Pair("replacement"), sqft).Times(t.Factor("material", s.Choice("material")))
	case "cleaning":
		cost = cost.AddEach(t.Pair("cleaning"), sqft)
	case "inspection":
		cost = types.RangeOf(t.Pair("inspection"))
	}
	if service != "inspection" {
		cost = cost.Times(t.Factor("story", s.Choice("story")))
	}

	if service == "replacement" {
		cost = cost.AddEach(s.When("old-roof-removal", t.Pair("old-roof-removal")), sqft)
	}
	cost = vertical.AddOns(cost, s, t, "gutter-work", "skylight-work", "permit")

	return cost.Floor(t.Pair("minimum-fee"))
}

func (r *Roofing) Hints(s vertical.State) vertical.Hints {
	switch s.Choice("service") {
	case "repair":
		return vertical.Hints{Hidden: []string{"sqft", "material", "old-roof-removal"}}
	case "replacement":
		return vertical.Hints{Hidden: []string{"complexity"}}
	case "cleaning":
		return vertical.Hints{Hidden: []string{"complexity", "material", "old-roof-removal"}}
	}
	return vertical.Hints{Hidden: []string{"sqft", "complexity", "material", "story", "old-roof-removal"}}
}
