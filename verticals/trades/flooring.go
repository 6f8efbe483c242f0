package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Flooring prices floor installation, refinishing, removal and repair
type Flooring struct{}

// NewFlooring creates the flooring evaluator
func NewFlooring() *Flooring {
	return &Flooring{}
}

func (f *Flooring) ID() string    { return "flooring" }
func (f *Flooring) Title() string { return "Flooring" }

func (f *Flooring) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "installation", "installation", "refinishing", "removal", "repair"),
		vertical.Choice("material", "Material", "hardwood").From("install"),
		vertical.Area("sqft", "Area (sq ft)", 200),
		vertical.Choice("subfloor", "Subfloor condition", "good").From("subfloor"),
		vertical.Flag("baseboard", "Baseboard installation"),
		vertical.Flag("furniture-moving", "Furniture moving"),
		vertical.Flag("stair-installation", "Stair installation"),
		vertical.Count("stairs", "Stairs", 1, 1),
	}
}

// Evaluate computes the flooring range. Only hardwood can be refinished;
// refinishing any other material contributes nothing before the minimum fee.
func (f *Flooring) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	service := s.Choice("service")
	sqft := s.Number("sqft")

	r := types.Zero()
	switch service {
	case "installation":
		r = r.AddEach(t.Pair("install", s.Choice("material")), sqft)
	case "refinishing":
		r = r.AddEach(t.Pair("refinish", s.Choice("material")), sqft)
	case "removal":
		r = r.AddEach(t.Pair("removal"), sqft)
	case "repair":
		r = r.Add(t.Pair("repair"))
	}

	if service == "installation" || service == "refinishing" {
		r = r.Times(t.Factor("subfloor", s.Choice("subfloor")))
	}

	r = r.AddEach(s.When("baseboard", t.Pair("baseboard")), sqft.Mul(t.Scalar("baseboard-ratio")))
	r = vertical.AddOns(r, s, t, "furniture-moving")
	r = r.AddEach(s.When("stair-installation", t.Pair("per-stair")), s.Number("stairs"))

	return r.Floor(t.Pair("minimum-fee"))
}
