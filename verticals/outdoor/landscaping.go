package outdoor

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Landscaping prices design and installation projects
type Landscaping struct{}

// NewLandscaping creates the landscaping evaluator
func NewLandscaping() *Landscaping {
	return &Landscaping{}
}

func (l *Landscaping) ID() string    { return "landscaping-services" }
func (l *Landscaping) Title() string { return "Landscaping Services" }

func (l *Landscaping) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("project", "Project type", "new-design",
			"new-design", "renovation", "garden-bed", "hardscaping", "irrigation", "other"),
		vertical.Area("sqft", "Area (sq ft)", 500),
		vertical.Number("hours", "Estimated hours", 8),
		vertical.Choice("complexity", "Design complexity", "simple").From("complexity"),
		vertical.Flag("planting", "Planting"),
		vertical.Flag("lighting", "Landscape lighting"),
		vertical.Flag("water-feature", "Water feature"),
		vertical.Flag("retaining-wall", "Retaining wall"),
		vertical.Number("wall-feet", "Retaining wall length (ft)", 10),
	}
}

func (l *Landscaping) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	project := s.Choice("project")
	sqft := s.Number("sqft")

	var r types.CostRange
	switch {
	case project == "other":
		r = types.Zero().AddEach(t.Pair("hourly"), s.Number("hours"))
	case t.Has("flat", project):
		r = types.RangeOf(t.Pair("flat", project))
	default:
		r = types.Zero().AddEach(t.Pair("per-sqft", project), sqft)
	}
	r = r.Times(t.Factor("complexity", s.Choice("complexity")))

	r = r.AddEach(s.When("planting", t.Pair("planting")), sqft)
	r = vertical.AddOns(r, s, t, "lighting", "water-feature")
	r = r.AddEach(s.When("retaining-wall", t.Pair("retaining-wall")), s.Number("wall-feet"))

	return r.Floor(t.Pair("minimum-fee"))
}
