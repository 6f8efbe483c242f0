package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Carpentry prices carpentry projects from estimated labor hours
type Carpentry struct{}

// NewCarpentry creates the carpentry evaluator
func NewCarpentry() *Carpentry {
	return &Carpentry{}
}

func (c *Carpentry) ID() string    { return "carpentry" }
func (c *Carpentry) Title() string { return "Carpentry" }

func (c *Carpentry) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("project", "Project type", "minor-repair",
			"minor-repair", "framing", "cabinetry", "deck-fence", "custom-woodwork", "other"),
		vertical.Number("hours", "Estimated hours", 4),
		vertical.Choice("complexity", "Complexity", "low").From("complexity"),
		vertical.Choice("material", "Material quality", "standard").From("material"),
		vertical.Flag("demolition", "Demolition and removal"),
		vertical.Flag("finishing", "Finishing and staining"),
		vertical.Flag("permit", "Permit assistance"),
	}
}

// Evaluate computes the carpentry range. Known projects carry their own
// hour range; "other" uses the entered hours for both bounds.
func (c *Carpentry) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	hours := types.PairOf(s.Number("hours"))
	if project := s.Choice("project"); project != "other" {
		hours = t.Pair("base-hours", project)
	}

	r := types.RangeOf(hours.Mul(t.Pair("hourly"))).
		Times(t.Factor("complexity", s.Choice("complexity"))).
		Times(t.Factor("material", s.Choice("material")))

	r = vertical.AddOns(r, s, t, "demolition", "finishing", "permit")
	return r.Floor(t.Pair("minimum-fee"))
}

func (c *Carpentry) Hints(s vertical.State) vertical.Hints {
	if s.Is("project", "other") {
		return vertical.Hints{}
	}
	return vertical.Hints{Hidden: []string{"hours"}}
}
