package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// tasks charged once per item
var perItemTasks = map[string]bool{
	"fixture-installation": true,
	"mounting":             true,
	"furniture-assembly":   true,
}

// Handyman prices small jobs, hourly or per task
type Handyman struct{}

// NewHandyman creates the handyman evaluator
func NewHandyman() *Handyman {
	return &Handyman{}
}

func (h *Handyman) ID() string    { return "handyman-services" }
func (h *Handyman) Title() string { return "Handyman Services" }

func (h *Handyman) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "hourly",
			"hourly", "fixture-installation", "drywall-repair", "door-window-repair",
			"mounting", "furniture-assembly", "minor-plumbing"),
		vertical.Number("hours", "Estimated hours", 2),
		vertical.Count("items", "Items", 1, 0),
		vertical.Choice("complexity", "Complexity", "simple").From("complexity"),
		vertical.Flag("material-sourcing", "Material sourcing"),
		vertical.Flag("travel", "Travel fee"),
		vertical.Flag("demolition", "Demolition and removal"),
	}
}

func (h *Handyman) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	service := s.Choice("service")

	var r types.CostRange
	if service == "hourly" {
		r = types.Zero().AddEach(t.Pair("hourly"), s.Number("hours"))
	} else {
		base := t.Pair("task", service)
		if perItemTasks[service] {
			base = base.Scale(s.Number("items"))
		}
		r = types.RangeOf(base)
	}
	r = r.Times(t.Factor("complexity", s.Choice("complexity")))

	r = vertical.AddOns(r, s, t, "material-sourcing", "travel", "demolition")
	return r.Floor(t.Pair("minimum-fee"))
}

func (h *Handyman) Hints(s vertical.State) vertical.Hints {
	service := s.Choice("service")
	switch {
	case service == "hourly":
		return vertical.Hints{Mode: "hourly", Hidden: []string{"items"}}
	case perItemTasks[service]:
		return vertical.Hints{Mode: "per-item", Hidden: []string{"hours"}}
	}
	return vertical.Hints{Mode: "fixed", Hidden: []string{"hours", "items"}}
}
