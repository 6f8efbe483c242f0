package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Electrical prices electrical repairs and installs
type Electrical struct{}

// NewElectrical creates the electrical evaluator
func NewElectrical() *Electrical {
	return &Electrical{}
}

func (e *Electrical) ID() string    { return "electrical-services" }
func (e *Electrical) Title() string { return "Electrical Services" }

func (e *Electrical) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "repair",
			"repair", "outlet-switch", "light-fixture", "panel-upgrade", "rewiring", "ev-charger"),
		vertical.Number("hours", "Estimated hours", 2),
		vertical.Count("units", "Units", 1, 1),
		vertical.Choice("complexity", "Complexity", "simple").From("complexity"),
		vertical.Flag("permit", "Permit and inspection"),
		vertical.Flag("materials", "Extra materials"),
		vertical.Flag("emergency", "Emergency service"),
	}
}

// Evaluate computes the electrical range. Outlets and light fixtures are
// priced per unit.
func (e *Electrical) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	service := s.Choice("service")

	var r types.CostRange
	switch service {
	case "repair":
		r = types.Zero().AddEach(t.Pair("hourly"), s.Number("hours"))
	case "outlet-switch", "light-fixture":
		r = types.Zero().AddEach(t.Pair("task", service), s.Number("units"))
	default:
		r = types.RangeOf(t.Pair("task", service))
	}
	r = r.Times(t.Factor("complexity", s.Choice("complexity")))

	r = vertical.AddOns(r, s, t, "permit", "materials", "emergency")
	return r.Floor(t.Pair("minimum-fee"))
}
