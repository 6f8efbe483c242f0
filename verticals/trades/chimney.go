package trades

import (
	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Chimney prices chimney inspection, sweeping and repair
type Chimney struct{}

// NewChimney creates the chimney sweep evaluator
func NewChimney() *Chimney {
	return &Chimney{}
}

func (c *Chimney) ID() string    { return "chimney-sweep" }
func (c *Chimney) Title() string { return "Chimney Sweep" }

func (c *Chimney) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "sweep",
			"inspection", "sweep", "inspection-sweep", "level2-inspection", "repair"),
		vertical.Choice("chimney", "Chimney type", "standard").From("chimney"),
		vertical.Count("flues", "Flues", 1, 1),
		vertical.Number("hours", "Repair hours", 1),
		vertical.Flag("creosote-removal", "Creosote removal"),
		vertical.Flag("cap-installation", "Cap installation"),
		vertical.Flag("waterproofing", "Waterproofing"),
	}
}

// Evaluate computes the chimney range. The first flue is included in the
// service rate; each further flue adds the per-flue charge.
func (c *Chimney) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	var r types.CostRange
	if s.Is("service", "repair") {
		r = types.Zero().AddEach(t.Pair("hourly"), s.Number("hours"))
	} else {
		r = types.RangeOf(t.Pair("service", s.Choice("service"))).
			AddEach(t.Pair("per-flue"), Additional(s.Number("flues")))
		r = r.Times(t.Factor("chimney", s.Choice("chimney")))
	}

	r = vertical.AddOns(r, s, t, "creosote-removal", "cap-installation", "waterproofing")
	return r.Floor(t.Pair("minimum-fee"))
}

// Additional returns the units beyond the first, never less than zero
func Additional(n decimal.Decimal) decimal.Decimal {
	extra := n.Sub(decimal.NewFromInt(1))
	if extra.IsNegative() {
		return decimal.Zero
	}
	return extra
}
