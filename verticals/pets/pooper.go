// Package pets - Pet care evaluators
// Every pet vertical charges something per extra animal: pooper-scooper
// adds a per-dog fee, dog walking adds one per walk, pet services price
// by animal type and size.
package pets

import (
	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// PooperScooper prices recurring and one-time yard waste removal
type PooperScooper struct{}

// NewPooperScooper creates the pooper-scooper evaluator
func NewPooperScooper() *PooperScooper {
	return &PooperScooper{}
}

func (p *PooperScooper) ID() string    { return "pooper-scooper" }
func (p *PooperScooper) Title() string { return "Pooper Scooper" }

func (p *PooperScooper) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("frequency", "Service frequency", "weekly",
			"weekly", "bi-weekly", "twice-weekly", "one-time"),
		vertical.Count("dogs", "Dogs", 1, 1),
		vertical.Choice("yard", "Yard size", "small").From("yard"),
		vertical.Choice("condition", "Initial cleanup condition", "average").From("condition"),
		vertical.Flag("waste-hauling", "Waste hauling"),
		vertical.Flag("deodorizing", "Yard deodorizing"),
		vertical.Flag("patio-hosing", "Patio hosing"),
	}
}

// Evaluate computes the pooper-scooper range. A one-time cleanup charges
// half the per-dog fee for each extra dog.
func (p *PooperScooper) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	yard := t.Factor("yard", s.Choice("yard"))
	extra := extraDogs(s.Number("dogs"))

	var r types.CostRange
	if s.Is("frequency", "one-time") {
		r = types.RangeOf(t.Pair("condition", s.Choice("condition"))).Times(yard).
			AddEach(t.Pair("per-dog"), extra.Mul(t.Scalar("one-time-dog-share")))
	} else {
		r = types.RangeOf(t.Pair("frequency", s.Choice("frequency"))).Times(yard).
			AddEach(t.Pair("per-dog"), extra)
	}

	r = vertical.AddOns(r, s, t, "waste-hauling", "deodorizing", "patio-hosing")
	return r.Floor(t.Pair("minimum-fee"))
}

func (p *PooperScooper) Hints(s vertical.State) vertical.Hints {
	if s.Is("frequency", "one-time") {
		return vertical.Hints{Mode: "one-time"}
	}
	return vertical.Hints{Mode: "recurring", Hidden: []string{"condition"}}
}

func extraDogs(n decimal.Decimal) decimal.Decimal {
	extra := n.Sub(decimal.NewFromInt(1))
	if extra.IsNegative() {
		return decimal.Zero
	}
	return extra
}
