package outdoor

import (
	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

var hundred = decimal.NewFromInt(100)

// Pool prices recurring pool and spa service and one-time cleanups
type Pool struct{}

// NewPool creates the pool and spa evaluator
func NewPool() *Pool {
	return &Pool{}
}

func (p *Pool) ID() string    { return "pool-spa" }
func (p *Pool) Title() string { return "Pool & Spa" }

func (p *Pool) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("type", "Pool or spa type", "inground").From("cleanup"),
		vertical.Choice("size", "Pool size", "medium", "small", "medium", "large"),
		vertical.Choice("frequency", "Service frequency", "weekly", "weekly", "bi-weekly", "monthly", "one-time"),
		vertical.Flag("opening-closing", "Opening or closing"),
		vertical.Choice("opening-type", "Opening or closing", "both", "opening", "closing", "both"),
		vertical.Flag("filter-cleaning", "Filter cleaning"),
		vertical.Flag("algae-treatment", "Algae treatment"),
		vertical.Flag("equipment-diagnostics", "Equipment diagnostics"),
		vertical.Flag("salt-cell-cleaning", "Salt cell cleaning"),
	}
}

// Evaluate computes the pool range.
// A one-time pool cleanup is scaled by the monthly size rate divided by 100,
// so a medium inground pool costs 1.5x to 2x the base cleanup.
func (p *Pool) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	kind := s.Choice("type")

	var r types.CostRange
	if s.Is("frequency", "one-time") {
		r = types.RangeOf(t.Pair("cleanup", kind))
		if kind != "hot-tub" {
			if size, ok := t.Lookup("monthly", kind, s.Choice("size")); ok {
				r = r.Times(types.Pair{Low: size.Low.Div(hundred), High: size.High.Div(hundred)})
			}
		}
	} else {
		monthly := t.Pair("monthly", kind, s.Choice("size"))
		if kind == "hot-tub" {
			monthly = t.Pair("monthly", kind)
		}
		r = types.RangeOf(monthly).Times(t.Factor("frequency", s.Choice("frequency")))
	}

	if s.Flag("opening-closing") {
		oc := s.Choice("opening-type")
		if oc == "opening" || oc == "both" {
			r = r.Add(t.Pair("opening"))
		}
		if oc == "closing" || oc == "both" {
			r = r.Add(t.Pair("closing"))
		}
	}
	r = vertical.AddOns(r, s, t, "filter-cleaning", "algae-treatment", "equipment-diagnostics", "salt-cell-cleaning")

	return r.Floor(t.Pair("minimum-fee"))
}

func (p *Pool) Hints(s vertical.State) vertical.Hints {
	var h vertical.Hints
	if s.Is("type", "hot-tub") {
		h.Hidden = append(h.Hidden, "size")
	}
	if !s.Flag("opening-closing") {
		h.Hidden = append(h.Hidden, "opening-type")
	}
	return h
}
