package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/discount"
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Phase is a step of quote construction. Phases only move forward.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseNormalized          // state inside its domain
	PhaseEvaluated           // raw range computed, floor included
	PhaseDiscounted          // discount applied
	PhaseComplete
)

// String returns the phase name
func (p Phase) String() string {
	names := []string{"uninitialized", "normalized", "evaluated", "discounted", "complete"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "unknown"
}

// quoteBuilder is the only way a Quote is produced.
// Calling a step out of order is a programming error and panics.
type quoteBuilder struct {
	phase Phase
	ev    vertical.Evaluator
	table *pricing.Table
	quote *Quote
}

func newQuoteBuilder(ev vertical.Evaluator, table *pricing.Table) *quoteBuilder {
	if ev == nil {
		panic("SEALED: cannot build quote - evaluator is nil")
	}
	if table == nil {
		panic("SEALED: cannot build quote - pricing table is nil")
	}
	return &quoteBuilder{
		ev:    ev,
		table: table,
		quote: &Quote{Vertical: ev.ID(), Title: ev.Title()},
	}
}

func (b *quoteBuilder) require(p Phase) {
	if b.phase != p {
		panic(fmt.Sprintf("SEALED: quote builder in phase %s, expected %s", b.phase, p))
	}
}

// Normalize copies state into the builder, clamped into its domain
func (b *quoteBuilder) Normalize(state vertical.State) {
	b.require(PhaseUninitialized)
	b.quote.Inputs = vertical.Normalize(b.ev.Fields(), state)
	b.phase = PhaseNormalized
}

// Validate checks the normalized choices against the pricing table
func (b *quoteBuilder) Validate() error {
	b.require(PhaseNormalized)
	return vertical.Validate(b.ev, b.quote.Inputs, b.table)
}

// Evaluate computes the raw range and hints
func (b *quoteBuilder) Evaluate() {
	b.require(PhaseNormalized)
	b.quote.Raw = b.ev.Evaluate(b.quote.Inputs, b.table)
	if h, ok := b.ev.(vertical.Hinter); ok {
		b.quote.Hints = h.Hints(b.quote.Inputs)
	}
	b.phase = PhaseEvaluated
}

// Discount applies pct after the floor
func (b *quoteBuilder) Discount(pct decimal.Decimal) {
	b.require(PhaseEvaluated)
	b.quote.DiscountPercent = discount.Clamp(pct)
	b.quote.Final = discount.Apply(b.quote.Raw, pct)
	b.phase = PhaseDiscounted
}

// Build returns the finished quote
func (b *quoteBuilder) Build() *Quote {
	b.require(PhaseDiscounted)
	b.phase = PhaseComplete
	return b.quote
}
