package ui

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/engine"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
)

// QuoteView is the JSON shape of a quote
type QuoteView struct {
	Vertical        string            `json:"vertical"`
	Title           string            `json:"title"`
	Currency        string            `json:"currency"`
	Low             string            `json:"low"`
	High            string            `json:"high"`
	RawLow          string            `json:"raw_low"`
	RawHigh         string            `json:"raw_high"`
	DiscountPercent string            `json:"discount_percent"`
	AreaUnit        string            `json:"area_unit,omitempty"`
	Inputs          map[string]string `json:"inputs"`
	Digest          string            `json:"pricing_digest"`
	EstimatedAt     string            `json:"estimated_at"`
}

// NewQuoteView flattens q with amounts fixed to places decimals
func NewQuoteView(q *engine.Quote, currency types.Currency, places int32) QuoteView {
	inputs := make(map[string]string)
	for _, kv := range q.Inputs.Entries() {
		inputs[kv[0]] = kv[1]
	}
	return QuoteView{
		Vertical:        q.Vertical,
		Title:           q.Title,
		Currency:        currency.String(),
		Low:             q.Final.Low.StringFixed(places),
		High:            q.Final.High.StringFixed(places),
		RawLow:          q.Raw.Low.StringFixed(places),
		RawHigh:         q.Raw.High.StringFixed(places),
		DiscountPercent: q.DiscountPercent.String(),
		AreaUnit:        q.Hints.AreaUnit,
		Inputs:          inputs,
		Digest:          q.Digest,
		EstimatedAt:     q.EstimatedAt.Format(time.RFC3339),
	}
}

// QuoteJSON writes q as indented JSON
func (w *Writer) QuoteJSON(q *engine.Quote, currency types.Currency, places int32) error {
	enc := json.NewEncoder(w.out)
	enc.SetIndent("", "  ")
	return enc.Encode(NewQuoteView(q, currency, places))
}

// DisplayQuote renders q as a summary box
func (w *Writer) DisplayQuote(q *engine.Quote, currency types.Currency, places int32) {
	summary := w.NewQuoteSummary()
	summary.Title = q.Title
	summary.Vertical = q.Vertical
	summary.Raw = q.Raw.Format(currency, places)
	summary.Final = q.Final.Format(currency, places)
	summary.Discount = q.DiscountPercent.String()
	summary.AreaUnit = q.Hints.AreaUnit
	summary.Inputs = q.Inputs.Entries()
	summary.Hidden = q.Hints.Hidden
	summary.Render()

	w.Debug("pricing digest %s, computed in %s", q.Digest, q.Duration)
}

// DisplayChange prints how the final estimate moved between two quotes
// of the same vertical
func (w *Writer) DisplayChange(label string, before, after *engine.Quote, currency types.Currency, places int32) {
	c := w.NewQuoteChange()
	c.Field = label
	c.After = after.Final.Format(currency, places)
	if before == nil || before.Vertical != after.Vertical {
		c.Before = "-"
		c.Render()
		return
	}
	c.Before = before.Final.Format(currency, places)

	delta := midpoint(after.Final).Sub(midpoint(before.Final))
	if !delta.IsZero() {
		c.IsIncrease = delta.IsPositive()
		c.Change = currency.Symbol() + delta.Abs().StringFixed(places)
		if !c.IsIncrease {
			c.Change = "-" + c.Change
		}
	}
	c.Render()
}

var two = decimal.NewFromInt(2)

func midpoint(r types.CostRange) decimal.Decimal {
	return r.Low.Add(r.High).Div(two)
}
