package cleaning

import (
	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Janitorial prices commercial cleaning contracts
type Janitorial struct{}

// NewJanitorial creates the janitorial evaluator
func NewJanitorial() *Janitorial {
	return &Janitorial{}
}

func (j *Janitorial) ID() string    { return "janitorial" }
func (j *Janitorial) Title() string { return "Janitorial Services" }

func (j *Janitorial) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("property", "Property type", "office").From("per-sqft"),
		vertical.Area("sqft", "Area (sq ft)", 2000),
		vertical.Choice("frequency", "Service frequency", "weekly").From("frequency"),
		vertical.Count("restrooms", "Restrooms", 1, 1),
		vertical.Flag("floor-care", "Floor care"),
		vertical.Flag("window-cleaning", "Window cleaning"),
		vertical.Flag("trash-removal", "Trash removal"),
		vertical.Flag("supplies", "Supplies provided"),
	}
}

// Evaluate computes the janitorial range
func (j *Janitorial) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	sqft := s.Number("sqft")
	freq := s.Choice("frequency")

	r := types.Zero().AddEach(t.Pair("per-sqft", s.Choice("property")), sqft)
	r = r.Times(t.Factor("frequency", freq))

	// restrooms are serviced once per visit in the billing period
	visits := t.Scalar("restroom-visits", freq)
	if visits.IsZero() {
		visits = decimal.NewFromInt(1)
	}
	r = r.AddEach(t.Pair("per-restroom"), s.Number("restrooms").Mul(visits))

	for _, name := range []string{"floor-care", "window-cleaning", "supplies"} {
		r = r.AddEach(s.When(name, t.Pair("per-sqft-add-ons", name)), sqft)
	}
	r = vertical.AddOns(r, s, t, "trash-removal")

	return r.Floor(t.Pair("minimum-fee"))
}
