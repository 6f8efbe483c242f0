// Package outdoor - Outdoor and property-exterior evaluators
// Lawn care is the only vertical with a square feet / acres switch; the
// remaining evaluators price a single dominant service selection.
package outdoor

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/units"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// area-priced lawn services, each with its own on flag and "<name>-area" field
var lawnAreaServices = []string{"mowing", "aeration", "dethatching", "fertilization", "seeding", "weed-control"}

// Lawn prices a basket of lawn care services
type Lawn struct{}

// NewLawn creates the lawn care evaluator
func NewLawn() *Lawn {
	return &Lawn{}
}

// ID returns the vertical id
func (l *Lawn) ID() string { return "lawn-care" }

// Title returns the display name
func (l *Lawn) Title() string { return "Lawn Care" }

// AreaFlag names the acres toggle
func (l *Lawn) AreaFlag() string { return "acres" }

// Fields returns the input schema
func (l *Lawn) Fields() []vertical.Field {
	fields := []vertical.Field{
		vertical.Flag("acres", "Areas in acres"),
	}
	for _, svc := range lawnAreaServices {
		fields = append(fields,
			vertical.Flag(svc, svc),
			vertical.Area(svc+"-area", svc+" area", 5000),
		)
	}
	return append(fields,
		vertical.Choice("aeration-type", "Aeration type", "core").From("per-sqft", "aeration"),
		vertical.Flag("mulch", "Mulch clean-up"),
		vertical.Count("mulch-bags", "Mulch bags", 0, 0),
		vertical.Flag("leaf-removal", "Leaf removal"),
		vertical.Number("leaf-hours", "Leaf removal hours", 0),
		vertical.Flag("yard-cleanup", "Yard clean-up"),
		vertical.Number("cleanup-hours", "Yard clean-up hours", 0),
	)
}

// Evaluate sums every selected service. Area rates are read from the
// per-acre table when the acres flag is on.
func (l *Lawn) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	rates := "per-sqft"
	if s.Flag("acres") {
		rates = "per-acre"
	}

	r := types.Zero()
	for _, svc := range lawnAreaServices {
		if !s.Flag(svc) {
			continue
		}
		keys := []string{rates, svc}
		if svc == "aeration" {
			keys = append(keys, s.Choice("aeration-type"))
		}
		r = r.AddEach(t.Pair(keys...), s.Number(svc+"-area"))
	}

	r = r.AddEach(s.When("mulch", t.Pair("per-mulch-bag")), s.Number("mulch-bags"))
	r = r.AddEach(s.When("leaf-removal", t.Pair("leaf-removal")), s.Number("leaf-hours"))
	r = r.AddEach(s.When("yard-cleanup", t.Pair("yard-cleanup")), s.Number("cleanup-hours"))

	return r.Floor(t.Pair("minimum-fee"))
}

// Hints hides the inputs of unselected services
func (l *Lawn) Hints(s vertical.State) vertical.Hints {
	h := vertical.Hints{AreaUnit: units.ForFlag(s.Flag("acres")).String()}
	for _, svc := range lawnAreaServices {
		if !s.Flag(svc) {
			h.Hidden = append(h.Hidden, svc+"-area")
		}
	}
	if !s.Flag("aeration") {
		h.Hidden = append(h.Hidden, "aeration-type")
	}
	if !s.Flag("mulch") {
		h.Hidden = append(h.Hidden, "mulch-bags")
	}
	if !s.Flag("leaf-removal") {
		h.Hidden = append(h.Hidden, "leaf-hours")
	}
	if !s.Flag("yard-cleanup") {
		h.Hidden = append(h.Hidden, "cleanup-hours")
	}
	return h
}
