package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Installation prices appliance and fixture installs
type Installation struct{}

// NewInstallation creates the installation evaluator
func NewInstallation() *Installation {
	return &Installation{}
}

func (i *Installation) ID() string    { return "installation" }
func (i *Installation) Title() string { return "Installation Services" }

func (i *Installation) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("item", "Item", "appliance",
			"appliance", "light-fixture", "faucet-toilet", "tv-mount", "shelf-cabinet", "security-camera", "other"),
		vertical.Count("units", "Units", 1, 1),
		vertical.Number("hours", "Estimated hours", 1),
		vertical.Choice("complexity", "Complexity", "simple").From("complexity"),
		vertical.Flag("removal", "Removal of existing item"),
		vertical.Flag("disposal", "Disposal of old items"),
		vertical.Flag("modifications", "Minor modifications"),
		vertical.Flag("testing", "Testing and calibration"),
	}
}

// Evaluate computes the installation range. "other" is billed hourly and
// skips the complexity tier.
func (i *Installation) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	var r types.CostRange
	if item := s.Choice("item"); item == "other" {
		r = types.Zero().AddEach(t.Pair("hourly"), s.Number("hours"))
	} else {
		r = types.Zero().AddEach(t.Pair("item", item), s.Number("units")).
			Times(t.Factor("complexity", s.Choice("complexity")))
	}

	r = vertical.AddOns(r, s, t, "removal", "disposal", "modifications", "testing")
	return r.Floor(t.Pair("minimum-fee"))
}
