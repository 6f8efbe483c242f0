package outdoor

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Fence prices installation, repair, staining and removal
type Fence struct{}

// NewFence creates the fence evaluator
func NewFence() *Fence {
	return &Fence{}
}

func (f *Fence) ID() string    { return "fence" }
func (f *Fence) Title() string { return "Fence Installation & Repair" }

func (f *Fence) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "new-installation",
			"new-installation", "repair", "staining", "removal"),
		vertical.Number("feet", "Linear feet", 100),
		vertical.Choice("material", "Material", "wood").From("install"),
		vertical.Choice("height", "Height (ft)", "6", "4", "5", "6", "8"),
		vertical.Choice("severity", "Repair severity", "minor").From("repair"),
		vertical.Flag("gate-installation", "Gate installation"),
		vertical.Count("gates", "Gates", 1, 1),
		vertical.Flag("old-fence-removal", "Old fence removal"),
		vertical.Flag("post-caps", "Post caps"),
	}
}

// Evaluate computes the fence range. The minimum fee applies to every
// service, repairs included.
func (f *Fence) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	feet := s.Number("feet")
	service := s.Choice("service")

	r := types.Zero()
	switch service {
	case "new-installation":
		r = r.AddEach(t.Pair("install", s.Choice("material"), s.Choice("height")), feet)
	case "repair":
		r = r.Add(t.Pair("repair", s.Choice("severity")))
	case "staining":
		r = r.AddEach(t.Pair("staining"), feet)
	case "removal":
		r = r.AddEach(t.Pair("removal"), feet)
	}

	r = r.AddEach(s.When("gate-installation", t.Pair("gate")), s.Number("gates"))
	if service != "removal" {
		r = vertical.AddOns(r, s, t, "old-fence-removal")
	}
	r = r.AddEach(s.When("post-caps", t.Pair("post-caps")), feet)

	return r.Floor(t.Pair("minimum-fee"))
}

func (f *Fence) Hints(s vertical.State) vertical.Hints {
	h := vertical.Hints{Mode: s.Choice("service")}
	switch s.Choice("service") {
	case "new-installation":
		h.Hidden = []string{"severity"}
	case "repair":
		h.Hidden = []string{"feet", "material", "height"}
	default:
		h.Hidden = []string{"material", "height", "severity"}
	}
	if !s.Flag("gate-installation") {
		h.Hidden = append(h.Hidden, "gates")
	}
	return h
}
