package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Plumbing prices fixed plumbing tasks or hourly work
type Plumbing struct{}

// NewPlumbing creates the plumbing evaluator
func NewPlumbing() *Plumbing {
	return &Plumbing{}
}

func (p *Plumbing) ID() string    { return "plumbing" }
func (p *Plumbing) Title() string { return "Plumbing" }

func (p *Plumbing) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "clog-drain",
			"clog-drain", "leaky-faucet", "water-heater", "new-fixture", "pipe-repair", "sewer-line", "other"),
		vertical.Number("hours", "Estimated hours", 1),
		vertical.Count("fixtures", "Fixtures", 1, 1),
		vertical.Choice("access", "Access level", "easy").From("access"),
		vertical.Flag("emergency", "Emergency service"),
		vertical.Flag("camera-inspection", "Camera inspection"),
		vertical.Flag("permit", "Permit required"),
	}
}

func (p *Plumbing) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	service := s.Choice("service")

	var r types.CostRange
	switch service {
	case "other":
		r = types.Zero().AddEach(t.Pair("hourly"), s.Number("hours"))
	case "new-fixture":
		r = types.Zero().AddEach(t.Pair("task", service), s.Number("fixtures"))
	default:
		r = types.RangeOf(t.Pair("task", service))
	}
	r = r.Times(t.Factor("access", s.Choice("access")))

	r = vertical.AddOns(r, s, t, "emergency", "camera-inspection", "permit")
	return r.Floor(t.Pair("minimum-fee"))
}
