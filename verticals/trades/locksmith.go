package trades

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Locksmith prices lock work, key copies and lockouts
type Locksmith struct{}

// NewLocksmith creates the locksmith evaluator
func NewLocksmith() *Locksmith {
	return &Locksmith{}
}

func (l *Locksmith) ID() string    { return "locksmith-services" }
func (l *Locksmith) Title() string { return "Locksmith Services" }

func (l *Locksmith) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "rekey",
			"rekey", "lock-replace", "new-install", "emergency-lockout", "key-duplication", "other-repair"),
		vertical.Count("locks", "Locks", 1, 0),
		vertical.Count("keys", "Key copies", 1, 0),
		vertical.Number("hours", "Repair hours", 1),
		vertical.Choice("quality", "Lock quality", "standard").From("quality"),
		vertical.Flag("broken-key-extraction", "Broken key extraction"),
		vertical.Flag("security-audit", "Security audit"),
	}
}

// Evaluate computes the locksmith range. Lock quality applies only to
// work on the locks themselves.
func (l *Locksmith) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	var r types.CostRange
	switch service := s.Choice("service"); service {
	case "other-repair":
		r = types.Zero().AddEach(t.Pair("hourly"), s.Number("hours"))
	case "key-duplication":
		r = types.Zero().AddEach(t.Pair("per-key"), s.Number("keys"))
	case "emergency-lockout":
		r = types.Zero().AddEach(t.Pair("service", service), s.Number("locks"))
	default:
		r = types.Zero().AddEach(t.Pair("service", service), s.Number("locks")).
			Times(t.Factor("quality", s.Choice("quality")))
	}

	r = vertical.AddOns(r, s, t, "broken-key-extraction", "security-audit")
	return r.Floor(t.Pair("minimum-fee"))
}

func (l *Locksmith) Hints(s vertical.State) vertical.Hints {
	switch s.Choice("service") {
	case "other-repair":
		return vertical.Hints{Hidden: []string{"locks", "keys", "quality"}}
	case "key-duplication":
		return vertical.Hints{Hidden: []string{"locks", "hours", "quality"}}
	case "emergency-lockout":
		return vertical.Hints{Hidden: []string{"keys", "hours", "quality"}}
	}
	return vertical.Hints{Hidden: []string{"keys", "hours"}}
}
