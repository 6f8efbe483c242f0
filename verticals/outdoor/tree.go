package outdoor

import (
	"strings"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Tree prices trimming, removal and stump grinding
type Tree struct{}

// NewTree creates the tree services evaluator
func NewTree() *Tree {
	return &Tree{}
}

func (tr *Tree) ID() string    { return "tree-services" }
func (tr *Tree) Title() string { return "Tree Services" }

func (tr *Tree) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("service", "Service", "trimming").From("service"),
		vertical.Count("trees", "Trees or stumps", 1, 0),
		vertical.Choice("access", "Accessibility", "easy").From("access"),
		vertical.Choice("condition", "Tree condition", "healthy").From("condition"),
		vertical.Flag("debris-removal", "Debris removal"),
		vertical.Flag("chipping", "Limbing and chipping"),
		vertical.Flag("permit", "Permit assistance"),
	}
}

// Evaluate computes the tree service range. Removals and stump grinding
// are charged per tree; trimming and emergency work are per job.
func (tr *Tree) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	service := s.Choice("service")

	base := t.Pair("service", service)
	if strings.HasPrefix(service, "removal-") || service == "stump-grinding" {
		base = base.Scale(s.Number("trees"))
	}

	r := types.RangeOf(base).
		Times(t.Factor("access", s.Choice("access"))).
		Times(t.Factor("condition", s.Choice("condition")))

	r = vertical.AddOns(r, s, t, "debris-removal", "chipping", "permit")
	return r.Floor(t.Pair("minimum-fee"))
}
