package property

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// junk surcharges: gate flag, count field, surcharge key
var junkSurcharges = [][3]string{
	{"mattress-surcharge", "mattresses", "mattress"},
	{"tire-surcharge", "tires", "tire"},
	{"heavy-item-surcharge", "heavy-items", "heavy-item"},
}

// JunkRemoval prices hauling by truck volume
type JunkRemoval struct{}

// NewJunkRemoval creates the junk removal evaluator
func NewJunkRemoval() *JunkRemoval {
	return &JunkRemoval{}
}

func (j *JunkRemoval) ID() string    { return "junk-removal" }
func (j *JunkRemoval) Title() string { return "Junk Removal" }

func (j *JunkRemoval) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Choice("volume", "Load volume", "min-charge").From("volume"),
		vertical.Choice("type", "Junk type", "general").From("type"),
		vertical.Choice("access", "Accessibility", "curbside").From("access"),
		vertical.Flag("mattress-surcharge", "Mattresses"),
		vertical.Count("mattresses", "Mattresses", 0, 0),
		vertical.Flag("tire-surcharge", "Tires"),
		vertical.Count("tires", "Tires", 0, 0),
		vertical.Flag("heavy-item-surcharge", "Heavy items"),
		vertical.Count("heavy-items", "Heavy items", 0, 0),
		vertical.Flag("demolition", "Light demolition"),
		vertical.Number("demolition-hours", "Demolition hours", 1),
		vertical.Flag("cleanup", "Clean-up after removal"),
	}
}

// Evaluate computes the junk removal range
func (j *JunkRemoval) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	r := types.RangeOf(t.Pair("volume", s.Choice("volume"))).
		Times(t.Factor("type", s.Choice("type"))).
		Times(t.Factor("access", s.Choice("access")))

	for _, sc := range junkSurcharges {
		r = r.AddEach(s.When(sc[0], t.Pair("surcharge", sc[2])), s.Number(sc[1]))
	}
	r = r.AddEach(s.When("demolition", t.Pair("demolition")), s.Number("demolition-hours"))
	r = vertical.AddOns(r, s, t, "cleanup")

	return r.Floor(t.Pair("minimum-fee"))
}

func (j *JunkRemoval) Hints(s vertical.State) vertical.Hints {
	var h vertical.Hints
	for _, sc := range junkSurcharges {
		if !s.Flag(sc[0]) {
			h.Hidden = append(h.Hidden, sc[1])
		}
	}
	if !s.Flag("demolition") {
		h.Hidden = append(h.Hidden, "demolition-hours")
	}
	return h
}
