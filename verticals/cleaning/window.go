package cleaning

import (
	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

// Window prices window cleaning by pane counts
type Window struct{}

// NewWindow creates the window cleaning evaluator
func NewWindow() *Window {
	return &Window{}
}

func (w *Window) ID() string    { return "window-cleaning" }
func (w *Window) Title() string { return "Window Cleaning" }

func (w *Window) Fields() []vertical.Field {
	return []vertical.Field{
		vertical.Count("standard-windows", "Standard windows", 0, 0),
		vertical.Count("french-panes", "French panes", 0, 0),
		vertical.Count("sliding-doors", "Sliding doors", 0, 0),
		vertical.Choice("story", "Story height", "1").From("story"),
		vertical.Choice("service", "Cleaning type", "interior-exterior").From("service"),
		vertical.Flag("screen-cleaning", "Screen cleaning"),
		vertical.Count("screens", "Screens", 0, 0),
		vertical.Flag("track-cleaning", "Track cleaning"),
		vertical.Flag("hard-water", "Hard water stain removal"),
		vertical.Count("hard-water-windows", "Windows with hard water stains", 0, 0),
		vertical.Flag("skylight-cleaning", "Skylight cleaning"),
		vertical.Count("skylights", "Skylights", 0, 0),
	}
}

// Evaluate computes the window cleaning range. Add-ons are charged on top
// of the scaled pane total.
func (w *Window) Evaluate(s vertical.State, t *pricing.Table) types.CostRange {
	r := types.Zero().
		AddEach(t.Pair("pane", "standard"), s.Number("standard-windows")).
		AddEach(t.Pair("pane", "french"), s.Number("french-panes")).
		AddEach(t.Pair("pane", "sliding-door"), s.Number("sliding-doors"))

	r = r.Times(t.Factor("story", s.Choice("story"))).
		Times(t.Factor("service", s.Choice("service")))

	r = r.AddEach(s.When("screen-cleaning", t.Pair("per-screen")), s.Number("screens"))
	r = r.AddEach(s.When("hard-water", t.Pair("per-hard-water")), s.Number("hard-water-windows"))
	r = r.AddEach(s.When("skylight-cleaning", t.Pair("per-skylight")), s.Number("skylights"))
	r = vertical.AddOns(r, s, t, "track-cleaning")

	return r.Floor(t.Pair("minimum-fee"))
}

func (w *Window) Hints(s vertical.State) vertical.Hints {
	var hidden []string
	if !s.Flag("screen-cleaning") {
		hidden = append(hidden, "screens")
	}
	if !s.Flag("hard-water") {
		hidden = append(hidden, "hard-water-windows")
	}
	if !s.Flag("skylight-cleaning") {
		hidden = append(hidden, "skylights")
	}
	return vertical.Hints{Hidden: hidden}
}
