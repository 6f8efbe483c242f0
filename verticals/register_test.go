package verticals

import (
	"testing"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
)

func TestEveryVerticalHasATable(t *testing.T) {
	catalog, err := pricing.Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != catalog.Len() {
		t.Errorf("expected %d verticals, got %d", catalog.Len(), r.Len())
	}
	for _, id := range r.IDs() {
		if _, ok := catalog.Table(id); !ok {
			t.Errorf("vertical %s has no pricing table", id)
		}
	}
	if _, ok := r.Get(DefaultVertical); !ok {
		t.Errorf("default vertical %s is not registered", DefaultVertical)
	}
}

func TestRegisterAllTwiceFails(t *testing.T) {
	r := vertical.NewRegistry()
	if err := RegisterAll(r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := RegisterAll(r); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}

func TestDefaultsAreValidSelections(t *testing.T) {
	catalog, _ := pricing.Default()

	for _, e := range All() {
		t.Run(e.ID(), func(t *testing.T) {
			s := vertical.Defaults(e.Fields())
			if err := vertical.Validate(e, s, catalog.MustTable(e.ID())); err != nil {
				t.Error(err)
			}
		})
	}
}

// Every option of every choice, with add-ons off and on, must give a range
// whose low bound does not exceed its high bound.
func TestRangesAreWellFormed(t *testing.T) {
	catalog, _ := pricing.Default()

	for _, e := range All() {
		table := catalog.MustTable(e.ID())
		fields := e.Fields()

		for _, withFlags := range []bool{false, true} {
			base := vertical.Defaults(fields)
			for _, f := range fields {
				if f.Kind == vertical.KindFlag {
					base.SetFlag(f.Name, withFlags)
				}
			}

			for _, f := range fields {
				if f.Kind != vertical.KindChoice {
					continue
				}
				for _, opt := range vertical.Options(f, table) {
					s := base.Clone()
					s.SetChoice(f.Name, opt)
					s = vertical.Normalize(fields, s)

					got := e.Evaluate(s, table)
					if !got.WellFormed() {
						t.Errorf("%s %s=%s flags=%v: inverted range %s", e.ID(), f.Name, opt, withFlags, got)
					}
				}
			}
		}
	}
}

func TestEvaluateDoesNotMutateState(t *testing.T) {
	catalog, _ := pricing.Default()

	for _, e := range All() {
		s := vertical.Normalize(e.Fields(), vertical.Defaults(e.Fields()))
		before := s.Clone()

		first := e.Evaluate(s, catalog.MustTable(e.ID()))
		second := e.Evaluate(s, catalog.MustTable(e.ID()))

		if !s.Equal(before) {
			t.Errorf("%s: evaluate changed its input", e.ID())
		}
		if !first.Equal(second) {
			t.Errorf("%s: evaluate is not repeatable: %s then %s", e.ID(), first, second)
		}
	}
}

func TestSupportedVerticals(t *testing.T) {
	ids := SupportedVerticals()
	if len(ids) != 32 {
		t.Errorf("expected 32 verticals, got %d", len(ids))
	}
	seen := make(map[string]bool)
	for _, id := range ids {
		if seen[id] {
			t.Errorf("duplicate vertical %s", id)
		}
		seen[id] = true
	}
}
