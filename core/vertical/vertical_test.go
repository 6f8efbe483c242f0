package vertical

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
)

// walker is a small two-mode vertical used across these tests
type walker struct{ id string }

func (w walker) ID() string    { return w.id }
func (w walker) Title() string { return "Walker" }

func (w walker) Fields() []Field {
	return []Field{
		Choice("length", "Walk length", "30").From("walk"),
		Choice("plan", "Plan", "single", "single", "weekly"),
		Count("dogs", "Dogs", 1, 1),
		Count("treats", "Treats", 0, 0),
		Number("hours", "Hours", 2),
		Area("yard", "Yard", 1000),
		Flag("weekend", "Weekend"),
		Flag("leash", "Leash included").On(),
	}
}

func (w walker) Evaluate(s State, t *pricing.Table) types.CostRange {
	r := types.RangeOf(t.Pair("walk", s.Choice("length"))).
		AddEach(t.Pair("extra-dog"), s.Number("dogs").Sub(decimal.NewFromInt(1)))
	return AddOns(r, s, t, "weekend").Floor(t.Pair("minimum-fee"))
}

func walkerTable() *pricing.Table {
	return pricing.NewTable("walker", "Walker", pricing.Branch(map[string]*pricing.Node{
		"walk": pricing.Branch(map[string]*pricing.Node{
			"30": pricing.PairNode(types.NewPair(20, 35)),
			"60": pricing.PairNode(types.NewPair(30, 55)),
		}),
		"extra-dog": pricing.PairNode(types.NewPair(5, 10)),
		"add-ons": pricing.Branch(map[string]*pricing.Node{
			"weekend": pricing.PairNode(types.NewPair(5, 15)),
		}),
		"minimum-fee": pricing.PairNode(types.NewPair(25, 40)),
	}))
}

func TestDefaults(t *testing.T) {
	s := Defaults(walker{}.Fields())

	if s.Choice("length") != "30" {
		t.Errorf("expected length 30, got %q", s.Choice("length"))
	}
	if s.Int("dogs") != 1 {
		t.Errorf("expected 1 dog, got %d", s.Int("dogs"))
	}
	if s.Flag("weekend") {
		t.Error("expected weekend off")
	}
	if !s.Flag("leash") {
		t.Error("expected leash on")
	}
}

func TestNormalize(t *testing.T) {
	fields := walker{}.Fields()

	s := NewState()
	s.SetNumber("dogs", decimal.RequireFromString("-3.7"))
	s.SetNumber("treats", decimal.RequireFromString("2.9"))
	s.SetNumber("hours", decimal.NewFromInt(-2))
	s.SetNumber("yard", decimal.RequireFromString("1500.5"))
	s.SetChoice("length", "")

	n := Normalize(fields, s)

	tests := []struct {
		name     string
		got      decimal.Decimal
		expected string
	}{
		{"count raised to floor", n.Number("dogs"), "1"},
		{"count truncated", n.Number("treats"), "2"},
		{"number clamped at zero", n.Number("hours"), "0"},
		{"area keeps fraction", n.Number("yard"), "1500.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected %s, got %s", tt.expected, tt.got)
			}
		})
	}

	if n.Choice("length") != "30" {
		t.Errorf("expected empty choice to take default, got %q", n.Choice("length"))
	}
	if n.Choice("plan") != "single" {
		t.Errorf("expected missing choice to take default, got %q", n.Choice("plan"))
	}
	if !n.Flag("leash") {
		t.Error("expected missing flag to take default")
	}

	if !Normalize(fields, n).Equal(n) {
		t.Error("expected normalize to reach a fixed point")
	}
	if s.Number("dogs").Equal(n.Number("dogs")) {
		t.Error("expected normalize to leave its input untouched")
	}
}

func TestAssign(t *testing.T) {
	fields := walker{}.Fields()
	s := Defaults(fields)

	s, err := Assign(fields, s, "hours", "abc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Number("hours").IsZero() {
		t.Errorf("expected unparseable number to become 0, got %s", s.Number("hours"))
	}

	s, _ = Assign(fields, s, "weekend", "yes")
	if !s.Flag("weekend") {
		t.Error("expected weekend on")
	}
	s, _ = Assign(fields, s, "length", " 60 ")
	if s.Choice("length") != "60" {
		t.Errorf("expected trimmed choice, got %q", s.Choice("length"))
	}

	_, err = Assign(fields, s, "cats", "2")
	if !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("expected NOT_SUPPORTED for unknown field, got %v", err)
	}
}

func TestAdjustCount(t *testing.T) {
	fields := walker{}.Fields()

	tests := []struct {
		name     string
		field    string
		start    int64
		delta    int64
		expected int64
	}{
		{"increment", "dogs", 1, 1, 2},
		{"decrement to floor", "dogs", 2, -1, 1},
		{"rapid decrement stops at one", "dogs", 1, -5, 1},
		{"zero floor", "treats", 1, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults(fields)
			s.SetNumber(tt.field, decimal.NewFromInt(tt.start))

			got, err := AdjustCount(fields, s, tt.field, tt.delta)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Int(tt.field) != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got.Int(tt.field))
			}
		})
	}

	if _, err := AdjustCount(fields, Defaults(fields), "hours", 1); !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("expected NOT_SUPPORTED for a non-count field, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	w := walker{id: "walker"}
	table := walkerTable()

	s := Defaults(w.Fields())
	if err := Validate(w, s, table); err != nil {
		t.Fatalf("unexpected error for defaults: %v", err)
	}

	s.SetChoice("length", "90")
	s.SetChoice("plan", "monthly")
	err := Validate(w, s, table)
	if !errors.IsType(err, errors.TypeInput) {
		t.Fatalf("expected INPUT_ERROR, got %v", err)
	}
	if !strings.Contains(err.Error(), `length="90"`) || !strings.Contains(err.Error(), `plan="monthly"`) {
		t.Errorf("expected both bad selections reported, got %v", err)
	}
}

func TestMissingSelectionContributesZero(t *testing.T) {
	w := walker{id: "walker"}
	table := walkerTable()

	s := Defaults(w.Fields())
	s.SetChoice("length", "90")

	// the base is missing, so only the minimum fee remains
	got := w.Evaluate(s, table)
	if !got.Equal(types.NewRange(25, 40)) {
		t.Errorf("expected 25 - 40, got %s", got)
	}
}

func TestOptions(t *testing.T) {
	fields := walker{}.Fields()
	table := walkerTable()

	length, _ := Lookup(fields, "length")
	if opts := Options(length, table); len(opts) != 2 || opts[0] != "30" || opts[1] != "60" {
		t.Errorf("expected table-backed options [30 60], got %v", opts)
	}
	plan, _ := Lookup(fields, "plan")
	if opts := Options(plan, table); len(opts) != 2 {
		t.Errorf("expected fixed options, got %v", opts)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	if err := r.Register(walker{id: "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(walker{id: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(walker{id: "a"}); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error for duplicate registration, got %v", err)
	}
	if err := r.Register(walker{}); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error for empty id, got %v", err)
	}

	if r.Len() != 2 {
		t.Errorf("expected 2 verticals, got %d", r.Len())
	}
	if ids := r.IDs(); ids[0] != "a" || ids[1] != "b" {
		t.Errorf("expected sorted ids, got %v", ids)
	}
	if _, ok := r.Get("c"); ok {
		t.Error("expected unknown id to be absent")
	}
}

func TestResolvePath(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"cleaning", "hvac", "professional", "lawn-care"} {
		_ = r.Register(walker{id: id})
	}

	tests := []struct {
		path     string
		expected string
	}{
		{"/industry/hvac", "hvac"},
		{"/industry/hvac-services", "hvac"},
		{"/industry/professional-services/", "professional"},
		{"/Industry/Lawn?ref=ad", "lawn-care"},
		{"/industry/hvac/?utm=mail", "hvac"},
		{"/industry/hvac-services/#quote", "hvac"},
		{"/industry/unknown", "cleaning"},
		{"/industry/", "cleaning"},
		{"/about", "cleaning"},
		{"", "cleaning"},
		{"/industry/pool", "cleaning"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := r.ResolvePath(tt.path, "cleaning"); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestStateEntries(t *testing.T) {
	s := NewState()
	s.SetNumber("b", decimal.NewFromInt(2))
	s.SetChoice("a", "x")
	s.SetFlag("c", true)

	entries := s.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0] != [2]string{"a", "x"} || entries[1] != [2]string{"b", "2"} || entries[2] != [2]string{"c", "on"} {
		t.Errorf("unexpected entries %v", entries)
	}
}
