package engine_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/engine"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
)

func TestSessionStartsOnDefaultVertical(t *testing.T) {
	s := engine.NewSession(newEngine(t, false))

	if s.ID() == "" {
		t.Error("expected session id")
	}
	if s.Active() != "cleaning" {
		t.Errorf("expected cleaning, got %s", s.Active())
	}

	q, err := s.Recompute()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectBounds(t, "defaults", q.Final.Low, q.Final.High, "125", "165")
}

func TestSessionStatePersistsAcrossSwitches(t *testing.T) {
	s := engine.NewSession(newEngine(t, false))

	if _, err := s.Set("visit", "monthly"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Set("bedrooms", "3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Set("bathrooms", "2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Select("junk-removal"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.Set("volume", "half"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, err := s.Select("cleaning")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectBounds(t, "cleaning after switch", q.Final.Low, q.Final.High, "135", "180")

	junk, ok := s.State("junk-removal")
	if !ok {
		t.Fatal("expected junk-removal state to be kept")
	}
	if junk.Choice("volume") != "half" {
		t.Errorf("expected half, got %q", junk.Choice("volume"))
	}
	if junk.Has("bedrooms") {
		t.Error("expected states not to be shared between verticals")
	}

	if _, ok := s.State("hvac"); ok {
		t.Error("expected no state for an unvisited vertical")
	}
}

func TestSessionDiscount(t *testing.T) {
	s := engine.NewSession(newEngine(t, false))
	_, _ = s.Set("visit", "monthly")
	_, _ = s.Set("bedrooms", "3")
	_, _ = s.Set("bathrooms", "2")

	tests := []struct {
		raw       string
		expected  string
		low, high string
	}{
		{"10", "10", "121.5", "162"},
		{"10%", "10", "121.5", "162"},
		{"abc", "0", "135", "180"},
		{"-5", "0", "135", "180"},
		{"150", "100", "0", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q, err := s.SetDiscount(tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !s.Discount().Equal(decimal.RequireFromString(tt.expected)) {
				t.Errorf("expected discount %s, got %s", tt.expected, s.Discount())
			}
			expectBounds(t, "final", q.Final.Low, q.Final.High, tt.low, tt.high)
		})
	}
}

func TestSessionDiscountFollowsSwitch(t *testing.T) {
	s := engine.NewSession(newEngine(t, false))
	if _, err := s.SetDiscount("50"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	q, err := s.Select("junk-removal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectBounds(t, "junk minimum half off", q.Final.Low, q.Final.High, "37.5", "75")
}

func TestSessionAdjust(t *testing.T) {
	s := engine.NewSession(newEngine(t, false))

	q, err := s.Adjust("bedrooms", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Inputs.Int("bedrooms") != 3 {
		t.Errorf("expected 3 bedrooms, got %d", q.Inputs.Int("bedrooms"))
	}

	q, _ = s.Adjust("bedrooms", -10)
	if q.Inputs.Int("bedrooms") != 1 {
		t.Errorf("expected bedrooms to stop at 1, got %d", q.Inputs.Int("bedrooms"))
	}

	if _, err := s.Adjust("visit", 1); !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("expected NOT_SUPPORTED adjusting a choice, got %v", err)
	}
}

func TestSessionErrors(t *testing.T) {
	s := engine.NewSession(newEngine(t, false))

	if _, err := s.Select("dry-cleaning"); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected NOT_FOUND, got %v", err)
	}
	if s.Active() != "cleaning" {
		t.Errorf("expected failed select to keep cleaning active, got %s", s.Active())
	}
	if _, err := s.Set("garage", "1"); !errors.IsType(err, errors.TypeNotSupported) {
		t.Errorf("expected NOT_SUPPORTED for unknown field, got %v", err)
	}
}

func TestSessionAreaToggleConvertsAreas(t *testing.T) {
	s := engine.NewSession(newEngine(t, false))
	if _, err := s.Select("lawn-care"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _ = s.Set("mowing", "on")

	q, err := s.Set("mowing-area", "10000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectBounds(t, "sqft", q.Final.Low, q.Final.High, "100", "300")

	q, err = s.Set("acres", "on")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.Inputs.Number("mowing-area").Equal(decimal.RequireFromString("0.23")) {
		t.Errorf("expected 0.23 acres, got %s", q.Inputs.Number("mowing-area"))
	}
	if q.Hints.AreaUnit != "acres" {
		t.Errorf("expected acres hint, got %q", q.Hints.AreaUnit)
	}
	expectBounds(t, "acres", q.Final.Low, q.Final.High, "23", "46")

	// setting the flag to its current value converts nothing
	q, _ = s.Set("acres", "on")
	if !q.Inputs.Number("mowing-area").Equal(decimal.RequireFromString("0.23")) {
		t.Errorf("expected area unchanged, got %s", q.Inputs.Number("mowing-area"))
	}

	q, _ = s.Set("acres", "off")
	if !q.Inputs.Number("mowing-area").Equal(decimal.NewFromInt(10019)) {
		t.Errorf("expected 10019 sqft, got %s", q.Inputs.Number("mowing-area"))
	}
}
