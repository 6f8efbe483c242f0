package engine

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/harleytans/reputigo-universal-calculator/core/discount"
	"github.com/harleytans/reputigo-universal-calculator/core/units"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
	"github.com/harleytans/reputigo-universal-calculator/internal/logging"
)

// Session is one user's calculator: a state per vertical, the active
// vertical, and a discount shared by all of them.
// A Session is not safe for concurrent use.
type Session struct {
	id       string
	engine   *Engine
	states   map[string]vertical.State
	active   string
	discount decimal.Decimal
	logger   *zap.Logger
}

// NewSession creates a session with the engine's default vertical active
func NewSession(e *Engine) *Session {
	id := uuid.New().String()
	return &Session{
		id:     id,
		engine: e,
		states: make(map[string]vertical.State),
		active: e.config.DefaultVertical,
		logger: logging.ForSession(id),
	}
}

// ID returns the session id
func (s *Session) ID() string { return s.id }

// Active returns the active vertical id
func (s *Session) Active() string { return s.active }

// Discount returns the clamped discount percentage
func (s *Session) Discount() decimal.Decimal { return s.discount }

// Context returns the evaluation context of the next recompute
func (s *Session) Context() Context {
	return Context{ActiveID: s.active, DiscountPercent: s.discount}
}

// State returns a copy of the state entered for vertical id
func (s *Session) State(id string) (vertical.State, bool) {
	st, ok := s.states[id]
	if !ok {
		return vertical.NewState(), false
	}
	return st.Clone(), true
}

// Select makes id the active vertical. A state entered earlier for id is
// kept; a vertical seen for the first time starts from its defaults.
func (s *Session) Select(id string) (*Quote, error) {
	ev, ok := s.engine.registry.Get(id)
	if !ok {
		return nil, errors.NotFound("vertical", id)
	}
	if _, seen := s.states[id]; !seen {
		s.states[id] = vertical.Normalize(ev.Fields(), vertical.Defaults(ev.Fields()))
	}
	s.active = id
	s.logger.Debug("vertical selected", zap.String("vertical", id))
	return s.Recompute()
}

// Set assigns a field of the active vertical from presentation text.
// Flipping the vertical's area flag converts every area field to the new
// unit.
func (s *Session) Set(field, raw string) (*Quote, error) {
	ev, current, err := s.current()
	if err != nil {
		return nil, err
	}

	next, err := vertical.Assign(ev.Fields(), current, field, raw)
	if err != nil {
		return nil, err
	}

	if toggler, ok := ev.(vertical.AreaToggler); ok && toggler.AreaFlag() == field {
		was, now := current.Flag(field), next.Flag(field)
		if was != now {
			next = convertAreas(ev.Fields(), next, units.ForFlag(was), units.ForFlag(now))
			s.logger.Debug("area unit toggled",
				zap.String("vertical", ev.ID()),
				zap.Stringer("from", units.ForFlag(was)),
				zap.Stringer("to", units.ForFlag(now)),
			)
		}
	}

	s.states[ev.ID()] = vertical.Normalize(ev.Fields(), next)
	return s.Recompute()
}

// Adjust adds delta to a count field of the active vertical
func (s *Session) Adjust(field string, delta int64) (*Quote, error) {
	ev, current, err := s.current()
	if err != nil {
		return nil, err
	}

	next, err := vertical.AdjustCount(ev.Fields(), current, field, delta)
	if err != nil {
		return nil, err
	}
	clampCount(s.logger, field, current.Int(field)+delta, next.Int(field))

	s.states[ev.ID()] = next
	return s.Recompute()
}

// SetDiscount parses a percentage typed by the user and recomputes.
// Non-numeric input is 0; values are clamped to 0..100.
func (s *Session) SetDiscount(raw string) (*Quote, error) {
	s.discount = discount.Parse(raw)
	return s.Recompute()
}

// Recompute prices the active vertical's current state
func (s *Session) Recompute() (*Quote, error) {
	_, current, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.engine.Recompute(s.Context(), current)
}

// current returns the active evaluator and its state, creating the state
// on first use
func (s *Session) current() (vertical.Evaluator, vertical.State, error) {
	ev, ok := s.engine.registry.Get(s.active)
	if !ok {
		return nil, vertical.NewState(), errors.NotFound("vertical", s.active)
	}
	st, ok := s.states[s.active]
	if !ok {
		st = vertical.Normalize(ev.Fields(), vertical.Defaults(ev.Fields()))
		s.states[s.active] = st
	}
	return ev, st, nil
}

func convertAreas(fields []vertical.Field, st vertical.State, from, to units.Unit) vertical.State {
	out := st.Clone()
	for _, f := range fields {
		if f.Kind == vertical.KindArea {
			out.SetNumber(f.Name, units.Convert(st.Number(f.Name), from, to))
		}
	}
	return out
}
