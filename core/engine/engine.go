// Package engine provides the API-primary quoting engine.
// CLI is a thin wrapper around this engine.
package engine

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/harleytans/reputigo-universal-calculator/core/pricing"
	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/core/vertical"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
	"github.com/harleytans/reputigo-universal-calculator/internal/logging"
)

// Engine is the primary API for quoting.
// All other interfaces (CLI, interactive session) are thin wrappers.
type Engine struct {
	// Required dependencies
	registry *vertical.Registry
	catalog  *pricing.Catalog

	// Configuration
	config Config

	logger *zap.Logger
}

// Config configures the engine
type Config struct {
	// DefaultVertical is selected by new sessions and used when a path
	// does not resolve
	DefaultVertical string

	// Strict validates choices against the pricing table before evaluation
	Strict bool
}

// Context is the explicit evaluation context of a recompute
type Context struct {
	ActiveID        string
	DiscountPercent decimal.Decimal
}

// NewEngine creates a new quoting engine
func NewEngine(registry *vertical.Registry, catalog *pricing.Catalog, config Config) *Engine {
	return &Engine{
		registry: registry,
		catalog:  catalog,
		config:   config,
		logger:   logging.With(zap.String("component", "engine")),
	}
}

// Registry returns the vertical registry
func (e *Engine) Registry() *vertical.Registry { return e.registry }

// Catalog returns the pricing catalog
func (e *Engine) Catalog() *pricing.Catalog { return e.catalog }

// Config returns the engine configuration
func (e *Engine) Config() Config { return e.config }

// EstimateRequest is the input to a one-shot estimate
type EstimateRequest struct {
	// REQUIRED: vertical id
	Vertical string

	// Optional: field values as presentation text; unset fields keep
	// their defaults
	Inputs map[string]string

	// Optional: 0..100, clamped
	DiscountPercent decimal.Decimal

	// Optional: reject choices the pricing table does not know
	Strict bool
}

// Quote is the output of a recompute
type Quote struct {
	// Vertical priced
	Vertical string
	Title    string

	// Inputs is the normalized state the quote was computed from
	Inputs vertical.State

	// Raw is the undiscounted range, floor included
	Raw types.CostRange

	// DiscountPercent is the clamped discount applied to Raw
	DiscountPercent decimal.Decimal

	// Final is what the customer sees
	Final types.CostRange

	// Hints for presentation, zero when the vertical has none
	Hints vertical.Hints

	// Digest identifies the pricing catalog used (for reproducibility)
	Digest string

	// Timing
	EstimatedAt time.Time
	Duration    time.Duration
}

// Estimate builds a state from the request inputs and prices it
func (e *Engine) Estimate(ctx context.Context, req *EstimateRequest) (*Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// REQUIRED: Validate inputs
	if req == nil || req.Vertical == "" {
		return nil, errors.Input("vertical is required")
	}

	ev, _, err := e.resolve(req.Vertical)
	if err != nil {
		return nil, err
	}

	fields := ev.Fields()
	state := vertical.Defaults(fields)
	names := make([]string, 0, len(req.Inputs))
	for name := range req.Inputs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		state, err = vertical.Assign(fields, state, name, req.Inputs[name])
		if err != nil {
			return nil, err
		}
	}

	return e.recompute(Context{ActiveID: req.Vertical, DiscountPercent: req.DiscountPercent}, state, req.Strict || e.config.Strict)
}

// Recompute prices state for the active vertical of c. It never mutates
// state and returns equal quotes for equal inputs.
func (e *Engine) Recompute(c Context, state vertical.State) (*Quote, error) {
	return e.recompute(c, state, e.config.Strict)
}

func (e *Engine) recompute(c Context, state vertical.State, strict bool) (*Quote, error) {
	start := time.Now()

	ev, table, err := e.resolve(c.ActiveID)
	if err != nil {
		return nil, err
	}

	b := newQuoteBuilder(ev, table)
	b.Normalize(state)
	if strict {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}
	b.Evaluate()
	b.Discount(c.DiscountPercent)

	q := b.Build()
	q.Digest = e.catalog.Digest()
	q.EstimatedAt = time.Now().UTC()
	q.Duration = time.Since(start)

	e.logger.Debug("recomputed",
		zap.String("vertical", q.Vertical),
		zap.Stringer("raw", q.Raw),
		zap.Stringer("final", q.Final),
		zap.String("discount", q.DiscountPercent.String()),
	)
	return q, nil
}

// Describe returns the evaluator and table of a vertical
func (e *Engine) Describe(id string) (vertical.Evaluator, *pricing.Table, error) {
	return e.resolve(id)
}

// ResolvePath maps a landing page path to a vertical id
func (e *Engine) ResolvePath(path string) string {
	return e.registry.ResolvePath(path, e.config.DefaultVertical)
}

func (e *Engine) resolve(id string) (vertical.Evaluator, *pricing.Table, error) {
	ev, ok := e.registry.Get(id)
	if !ok {
		return nil, nil, errors.NotFound("vertical", id)
	}
	table, ok := e.catalog.Table(id)
	if !ok {
		return nil, nil, errors.NotFound("pricing table", id)
	}
	return ev, table, nil
}

// clampCount logs when a count was raised to its floor
func clampCount(logger *zap.Logger, field string, before, after int64) {
	if before != after {
		logger.Debug("count clamped", zap.String("field", field), zap.Int64("requested", before), zap.Int64("value", after))
	}
}
