package pricing

import (
	"sort"
	"sync"

	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
)

// Catalog holds the pricing tables of all verticals, keyed by vertical id
type Catalog struct {
	mu     sync.RWMutex
	tables map[string]*Table
	frozen bool
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{tables: make(map[string]*Table)}
}

// Add registers a table. Adding a second table for the same vertical fails,
// as does adding to a frozen catalog.
func (c *Catalog) Add(t *Table) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return errors.Newf(errors.TypeInternal, "catalog is frozen, cannot add %s", t.ID())
	}

	if _, exists := c.tables[t.ID()]; exists {
		return errors.Newf(errors.TypeParsing, "duplicate pricing table: %s", t.ID())
	}
	c.tables[t.ID()] = t
	return nil
}

// Table returns the table for a vertical
func (c *Catalog) Table(id string) (*Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[id]
	return t, ok
}

// IDs returns the vertical ids in sorted order
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]string, 0, len(c.tables))
	for id := range c.tables {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of tables
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables)
}

// Merge returns a new catalog with every table of override replacing the
// table of the same vertical in c.
func (c *Catalog) Merge(override *Catalog) *Catalog {
	out := NewCatalog()

	c.mu.RLock()
	for id, t := range c.tables {
		out.tables[id] = t
	}
	c.mu.RUnlock()

	if override == nil {
		return out
	}
	override.mu.RLock()
	for id, t := range override.tables {
		out.tables[id] = t
	}
	override.mu.RUnlock()
	return out
}
