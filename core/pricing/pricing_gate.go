package pricing

// Freeze closes the catalog to further tables. Pricing tables are built
// once at startup and read-only afterwards.
func (c *Catalog) Freeze() *Catalog {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frozen = true
	return c
}

// IsFrozen returns whether the catalog is frozen
func (c *Catalog) IsFrozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen
}

// MustTable returns the table for a vertical or panics. Only for callers
// that have already checked the vertical against the registry.
func (c *Catalog) MustTable(id string) *Table {
	t, ok := c.Table(id)
	if !ok {
		panic("INVARIANT VIOLATED: no pricing table for vertical " + id)
	}
	return t
}
