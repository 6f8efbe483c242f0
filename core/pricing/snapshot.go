package pricing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/harleytans/reputigo-universal-calculator/core/determinism"
)

// Entry is one leaf of a table, addressed by its dotted key path
type Entry struct {
	Path  string
	Value string
}

// Entries flattens the table into its leaves, walking keys in sorted order
func (t *Table) Entries() []Entry {
	var out []Entry
	if t == nil {
		return out
	}
	var walk func(prefix []string, n *Node)
	walk = func(prefix []string, n *Node) {
		switch {
		case n.IsPair():
			out = append(out, Entry{Path: strings.Join(prefix, "."), Value: n.pair.String()})
		case n.IsScalar():
			out = append(out, Entry{Path: strings.Join(prefix, "."), Value: n.scalar.String()})
		case n.IsBranch():
			determinism.RangeMapSorted(n.children, func(k string, child *Node) bool {
				walk(append(append([]string(nil), prefix...), k), child)
				return true
			})
		}
	}
	walk(nil, t.root)
	return out
}

// Digest returns a short content hash of every table in the catalog.
// Two catalogs with the same rates have the same digest.
func (c *Catalog) Digest() string {
	h := sha256.New()
	for _, id := range c.IDs() {
		t, _ := c.Table(id)
		h.Write([]byte(id))
		h.Write([]byte{0})
		for _, e := range t.Entries() {
			h.Write([]byte(e.Path))
			h.Write([]byte{'='})
			h.Write([]byte(e.Value))
			h.Write([]byte{'\n'})
		}
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
