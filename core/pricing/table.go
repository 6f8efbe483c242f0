// Package pricing - Per-vertical pricing tables and safe keyed lookup
// Tables are built once from the embedded HCL documents and never mutated.
// Lookups on a missing key report absence instead of failing.
package pricing

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/harleytans/reputigo-universal-calculator/core/types"
)

// Node is one entry in a pricing table: a {low, high} pair, a scalar,
// or a branch keyed by option value.
type Node struct {
	pair     *types.Pair
	scalar   *decimal.Decimal
	children map[string]*Node
}

// PairNode creates a leaf holding a {low, high} pair
func PairNode(p types.Pair) *Node {
	return &Node{pair: &p}
}

// ScalarNode creates a leaf holding a plain number
func ScalarNode(v decimal.Decimal) *Node {
	return &Node{scalar: &v}
}

// Branch creates an inner node
func Branch(children map[string]*Node) *Node {
	if children == nil {
		children = make(map[string]*Node)
	}
	return &Node{children: children}
}

// IsPair reports whether the node is a pair leaf
func (n *Node) IsPair() bool { return n != nil && n.pair != nil }

// IsScalar reports whether the node is a scalar leaf
func (n *Node) IsScalar() bool { return n != nil && n.scalar != nil }

// IsBranch reports whether the node has children
func (n *Node) IsBranch() bool { return n != nil && n.children != nil }

func (n *Node) child(key string) *Node {
	if n == nil || n.children == nil {
		return nil
	}
	return n.children[key]
}

// Table is the immutable pricing table of one vertical
type Table struct {
	id    string
	title string
	root  *Node
}

// NewTable creates a table. A nil root is treated as an empty branch.
func NewTable(id, title string, root *Node) *Table {
	if root == nil {
		root = Branch(nil)
	}
	return &Table{id: id, title: title, root: root}
}

// ID returns the vertical id the table belongs to
func (t *Table) ID() string {
	if t == nil {
		return ""
	}
	return t.id
}

// Title returns the display title
func (t *Table) Title() string {
	if t == nil {
		return ""
	}
	return t.title
}

func (t *Table) node(keys ...string) *Node {
	if t == nil {
		return nil
	}
	n := t.root
	for _, k := range keys {
		n = n.child(k)
		if n == nil {
			return nil
		}
	}
	return n
}

// Lookup returns the pair stored at keys. ok is false when any key along
// the path is absent or the entry is not a pair.
func (t *Table) Lookup(keys ...string) (types.Pair, bool) {
	n := t.node(keys...)
	if !n.IsPair() {
		return types.Pair{}, false
	}
	return *n.pair, true
}

// Has reports whether any entry exists at keys
func (t *Table) Has(keys ...string) bool {
	return t.node(keys...) != nil
}

// Pair returns the pair at keys, or a zero pair when absent
func (t *Table) Pair(keys ...string) types.Pair {
	p, _ := t.Lookup(keys...)
	return p
}

// Factor returns the multiplier at keys, or the identity when absent
func (t *Table) Factor(keys ...string) types.Pair {
	if p, ok := t.Lookup(keys...); ok {
		return p
	}
	return types.Identity
}

// Scalar returns the number at keys, or zero when absent
func (t *Table) Scalar(keys ...string) decimal.Decimal {
	n := t.node(keys...)
	if !n.IsScalar() {
		return decimal.Zero
	}
	return *n.scalar
}

// Keys lists the option keys below keys in sorted order
func (t *Table) Keys(keys ...string) []string {
	n := t.node(keys...)
	if !n.IsBranch() {
		return nil
	}
	out := make([]string, 0, len(n.children))
	for k := range n.children {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
