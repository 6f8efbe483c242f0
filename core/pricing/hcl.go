package pricing

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/zap"

	"github.com/harleytans/reputigo-universal-calculator/core/types"
	"github.com/harleytans/reputigo-universal-calculator/internal/errors"
	"github.com/harleytans/reputigo-universal-calculator/internal/logging"
)

var documentSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "vertical", LabelNames: []string{"id"}},
	},
}

var verticalSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "title"},
		{Name: "rates", Required: true},
	},
}

// Loader parses HCL pricing documents into tables
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a loader
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Parse reads every vertical block of one document
func (l *Loader) Parse(src []byte, filename string) ([]*Table, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("pricing document "+filename, diags)
	}

	content, diags := file.Body.Content(documentSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("pricing document "+filename, diags)
	}

	tables := make([]*Table, 0, len(content.Blocks))
	for _, block := range content.Blocks {
		t, err := parseVertical(block)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func parseVertical(block *hcl.Block) (*Table, error) {
	id := block.Labels[0]
	at := fmt.Sprintf("%s:%d", block.DefRange.Filename, block.DefRange.Start.Line)

	body, diags := block.Body.Content(verticalSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("vertical "+id, diags).WithContext("at", at)
	}

	title := id
	if attr, ok := body.Attributes["title"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, errors.Parsing("vertical "+id+" title", diags)
		}
		if v.Type() != cty.String || v.IsNull() {
			return nil, errors.Pricing("vertical "+id+" title must be a string", nil).WithContext("at", at)
		}
		title = v.AsString()
	}

	v, diags := body.Attributes["rates"].Expr.Value(nil)
	if diags.HasErrors() {
		return nil, errors.Parsing("vertical "+id+" rates", diags)
	}
	if !v.Type().IsObjectType() && !v.Type().IsMapType() {
		return nil, errors.Pricing("vertical "+id+" rates must be an object", nil).WithContext("at", at)
	}

	root, err := nodeFromValue(v, id)
	if err != nil {
		return nil, err
	}
	return NewTable(id, title, root), nil
}

// nodeFromValue converts an HCL value into a table node. An object with
// exactly the numeric attributes low and high becomes a pair, a number
// becomes a scalar and any other object becomes a branch.
func nodeFromValue(v cty.Value, where string) (*Node, error) {
	if v.IsNull() || !v.IsWhollyKnown() {
		return nil, errors.Newf(errors.TypePricing, "%s: value must be known and not null", where)
	}

	ty := v.Type()
	switch {
	case ty == cty.Number:
		d, err := numberToDecimal(v)
		if err != nil {
			return nil, errors.Pricing(where, err)
		}
		return ScalarNode(d), nil

	case ty.IsObjectType() || ty.IsMapType():
		if isPairValue(v) {
			low, err := numberToDecimal(v.GetAttr("low"))
			if err != nil {
				return nil, errors.Pricing(where+".low", err)
			}
			high, err := numberToDecimal(v.GetAttr("high"))
			if err != nil {
				return nil, errors.Pricing(where+".high", err)
			}
			return PairNode(types.Pair{Low: low, High: high}), nil
		}

		children := make(map[string]*Node)
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			key := k.AsString()
			n, err := nodeFromValue(ev, where+"."+key)
			if err != nil {
				return nil, err
			}
			children[key] = n
		}
		return Branch(children), nil
	}

	return nil, errors.Newf(errors.TypePricing, "%s: unsupported value of type %s", where, ty.FriendlyName())
}

func isPairValue(v cty.Value) bool {
	ty := v.Type()
	if !ty.IsObjectType() {
		return false
	}
	attrs := ty.AttributeTypes()
	if len(attrs) != 2 {
		return false
	}
	return attrs["low"] == cty.Number && attrs["high"] == cty.Number
}

func numberToDecimal(v cty.Value) (decimal.Decimal, error) {
	if v.IsNull() || v.Type() != cty.Number {
		return decimal.Zero, fmt.Errorf("expected a number")
	}
	return decimal.NewFromString(v.AsBigFloat().Text('f', -1))
}

// LoadFS parses every file of fsys matching pattern into one catalog.
// Files are read in name order.
func (l *Loader) LoadFS(fsys fs.FS, pattern string) (*Catalog, error) {
	names, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, errors.Internal("glob pricing documents", err)
	}
	sort.Strings(names)

	catalog := NewCatalog()
	for _, name := range names {
		src, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, errors.Wrapf(errors.TypeInternal, err, "read pricing document %s", name)
		}
		if err := l.addAll(catalog, src, path.Base(name)); err != nil {
			return nil, err
		}
	}

	logging.Debug("pricing catalog loaded",
		zap.Int("documents", len(names)),
		zap.Int("verticals", catalog.Len()))
	return catalog, nil
}

// LoadFile parses a single document from disk
func (l *Loader) LoadFile(filename string) (*Catalog, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "read pricing document %s", filename).WithContext("path", filename)
	}

	catalog := NewCatalog()
	if err := l.addAll(catalog, src, filename); err != nil {
		return nil, err
	}

	logging.Info("pricing overrides loaded",
		zap.String("path", filename),
		zap.Int("verticals", catalog.Len()))
	return catalog, nil
}

func (l *Loader) addAll(catalog *Catalog, src []byte, filename string) error {
	tables, err := l.Parse(src, filename)
	if err != nil {
		return err
	}
	for _, t := range tables {
		if err := catalog.Add(t); err != nil {
			return err
		}
	}
	return nil
}
