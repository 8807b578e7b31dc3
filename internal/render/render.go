// Package render turns a receipt into output text by walking it bottom-up
// through a bundle of per-node rendering functions. A writer supplies any
// subset of the eight functions; omitted slots fall back to built-in defaults,
// so a writer only has to describe what makes its format different.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/costcocr/costcocr/internal/receipt"
)

// Funcs is a writer configuration: one rendering function per structural node
// of a receipt. A nil slot means "use the default". Overrides are independent;
// supplying Item does not require supplying Name, Cost, Discount or Tax.
type Funcs struct {
	// Receipt composes the final output from the rendered item-list body and
	// the receipt metadata. The default emits one "# Store:", "# Date:" or
	// "# Location:" line per present meta key, in that order, followed by the
	// body, newline-joined.
	Receipt func(body string, meta receipt.Meta) (string, error)

	// ItemList post-processes the joined item strings. Default: identity.
	ItemList func(items string) (string, error)

	// ItemListSep returns the separator inserted between rendered items
	// before joining. Default: "\n".
	ItemListSep func() string

	// Item combines the four already-rendered field strings into one item
	// string. Default: join with ", ".
	Item func(name, cost, discount, tax string) (string, error)

	// Name renders the raw item name. Default: identity.
	Name func(name string) (string, error)

	// Cost renders the raw cost. Default: Number.
	Cost func(cost float64) (string, error)

	// Discount renders the raw discount. Default: Number.
	Discount func(discount float64) (string, error)

	// Tax renders the raw tax. Default: Decimal.
	Tax func(tax float64) (string, error)
}

// Render walks r bottom-up and produces the output string: each item's fields
// are rendered individually, combined by Item, joined in input order with
// ItemListSep, passed through ItemList, and finally composed with the
// metadata by Receipt.
//
// Rendering is pure. A failing writer function aborts the render and its
// error is returned to the caller unmodified, with no retry and no partial
// output.
func Render(fs Funcs, r receipt.Receipt) (string, error) {
	fs = fs.withDefaults()

	rendered := make([]string, len(r.Items))
	for i, item := range r.Items {
		name, err := fs.Name(item.Name)
		if err != nil {
			return "", err
		}
		cost, err := fs.Cost(item.Cost)
		if err != nil {
			return "", err
		}
		discount, err := fs.Discount(item.Discount)
		if err != nil {
			return "", err
		}
		tax, err := fs.Tax(item.Tax)
		if err != nil {
			return "", err
		}
		rendered[i], err = fs.Item(name, cost, discount, tax)
		if err != nil {
			return "", err
		}
	}

	body, err := fs.ItemList(strings.Join(rendered, fs.ItemListSep()))
	if err != nil {
		return "", err
	}

	return fs.Receipt(body, r.Meta)
}

// withDefaults returns a copy of fs with every nil slot resolved to its
// built-in default.
func (fs Funcs) withDefaults() Funcs {
	if fs.Receipt == nil {
		fs.Receipt = defaultReceipt
	}
	if fs.ItemList == nil {
		fs.ItemList = identity
	}
	if fs.ItemListSep == nil {
		fs.ItemListSep = func() string { return "\n" }
	}
	if fs.Item == nil {
		fs.Item = defaultItem
	}
	if fs.Name == nil {
		fs.Name = identity
	}
	if fs.Cost == nil {
		fs.Cost = number
	}
	if fs.Discount == nil {
		fs.Discount = number
	}
	if fs.Tax == nil {
		fs.Tax = decimal
	}
	return fs
}

func defaultReceipt(body string, meta receipt.Meta) (string, error) {
	var lines []string
	if v, ok := meta[receipt.MetaStore]; ok {
		lines = append(lines, "# Store: "+v)
	}
	if v, ok := meta[receipt.MetaDate]; ok {
		lines = append(lines, "# Date: "+v)
	}
	if v, ok := meta[receipt.MetaLocation]; ok {
		lines = append(lines, "# Location: "+v)
	}
	lines = append(lines, body)
	return strings.Join(lines, "\n"), nil
}

func defaultItem(name, cost, discount, tax string) (string, error) {
	return strings.Join([]string{name, cost, discount, tax}, ", "), nil
}

func identity(s string) (string, error) {
	return s, nil
}

func number(n float64) (string, error) {
	return Number(n), nil
}

func decimal(n float64) (string, error) {
	return Decimal(n), nil
}

// Number renders n in its shortest form, with no decimal point for integral
// values: 3 renders as "3", 2.35 as "2.35".
func Number(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// Decimal renders n like Number but always keeps a decimal point, so 0
// renders as "0.0" and 8 as "8.0". Used for tax rates, where "0.0" signals
// an explicit zero rate rather than a missing value.
func Decimal(n float64) string {
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return strconv.FormatFloat(n, 'g', -1, 64)
	}
	s := strconv.FormatFloat(n, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
