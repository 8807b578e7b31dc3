package receipt

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Meta holds the optional key/value annotations attached to a receipt.
// Absent keys are omitted from rendering, never defaulted.
type Meta map[string]string

// Recognized meta keys. Writers may support additional keys as
// writer-specific extensions.
const (
	MetaStore    = "store"
	MetaDate     = "date"
	MetaLocation = "location"
)

// Item is one purchased line entry on a receipt.
type Item struct {
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Discount float64 `json:"discount"` // positive cash amount deducted from the item
	Tax      float64 `json:"tax"`      // fractional tax rate, 0.08 means 8%
}

// Total returns the item total, cost times one plus the tax rate, minus the
// discount.
func (i Item) Total() float64 {
	return i.Cost*(1+i.Tax) - i.Discount
}

// Receipt is the root of the receipt intermediate representation: metadata
// plus an ordered list of items. Item order is significant and preserved by
// every consumer.
type Receipt struct {
	Meta  Meta   `json:"meta"`
	Items []Item `json:"items"`
}

// New constructs a Receipt. A nil meta is normalized to an empty Meta so
// callers can index it without nil checks.
func New(meta Meta, items []Item) Receipt {
	if meta == nil {
		meta = Meta{}
	}
	return Receipt{Meta: meta, Items: items}
}

// Total sums the totals of all items on the receipt.
func (r Receipt) Total() float64 {
	var total float64
	for _, item := range r.Items {
		total += item.Total()
	}
	return total
}

// Equal reports whether two receipts carry the same metadata and the same
// items in the same order.
func (r Receipt) Equal(other Receipt) bool {
	if len(r.Meta) != len(other.Meta) || len(r.Items) != len(other.Items) {
		return false
	}
	for k, v := range r.Meta {
		if ov, ok := other.Meta[k]; !ok || ov != v {
			return false
		}
	}
	for i, item := range r.Items {
		if item != other.Items[i] {
			return false
		}
	}
	return true
}

// String renders the receipt in its printable intermediate form:
//
//	Receipt({"store": "Costco"}, ItemList([Item("Milk", 3, 0, 0.08)]))
//
// Recognized meta keys print first in a fixed order and extension keys follow
// alphabetically, so the form is deterministic.
func (r Receipt) String() string {
	items := make([]string, len(r.Items))
	for i, item := range r.Items {
		items[i] = item.String()
	}
	return fmt.Sprintf("Receipt(%s, ItemList([%s]))",
		r.Meta.String(), strings.Join(items, ", "))
}

// String renders the item in its printable intermediate form.
func (i Item) String() string {
	return fmt.Sprintf("Item(%q, %s, %s, %s)",
		i.Name, formatNumber(i.Cost), formatNumber(i.Discount), formatNumber(i.Tax))
}

// String renders the meta mapping with recognized keys first, in the order
// store, date, location, and any extension keys after them alphabetically.
func (m Meta) String() string {
	var pairs []string
	add := func(k string) {
		if v, ok := m[k]; ok {
			pairs = append(pairs, fmt.Sprintf("%q: %q", k, v))
		}
	}
	add(MetaStore)
	add(MetaDate)
	add(MetaLocation)

	var extra []string
	for k := range m {
		if k != MetaStore && k != MetaDate && k != MetaLocation {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		add(k)
	}
	return "{" + strings.Join(pairs, ", ") + "}"
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}
