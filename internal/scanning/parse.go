// Package scanning extracts receipt items from OCR output text.
//
// The input is expected to have one receipt line per text line, with the
// columns of a line separated by tabs. The item cost is the last column that
// parses as a number, and the item name is the column immediately before it.
// OCR noise means many lines carry no parsable cost at all; those are
// skipped, not errors.
package scanning

import (
	"strconv"
	"strings"

	"github.com/costcocr/costcocr/internal/receipt"
)

// Register markers that can trail a cost column. Costco prints "A" after
// taxable items and "-" after amounts that reduce the previous line.
const (
	taxableMarker  = 'A'
	discountMarker = '-'
)

// Options configure parsing of OCR output text.
type Options struct {
	// TaxRate is the fractional tax rate assigned to items carrying the
	// taxable marker. Zero leaves taxable items untaxed.
	TaxRate float64
}

// Parse extracts receipt items from OCR output text, in input order.
//
// A line whose cost column carries the discount marker produces no item;
// its amount is recorded as a discount on the most recent item instead. A
// discount line with no preceding item is skipped, as is any line without a
// parsable cost or a name column.
func Parse(text string, opts Options) []receipt.Item {
	var items []receipt.Item

	for _, line := range strings.Split(text, "\n") {
		name, cost, taxable, discount, ok := parseLine(line)
		if !ok {
			continue
		}

		if discount {
			if len(items) == 0 {
				continue
			}
			items[len(items)-1].Discount += cost
			continue
		}

		item := receipt.Item{Name: name, Cost: cost}
		if taxable {
			item.Tax = opts.TaxRate
		}
		items = append(items, item)
	}

	return items
}

// parseLine finds the cost column of one OCR line. The fast path takes the
// last column when it parses whole; otherwise columns are scanned right to
// left, stripping trailing characters one at a time and noting the taxable
// and discount markers, until the remainder parses as a number. The name is
// the column before the cost column.
func parseLine(line string) (name string, cost float64, taxable, discount bool, ok bool) {
	fields := strings.Split(line, "\t")

	if len(fields) >= 2 {
		if cost, err := strconv.ParseFloat(strings.TrimSpace(fields[len(fields)-1]), 64); err == nil {
			return fields[len(fields)-2], cost, false, false, true
		}
	}

	for i := len(fields) - 1; i >= 1; i-- {
		field := strings.TrimSpace(fields[i])
		for len(field) > 0 {
			switch field[len(field)-1] {
			case taxableMarker:
				taxable = true
			case discountMarker:
				discount = true
			}
			field = field[:len(field)-1]

			cost, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				continue
			}
			return fields[i-1], cost, taxable, discount, true
		}
		taxable, discount = false, false
	}

	return "", 0, false, false, false
}
