package render

import (
	"strings"

	"github.com/costcocr/costcocr/internal/receipt"
)

// CSV is the comma separated writer: one "# Key: value" comment line per
// present meta key, then one "name, cost, discount, tax" line per item.
//
// Its Item function could also be used to collapse or exclude fields.
func CSV(vars map[string]string) Funcs {
	return Funcs{
		Receipt: func(body string, meta receipt.Meta) (string, error) {
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
		},
		ItemList: func(items string) (string, error) {
			return items, nil
		},
		ItemListSep: func() string {
			return "\n"
		},
		Item: func(name, cost, discount, tax string) (string, error) {
			return strings.Join([]string{name, cost, discount, tax}, ", "), nil
		},
	}
}
