package render

import (
	"encoding/json"
	"fmt"

	"github.com/costcocr/costcocr/internal/receipt"
)

// JSON renders a receipt as a JSON object with "meta" and "items" members.
// Every override slot is exercised: names are JSON-escaped, numeric fields
// render as JSON numbers, items become objects, and the item list becomes an
// array. Item order is preserved in the array.
func JSON(vars map[string]string) Funcs {
	return Funcs{
		Receipt: func(body string, meta receipt.Meta) (string, error) {
			metaJSON, err := json.Marshal(meta)
			if err != nil {
				return "", fmt.Errorf("marshaling meta: %w", err)
			}
			return fmt.Sprintf(`{"meta": %s, "items": %s}`, metaJSON, body), nil
		},
		ItemList: func(items string) (string, error) {
			return "[" + items + "]", nil
		},
		ItemListSep: func() string {
			return ", "
		},
		Item: func(name, cost, discount, tax string) (string, error) {
			return fmt.Sprintf(`{"name": %s, "cost": %s, "discount": %s, "tax": %s}`,
				name, cost, discount, tax), nil
		},
		Name: func(name string) (string, error) {
			quoted, err := json.Marshal(name)
			if err != nil {
				return "", fmt.Errorf("marshaling name: %w", err)
			}
			return string(quoted), nil
		},
		Cost: func(cost float64) (string, error) {
			return Number(cost), nil
		},
		Discount: func(discount float64) (string, error) {
			return Number(discount), nil
		},
		Tax: func(tax float64) (string, error) {
			return Number(tax), nil
		},
	}
}
