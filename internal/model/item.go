package model

import "encoding/json"

// Item is one unit of data flowing between workflow steps.
// The same {json: value} envelope is used for node input and node output.
type Item struct {
	JSON any `json:"json"`
}

// WrapJSON wraps each raw value in an Item envelope, preserving order.
func WrapJSON(values []json.RawMessage) []Item {
	items := make([]Item, 0, len(values))
	for _, v := range values {
		items = append(items, Item{JSON: v})
	}
	return items
}
