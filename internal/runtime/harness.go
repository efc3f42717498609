// Package runtime simulates the workflow host a node runs inside: it
// supplies input items, resolves parameters per item and performs
// authenticated requests through a Requester.
package runtime

import (
	"context"
	"encoding/json"
	"fmt"

	"friendgrid/internal/model"
	"friendgrid/internal/node"
)

// Requester performs an authenticated request for a named credential.
type Requester interface {
	Do(ctx context.Context, credentialName string, opts model.RequestOptions) (json.RawMessage, error)
}

// Defaults are the parameter values used when nothing overrides them.
func Defaults() map[string]any {
	return map[string]any{
		node.ParamResource:  node.ResourceContact,
		node.ParamOperation: node.OperationCreate,
		node.ParamEmail:     "test@example.com",
		node.ParamAdditionalFields: map[string]any{
			"firstName": "John",
			"lastName":  "Doe",
		},
	}
}

// Harness implements node.ExecuteFunctions and node.Helpers for local execution.
type Harness struct {
	items     []model.Item
	overrides map[string]any
	perItem   []map[string]any
	defaults  map[string]any
	requester Requester
}

// NewHarness builds a harness from invocation-level parameter overrides.
//
// The reserved "items" key, when present, is an array of per-item override
// objects: one input item is created per element and item i resolves its
// parameters from items[i] first. Without it the harness feeds a single
// empty item, as the host does for a manually triggered node.
func NewHarness(overrides map[string]any, requester Requester) (*Harness, error) {
	h := &Harness{
		overrides: map[string]any{},
		defaults:  Defaults(),
		requester: requester,
	}
	for k, v := range overrides {
		if k == "items" {
			continue
		}
		h.overrides[k] = v
	}

	raw, ok := overrides["items"]
	if !ok || raw == nil {
		h.items = []model.Item{{JSON: map[string]any{}}}
		h.perItem = []map[string]any{{}}
		return h, nil
	}

	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("items must be an array, got %T", raw)
	}
	h.items = make([]model.Item, 0, len(list))
	h.perItem = make([]map[string]any, 0, len(list))
	for i, entry := range list {
		params, ok := entry.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("items[%d] must be an object, got %T", i, entry)
		}
		h.items = append(h.items, model.Item{JSON: params})
		h.perItem = append(h.perItem, params)
	}
	return h, nil
}

// InputData returns the harness items.
func (h *Harness) InputData() []model.Item {
	return h.items
}

// NodeParameter resolves name for item itemIndex: per-item override, then
// invocation override, then default. Empty overrides (null, "", false, 0)
// fall through to the next source.
func (h *Harness) NodeParameter(name string, itemIndex int) (any, error) {
	if itemIndex < 0 || itemIndex >= len(h.items) {
		return nil, fmt.Errorf("item index %d out of range [0,%d)", itemIndex, len(h.items))
	}
	if v, ok := h.perItem[itemIndex][name]; ok && !isEmpty(v) {
		return v, nil
	}
	if v, ok := h.overrides[name]; ok && !isEmpty(v) {
		return v, nil
	}
	return h.defaults[name], nil
}

// Helpers returns the harness itself.
func (h *Harness) Helpers() node.Helpers {
	return h
}

// RequestWithAuthentication forwards to the configured Requester.
func (h *Harness) RequestWithAuthentication(ctx context.Context, credentialName string, opts model.RequestOptions) (json.RawMessage, error) {
	if h.requester == nil {
		return nil, fmt.Errorf("no requester configured for credential %s", credentialName)
	}
	return h.requester.Do(ctx, credentialName, opts)
}

// ReturnJSONArray wraps each value as {json: value}.
func (h *Harness) ReturnJSONArray(data []json.RawMessage) []model.Item {
	return model.WrapJSON(data)
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case float64:
		return t == 0
	case int:
		return t == 0
	}
	return false
}

var (
	_ node.ExecuteFunctions = (*Harness)(nil)
	_ node.Helpers          = (*Harness)(nil)
)
