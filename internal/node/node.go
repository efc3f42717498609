// Package node contains the FriendGrid workflow node and the runtime
// contract it is executed against.
//
// The runtime (the workflow host, or the local harness) supplies input
// items, resolves parameters per item and performs authenticated requests.
// The node only maps parameters to requests and responses to output items.
package node

import (
	"context"
	"encoding/json"

	"friendgrid/internal/model"
)

// ExecuteFunctions is the runtime surface a node executes against.
type ExecuteFunctions interface {
	// InputData returns the items flowing into the node, in order.
	InputData() []model.Item
	// NodeParameter resolves a named parameter for the item at itemIndex.
	NodeParameter(name string, itemIndex int) (any, error)
	// Helpers returns the runtime's request and envelope helpers.
	Helpers() Helpers
}

// Helpers are runtime-provided capabilities.
type Helpers interface {
	// RequestWithAuthentication dispatches opts with the Authorization header
	// of the named credential attached. Non-2xx responses are errors.
	RequestWithAuthentication(ctx context.Context, credentialName string, opts model.RequestOptions) (json.RawMessage, error)
	// ReturnJSONArray wraps each value in a {json: value} envelope.
	ReturnJSONArray(data []json.RawMessage) []model.Item
}
