package node

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"friendgrid/internal/model"
)

// Node identity and the credential it authenticates with.
const (
	Name           = "friendGrid"
	CredentialName = "friendGridApi"
)

// Parameter names and their supported values.
const (
	ParamResource         = "resource"
	ParamOperation        = "operation"
	ParamEmail            = "email"
	ParamAdditionalFields = "additionalFields"

	ResourceContact = "contact"
	OperationCreate = "create"
)

// DefaultBaseURL is the marketing API host; ContactsPath is the upsert endpoint on it.
const (
	DefaultBaseURL = "https://api.sendgrid.com"
	ContactsPath   = "/v3/marketing/contacts"
)

var (
	ErrUnsupportedResource  = errors.New("unsupported resource")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrEmailRequired        = errors.New("email is required")
	ErrInvalidParameter     = errors.New("invalid parameter")
)

// FriendGrid upserts marketing contacts, one outbound request per input item.
type FriendGrid struct {
	baseURL string
}

// Option customizes a FriendGrid node.
type Option func(*FriendGrid)

// WithBaseURL points the node at a different API host. Trailing slashes are ignored.
func WithBaseURL(baseURL string) Option {
	return func(n *FriendGrid) {
		if baseURL != "" {
			n.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// NewFriendGrid creates the node.
func NewFriendGrid(opts ...Option) *FriendGrid {
	n := &FriendGrid{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Description returns the node metadata.
func (n *FriendGrid) Description() Description {
	return friendGridDescription()
}

// ContactsURL is the upsert endpoint the node targets.
func (n *FriendGrid) ContactsURL() string {
	return n.baseURL + ContactsPath
}

// Execute upserts one contact per input item.
//
// Every item's parameters are resolved and validated before the first
// request goes out. Requests are then sent sequentially in input order and
// the first failure aborts the batch: no partial output is returned. On
// success the result is a single output batch with one envelope per item.
func (n *FriendGrid) Execute(ctx context.Context, fns ExecuteFunctions) ([][]model.Item, error) {
	items := fns.InputData()
	if len(items) == 0 {
		return [][]model.Item{fns.Helpers().ReturnJSONArray(nil)}, nil
	}

	if err := checkRoute(fns); err != nil {
		return nil, err
	}

	contacts := make([]model.ContactInput, len(items))
	for i := range items {
		c, err := resolveContact(fns, i)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		contacts[i] = c
	}

	results := make([]json.RawMessage, 0, len(contacts))
	for _, c := range contacts {
		res, err := fns.Helpers().RequestWithAuthentication(ctx, CredentialName, model.RequestOptions{
			Method: http.MethodPut,
			URL:    n.ContactsURL(),
			Body:   model.ContactRequestBody{Contacts: []model.ContactInput{c}},
			JSON:   true,
		})
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return [][]model.Item{fns.Helpers().ReturnJSONArray(results)}, nil
}

// checkRoute validates resource and operation, read from the first item as the host does.
func checkRoute(fns ExecuteFunctions) error {
	resource, err := stringParam(fns, ParamResource, 0)
	if err != nil {
		return err
	}
	if resource != ResourceContact {
		return fmt.Errorf("%w: %q", ErrUnsupportedResource, resource)
	}

	operation, err := stringParam(fns, ParamOperation, 0)
	if err != nil {
		return err
	}
	if operation != OperationCreate {
		return fmt.Errorf("%w: %q for resource %q", ErrUnsupportedOperation, operation, resource)
	}
	return nil
}
