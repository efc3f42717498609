package node

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"friendgrid/internal/model"
	"friendgrid/internal/node/mocks"
)

// stubFunctions resolves parameters from per-item maps falling back to shared ones.
type stubFunctions struct {
	items   []map[string]any
	shared  map[string]any
	helpers Helpers
}

func (s *stubFunctions) InputData() []model.Item {
	out := make([]model.Item, len(s.items))
	for i := range s.items {
		out[i] = model.Item{JSON: map[string]any{}}
	}
	return out
}

func (s *stubFunctions) NodeParameter(name string, itemIndex int) (any, error) {
	if itemIndex < len(s.items) {
		if v, ok := s.items[itemIndex][name]; ok {
			return v, nil
		}
	}
	return s.shared[name], nil
}

func (s *stubFunctions) Helpers() Helpers { return s.helpers }

func newStub(h Helpers, items ...map[string]any) *stubFunctions {
	return &stubFunctions{
		items:   items,
		shared:  map[string]any{ParamResource: ResourceContact, ParamOperation: OperationCreate},
		helpers: h,
	}
}

// bodyJSON matches RequestOptions whose marshaled body is exactly want.
func bodyJSON(want string) any {
	return mock.MatchedBy(func(opts model.RequestOptions) bool {
		got, err := json.Marshal(opts.Body)
		if err != nil {
			return false
		}
		return string(got) == want
	})
}

func TestFriendGrid_Execute(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		items      []map[string]any
		setupMocks func(t *testing.T, h *mocks.MockHelpers)
		wantErr    error
		wantErrMsg string
		wantOutput string
	}{
		{
			name:  "email only",
			items: []map[string]any{{ParamEmail: "a@x.com"}},
			setupMocks: func(t *testing.T, h *mocks.MockHelpers) {
				h.On("RequestWithAuthentication", ctx, CredentialName, bodyJSON(`{"contacts":[{"email":"a@x.com"}]}`)).
					Return(json.RawMessage(`{"job_id":"1"}`), nil).Once()
			},
			wantOutput: `[[{"json":{"job_id":"1"}}]]`,
		},
		{
			name:  "additional fields become siblings of email",
			items: []map[string]any{{ParamEmail: "b@x.com", ParamAdditionalFields: map[string]any{"firstName": "Jo"}}},
			setupMocks: func(t *testing.T, h *mocks.MockHelpers) {
				h.On("RequestWithAuthentication", ctx, CredentialName, bodyJSON(`{"contacts":[{"email":"b@x.com","firstName":"Jo"}]}`)).
					Return(json.RawMessage(`{"job_id":"2"}`), nil).Once()
			},
			wantOutput: `[[{"json":{"job_id":"2"}}]]`,
		},
		{
			name: "one request per item in order",
			items: []map[string]any{
				{ParamEmail: "first@x.com"},
				{ParamEmail: "second@x.com", ParamAdditionalFields: map[string]any{"firstName": "Sam", "lastName": "Lee"}},
			},
			setupMocks: func(t *testing.T, h *mocks.MockHelpers) {
				h.On("RequestWithAuthentication", ctx, CredentialName, bodyJSON(`{"contacts":[{"email":"first@x.com"}]}`)).
					Return(json.RawMessage(`{"job_id":"a"}`), nil).Once()
				h.On("RequestWithAuthentication", ctx, CredentialName, bodyJSON(`{"contacts":[{"email":"second@x.com","firstName":"Sam","lastName":"Lee"}]}`)).
					Return(json.RawMessage(`{"job_id":"b"}`), nil).Once()
			},
			wantOutput: `[[{"json":{"job_id":"a"}},{"json":{"job_id":"b"}}]]`,
		},
		{
			name:  "remote failure aborts the batch",
			items: []map[string]any{{ParamEmail: "ok@x.com"}, {ParamEmail: "fail@x.com"}},
			setupMocks: func(t *testing.T, h *mocks.MockHelpers) {
				h.On("RequestWithAuthentication", ctx, CredentialName, bodyJSON(`{"contacts":[{"email":"ok@x.com"}]}`)).
					Return(json.RawMessage(`{"job_id":"a"}`), nil).Once()
				h.On("RequestWithAuthentication", ctx, CredentialName, bodyJSON(`{"contacts":[{"email":"fail@x.com"}]}`)).
					Return(nil, errors.New("HTTP Request failed: 401 - {\"errors\":[]}")).Once()
			},
			wantErrMsg: "HTTP Request failed: 401",
		},
		{
			name:       "missing email fails before any request",
			items:      []map[string]any{{ParamEmail: "ok@x.com"}, {ParamEmail: ""}},
			setupMocks: func(t *testing.T, h *mocks.MockHelpers) {},
			wantErr:    ErrEmailRequired,
			wantErrMsg: "item 1",
		},
		{
			name:       "non-string email",
			items:      []map[string]any{{ParamEmail: 42.0}},
			setupMocks: func(t *testing.T, h *mocks.MockHelpers) {},
			wantErr:    ErrInvalidParameter,
		},
		{
			name:       "unknown additional field",
			items:      []map[string]any{{ParamEmail: "a@x.com", ParamAdditionalFields: map[string]any{"phone": "1"}}},
			setupMocks: func(t *testing.T, h *mocks.MockHelpers) {},
			wantErr:    ErrInvalidParameter,
		},
		{
			name:       "additional fields of wrong type",
			items:      []map[string]any{{ParamEmail: "a@x.com", ParamAdditionalFields: "John"}},
			setupMocks: func(t *testing.T, h *mocks.MockHelpers) {},
			wantErr:    ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := new(mocks.MockHelpers)
			tt.setupMocks(t, h)

			out, err := NewFriendGrid().Execute(ctx, newStub(h, tt.items...))

			if tt.wantErr != nil || tt.wantErrMsg != "" {
				require.Error(t, err)
				if tt.wantErr != nil {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				if tt.wantErrMsg != "" {
					assert.Contains(t, err.Error(), tt.wantErrMsg)
				}
				assert.Nil(t, out)
			} else {
				require.NoError(t, err)
				b, err := json.Marshal(out)
				require.NoError(t, err)
				assert.JSONEq(t, tt.wantOutput, string(b))
			}
			h.AssertExpectations(t)
		})
	}
}

func TestFriendGrid_Execute_RequestShape(t *testing.T) {
	ctx := context.Background()
	h := new(mocks.MockHelpers)
	h.On("RequestWithAuthentication", ctx, CredentialName, mock.MatchedBy(func(opts model.RequestOptions) bool {
		return opts.Method == http.MethodPut &&
			opts.URL == "http://upstream.test/v3/marketing/contacts" &&
			opts.JSON
	})).Return(json.RawMessage(`{}`), nil).Once()

	n := NewFriendGrid(WithBaseURL("http://upstream.test/"))
	_, err := n.Execute(ctx, newStub(h, map[string]any{ParamEmail: "a@x.com"}))

	require.NoError(t, err)
	h.AssertExpectations(t)
}

func TestFriendGrid_Execute_UnsupportedRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("resource", func(t *testing.T) {
		h := new(mocks.MockHelpers)
		stub := newStub(h, map[string]any{ParamEmail: "a@x.com"})
		stub.shared[ParamResource] = "list"

		_, err := NewFriendGrid().Execute(ctx, stub)
		assert.ErrorIs(t, err, ErrUnsupportedResource)
		h.AssertNotCalled(t, "RequestWithAuthentication", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("operation", func(t *testing.T) {
		h := new(mocks.MockHelpers)
		stub := newStub(h, map[string]any{ParamEmail: "a@x.com"})
		stub.shared[ParamOperation] = "delete"

		_, err := NewFriendGrid().Execute(ctx, stub)
		assert.ErrorIs(t, err, ErrUnsupportedOperation)
	})
}

func TestFriendGrid_Execute_NoItems(t *testing.T) {
	h := new(mocks.MockHelpers)

	out, err := NewFriendGrid().Execute(context.Background(), newStub(h))

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Empty(t, out[0])
}

func TestFriendGrid_Description(t *testing.T) {
	d := NewFriendGrid().Description()

	assert.Equal(t, Name, d.Name)
	require.Len(t, d.Credentials, 1)
	assert.Equal(t, CredentialName, d.Credentials[0].Name)
	assert.True(t, d.Credentials[0].Required)

	names := make([]string, 0, len(d.Properties))
	for _, p := range d.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{ParamResource, ParamOperation, ParamEmail, ParamAdditionalFields}, names)
}
