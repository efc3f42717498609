package runtime

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendgrid/internal/credential"
	"friendgrid/internal/node"
	"friendgrid/internal/requester"
)

// upstream is a fake marketing contacts API recording every request it receives.
type upstream struct {
	mu       sync.Mutex
	bodies   []string
	auths    []string
	failFrom int // 1-based request number from which 401 is returned; 0 never fails
	srv      *httptest.Server
}

func newUpstream(t *testing.T, failFrom int) *upstream {
	t.Helper()
	u := &upstream{failFrom: failFrom}
	u.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != node.ContactsPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		b, _ := io.ReadAll(r.Body)

		u.mu.Lock()
		u.bodies = append(u.bodies, string(b))
		u.auths = append(u.auths, r.Header.Get("Authorization"))
		n := len(u.bodies)
		u.mu.Unlock()

		if u.failFrom > 0 && n >= u.failFrom {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":[{"field":null,"message":"authorization required"}]}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"job_id":"job-` + string(rune('0'+n)) + `"}`))
	}))
	t.Cleanup(u.srv.Close)
	return u
}

func run(t *testing.T, u *upstream, token string, overrides map[string]any) (string, error) {
	t.Helper()
	req, err := requester.New(credential.NewStatic(map[string]string{node.CredentialName: token}), requester.Config{
		Transport: http.DefaultTransport,
	})
	require.NoError(t, err)

	h, err := NewHarness(overrides, req)
	require.NoError(t, err)

	out, err := node.NewFriendGrid(node.WithBaseURL(u.srv.URL)).Execute(context.Background(), h)
	if err != nil {
		assert.Nil(t, out)
		return "", err
	}
	b, err := json.Marshal(out)
	require.NoError(t, err)
	return string(b), nil
}

func TestHarness_EmailOnly(t *testing.T) {
	u := newUpstream(t, 0)

	out, err := run(t, u, "T", map[string]any{
		"email":            "a@x.com",
		"additionalFields": map[string]any{},
	})

	require.NoError(t, err)
	require.Len(t, u.bodies, 1)
	assert.Equal(t, `{"contacts":[{"email":"a@x.com"}]}`, u.bodies[0])
	assert.Equal(t, "Bearer T", u.auths[0])
	assert.JSONEq(t, `[[{"json":{"job_id":"job-1"}}]]`, out)
}

func TestHarness_FirstNameOnly(t *testing.T) {
	u := newUpstream(t, 0)

	_, err := run(t, u, "T", map[string]any{
		"email":            "b@x.com",
		"additionalFields": map[string]any{"firstName": "Jo"},
	})

	require.NoError(t, err)
	require.Len(t, u.bodies, 1)
	assert.Equal(t, `{"contacts":[{"email":"b@x.com","firstName":"Jo"}]}`, u.bodies[0])
}

func TestHarness_Defaults(t *testing.T) {
	u := newUpstream(t, 0)

	_, err := run(t, u, "T", nil)

	require.NoError(t, err)
	require.Len(t, u.bodies, 1)
	assert.Equal(t, `{"contacts":[{"email":"test@example.com","firstName":"John","lastName":"Doe"}]}`, u.bodies[0])
}

func TestHarness_Unauthorized(t *testing.T) {
	u := newUpstream(t, 1)

	out, err := run(t, u, "bad", map[string]any{"email": "a@x.com"})

	require.Error(t, err)
	assert.Empty(t, out)
	assert.Contains(t, err.Error(), "401")
	assert.Contains(t, err.Error(), "authorization required")
}

func TestHarness_SecondItemFails(t *testing.T) {
	u := newUpstream(t, 2)

	out, err := run(t, u, "T", map[string]any{
		"additionalFields": map[string]any{},
		"items": []any{
			map[string]any{"email": "one@x.com"},
			map[string]any{"email": "two@x.com"},
		},
	})

	require.Error(t, err)
	assert.Empty(t, out)
	require.Len(t, u.bodies, 2)
	assert.Equal(t, `{"contacts":[{"email":"one@x.com"}]}`, u.bodies[0])
	assert.Equal(t, `{"contacts":[{"email":"two@x.com"}]}`, u.bodies[1])
}

func TestHarness_ManyItemsPreserveOrder(t *testing.T) {
	u := newUpstream(t, 0)

	out, err := run(t, u, "T", map[string]any{
		"additionalFields": map[string]any{},
		"items": []any{
			map[string]any{"email": "1@x.com"},
			map[string]any{"email": "2@x.com"},
			map[string]any{"email": "3@x.com"},
		},
	})

	require.NoError(t, err)
	assert.JSONEq(t, `[[{"json":{"job_id":"job-1"}},{"json":{"job_id":"job-2"}},{"json":{"job_id":"job-3"}}]]`, out)
	for i, want := range []string{"1@x.com", "2@x.com", "3@x.com"} {
		assert.Contains(t, u.bodies[i], want)
		assert.Equal(t, "Bearer T", u.auths[i])
	}
}

func TestHarness_MissingToken(t *testing.T) {
	u := newUpstream(t, 0)

	_, err := run(t, u, "", map[string]any{"email": "a@x.com"})

	assert.ErrorIs(t, err, credential.ErrCredentialNotFound)
	assert.Empty(t, u.bodies)
}

func TestHarness_NodeParameter(t *testing.T) {
	h, err := NewHarness(map[string]any{
		"email":     "shared@x.com",
		"operation": "",
		"items": []any{
			map[string]any{"email": "own@x.com"},
			map[string]any{"email": ""},
		},
	}, nil)
	require.NoError(t, err)

	tests := []struct {
		name  string
		param string
		index int
		want  any
	}{
		{name: "per-item override wins", param: "email", index: 0, want: "own@x.com"},
		{name: "empty per-item falls through to shared", param: "email", index: 1, want: "shared@x.com"},
		{name: "empty shared falls through to default", param: "operation", index: 0, want: "create"},
		{name: "default", param: "resource", index: 1, want: "contact"},
		{name: "unknown parameter", param: "nope", index: 0, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.NodeParameter(tt.param, tt.index)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err = h.NodeParameter("email", 2)
	assert.Error(t, err)
}

func TestNewHarness_InvalidItems(t *testing.T) {
	_, err := NewHarness(map[string]any{"items": "nope"}, nil)
	assert.Error(t, err)

	_, err = NewHarness(map[string]any{"items": []any{"nope"}}, nil)
	assert.Error(t, err)
}

func TestNewHarness_DefaultItem(t *testing.T) {
	h, err := NewHarness(nil, nil)
	require.NoError(t, err)
	require.Len(t, h.InputData(), 1)
	assert.Equal(t, map[string]any{}, h.InputData()[0].JSON)
}
