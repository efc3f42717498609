package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestContactRequestBody_JSON(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		fields AdditionalFields
		want   string
	}{
		{
			name:  "email only",
			email: "a@x.com",
			want:  `{"contacts":[{"email":"a@x.com"}]}`,
		},
		{
			name:   "first name only",
			email:  "b@x.com",
			fields: AdditionalFields{FirstName: strPtr("Jo")},
			want:   `{"contacts":[{"email":"b@x.com","firstName":"Jo"}]}`,
		},
		{
			name:   "both names",
			email:  "c@x.com",
			fields: AdditionalFields{FirstName: strPtr("John"), LastName: strPtr("Doe")},
			want:   `{"contacts":[{"email":"c@x.com","firstName":"John","lastName":"Doe"}]}`,
		},
		{
			name:   "present but empty is kept",
			email:  "d@x.com",
			fields: AdditionalFields{LastName: strPtr("")},
			want:   `{"contacts":[{"email":"d@x.com","lastName":""}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := ContactRequestBody{Contacts: []ContactInput{NewContactInput(tt.email, tt.fields)}}
			b, err := json.Marshal(body)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(b))
		})
	}
}

func TestWrapJSON(t *testing.T) {
	items := WrapJSON([]json.RawMessage{json.RawMessage(`{"job_id":"1"}`), json.RawMessage(`{"job_id":"2"}`)})

	require.Len(t, items, 2)
	b, err := json.Marshal(items)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"json":{"job_id":"1"}},{"json":{"job_id":"2"}}]`, string(b))
}
