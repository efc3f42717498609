package mocks

import (
	"context"
	"encoding/json"

	"friendgrid/internal/model"

	"github.com/stretchr/testify/mock"
)

type MockHelpers struct {
	mock.Mock
}

func (m *MockHelpers) RequestWithAuthentication(ctx context.Context, credentialName string, opts model.RequestOptions) (json.RawMessage, error) {
	args := m.Called(ctx, credentialName, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockHelpers) ReturnJSONArray(data []json.RawMessage) []model.Item {
	return model.WrapJSON(data)
}
