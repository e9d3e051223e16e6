package services_test

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"
)

// MockUpstreamClient is a testify mock of the upstream adapter contract.
type MockUpstreamClient struct {
	mock.Mock
}

func (m *MockUpstreamClient) PostForm(ctx context.Context, path string, form url.Values) ([]byte, error) {
	args := m.Called(ctx, path, form)
	if raw := args.Get(0); raw != nil {
		return raw.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUpstreamClient) Post(ctx context.Context, path, token string) ([]byte, error) {
	args := m.Called(ctx, path, token)
	if raw := args.Get(0); raw != nil {
		return raw.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUpstreamClient) PostJSON(ctx context.Context, path, token string, body any) ([]byte, error) {
	args := m.Called(ctx, path, token, body)
	if raw := args.Get(0); raw != nil {
		return raw.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}
