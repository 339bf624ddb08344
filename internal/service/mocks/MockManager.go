package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"
)

// MockManager is a mock of service.TransactionManager.
type MockManager struct {
	mock.Mock
}

func (m *MockManager) Do(ctx context.Context, fn func(context.Context) error) error {
	args := m.Called(ctx, fn)
	return args.Error(0)
}

// NewMockManager creates a MockManager bound to t that asserts its
// expectations on cleanup.
func NewMockManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManager {
	m := &MockManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
