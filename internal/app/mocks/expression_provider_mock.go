package mocks

import (
	"github.com/gocas/symint/internal/app"
	"github.com/stretchr/testify/mock"
)

// MockExpressionProvider is a mock type for the ExpressionProvider type
type MockExpressionProvider struct {
	mock.Mock
}

// GetExpressionInput provides a mock function with given fields:
func (_m *MockExpressionProvider) GetExpressionInput() (string, app.Config, error) {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	var r1 app.Config
	if rf, ok := ret.Get(1).(func() app.Config); ok {
		r1 = rf()
	} else {
		r1 = ret.Get(1).(app.Config)
	}

	var r2 error
	if rf, ok := ret.Get(2).(func() error); ok {
		r2 = rf()
	} else {
		r2 = ret.Error(2)
	}

	return r0, r1, r2
}

// NewMockExpressionProvider creates a new instance of MockExpressionProvider. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockExpressionProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockExpressionProvider {
	mock := &MockExpressionProvider{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
