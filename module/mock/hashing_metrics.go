package mock

import (
	mock "github.com/stretchr/testify/mock"

	time "time"
)

// HashingMetrics is a testify mock of module.HashingMetrics.
type HashingMetrics struct {
	mock.Mock
}

// BatchProcessed provides a mock function with given fields: algorithm, messages, duration
func (_m *HashingMetrics) BatchProcessed(algorithm string, messages int, duration time.Duration) {
	_m.Called(algorithm, messages, duration)
}

// BytesHashed provides a mock function with given fields: algorithm, size
func (_m *HashingMetrics) BytesHashed(algorithm string, size int) {
	_m.Called(algorithm, size)
}

// DigestComputed provides a mock function with given fields: algorithm
func (_m *HashingMetrics) DigestComputed(algorithm string) {
	_m.Called(algorithm)
}

// HashingFailed provides a mock function with given fields: algorithm, reason
func (_m *HashingMetrics) HashingFailed(algorithm string, reason string) {
	_m.Called(algorithm, reason)
}

type mockConstructorTestingTNewHashingMetrics interface {
	mock.TestingT
	Cleanup(func())
}

// NewHashingMetrics creates a new instance of HashingMetrics. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewHashingMetrics(t mockConstructorTestingTNewHashingMetrics) *HashingMetrics {
	mock := &HashingMetrics{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
