package mocks

import "github.com/stretchr/testify/mock"

type Transport struct {
	mock.Mock
}

// Send provides a mock function with given fields: msg
func (_m *Transport) Send(msg []byte) error {
	ret := _m.Called(msg)

	var r0 error
	if rf, ok := ret.Get(0).(func([]byte) error); ok {
		r0 = rf(msg)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// Listen provides a mock function with given fields: sink
func (_m *Transport) Listen(sink func([]byte)) (func(), error) {
	ret := _m.Called(sink)

	var r0 func()
	if rf, ok := ret.Get(0).(func()); ok {
		r0 = rf
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(func([]byte)) error); ok {
		r1 = rf(sink)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// Close provides a mock function with given fields:
func (_m *Transport) Close() error {
	ret := _m.Called()

	var r0 error
	if rf, ok := ret.Get(0).(func() error); ok {
		r0 = rf()
	} else {
		r0 = ret.Error(0)
	}

	return r0
}
