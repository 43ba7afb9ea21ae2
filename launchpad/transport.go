package launchpad

import (
	"errors"
	"sync"
)

// ErrClosed is returned when sending on a closed transport.
var ErrClosed = errors.New("transport closed")

// Transport moves raw MIDI messages to and from a device.
type Transport interface {
	// Send transmits one complete message.
	Send(msg []byte) error

	// Listen delivers every inbound message to sink until stop is called.
	// sink may be called from another goroutine and must not retain msg.
	Listen(sink func(msg []byte)) (stop func(), err error)

	Close() error
}

// MemoryTransport is an in-process Transport. It records sent messages and
// lets the caller inject inbound ones.
type MemoryTransport struct {
	mu     sync.Mutex
	sent   [][]byte
	sink   func([]byte)
	closed bool
}

// NewMemoryTransport returns an open MemoryTransport.
func NewMemoryTransport() *MemoryTransport {
	return &MemoryTransport{}
}

func (m *MemoryTransport) Send(msg []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.sent = append(m.sent, append([]byte(nil), msg...))
	return nil
}

func (m *MemoryTransport) Listen(sink func([]byte)) (func(), error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil, ErrClosed
	}
	m.sink = sink
	return func() {
		m.mu.Lock()
		m.sink = nil
		m.mu.Unlock()
	}, nil
}

func (m *MemoryTransport) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.sink = nil
	return nil
}

// Inject delivers msg as if the device had sent it. It reports false when
// nobody is listening.
func (m *MemoryTransport) Inject(msg ...byte) bool {
	m.mu.Lock()
	sink := m.sink
	m.mu.Unlock()
	if sink == nil {
		return false
	}
	sink(msg)
	return true
}

// Sent returns a copy of every message sent so far.
func (m *MemoryTransport) Sent() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.sent))
	copy(out, m.sent)
	return out
}

// Reset forgets the sent messages.
func (m *MemoryTransport) Reset() {
	m.mu.Lock()
	m.sent = nil
	m.mu.Unlock()
}
