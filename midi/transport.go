// Package midi connects a launchpad.Launchpad to real MIDI ports through
// gomidi. A driver must be registered by the main package, e.g.
//
//	import _ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
package midi

import (
	"fmt"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"go-launchpad/debug"
	"go-launchpad/launchpad"
)

// Transport is a launchpad.Transport over a gomidi input/output port pair.
type Transport struct {
	name string
	in   drivers.In
	out  drivers.Out

	mu     sync.Mutex
	send   func(msg gomidi.Message) error
	stop   func()
	closed bool
}

// Open opens the output port of pair. The input is opened by Listen.
func Open(pair PortPair) (*Transport, error) {
	if pair.Out == nil {
		return nil, fmt.Errorf("open %s: no output port", pair.Name)
	}
	send, err := gomidi.SendTo(pair.Out)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}
	debug.Log("midi", "opened %s", pair.Name)
	return &Transport{name: pair.Name, in: pair.In, out: pair.Out, send: send}, nil
}

// Name returns the port name.
func (t *Transport) Name() string {
	return t.name
}

func (t *Transport) Send(msg []byte) error {
	t.mu.Lock()
	send, closed := t.send, t.closed
	t.mu.Unlock()
	if closed {
		return launchpad.ErrClosed
	}
	return send(gomidi.Message(msg))
}

func (t *Transport) Listen(sink func([]byte)) (func(), error) {
	if t.in == nil {
		return nil, fmt.Errorf("listen %s: no input port", t.name)
	}
	stop, err := gomidi.ListenTo(t.in, func(msg gomidi.Message, timestampms int32) {
		sink(msg)
	})
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}

	t.mu.Lock()
	t.stop = stop
	t.mu.Unlock()
	return stop, nil
}

// Close stops listening and closes both ports.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true

	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
	var firstErr error
	if t.in != nil && t.in.IsOpen() {
		firstErr = t.in.Close()
	}
	if t.out != nil && t.out.IsOpen() {
		if err := t.out.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	debug.Log("midi", "closed %s", t.name)
	return firstErr
}
