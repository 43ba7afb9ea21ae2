package midi

import (
	"context"
	"sync"
	"time"

	"go-launchpad/debug"
	"go-launchpad/launchpad"
)

// DeviceEvent is emitted when a device connects or disconnects.
type DeviceEvent struct {
	Type   DeviceEventType
	Device *launchpad.Launchpad // nil on disconnect
	ID     string
}

type DeviceEventType int

const (
	DeviceConnected DeviceEventType = iota
	DeviceDisconnected
)

func (t DeviceEventType) String() string {
	if t == DeviceConnected {
		return "connected"
	}
	return "disconnected"
}

// Watcher handles hot-plug detection of Launchpads.
type Watcher struct {
	match   Matcher
	opts    []launchpad.Option
	timeout time.Duration

	devices  map[string]*launchpad.Launchpad
	mu       sync.RWMutex
	events   chan DeviceEvent
	pollRate time.Duration

	find func(Matcher, time.Duration) ([]PortPair, error)
	open func(PortPair) (launchpad.Transport, error)
}

// NewWatcher creates a watcher for ports accepted by match. opts are passed
// to every launchpad.New.
func NewWatcher(match Matcher, timeout time.Duration, opts ...launchpad.Option) *Watcher {
	return &Watcher{
		match:    match,
		opts:     opts,
		timeout:  timeout,
		devices:  make(map[string]*launchpad.Launchpad),
		events:   make(chan DeviceEvent, 16),
		pollRate: time.Second,
		find:     Find,
		open: func(p PortPair) (launchpad.Transport, error) {
			return Open(p)
		},
	}
}

// Events returns a channel of connect/disconnect events. It is closed when
// Run returns.
func (w *Watcher) Events() <-chan DeviceEvent {
	return w.events
}

// Devices returns a snapshot of connected devices.
func (w *Watcher) Devices() map[string]*launchpad.Launchpad {
	w.mu.RLock()
	defer w.mu.RUnlock()
	devices := make(map[string]*launchpad.Launchpad, len(w.devices))
	for k, v := range w.devices {
		devices[k] = v
	}
	return devices
}

// Run starts the polling loop (blocking - run in goroutine)
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.pollRate)
	defer ticker.Stop()

	w.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			w.closeAll()
			close(w.events)
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *Watcher) emit(ctx context.Context, ev DeviceEvent) {
	select {
	case w.events <- ev:
	case <-ctx.Done():
	}
}

func (w *Watcher) scan(ctx context.Context) {
	pairs, err := w.find(w.match, w.timeout)
	if err != nil {
		// A hung driver skips this round.
		debug.Log("watcher", "scan: %v", err)
		return
	}

	seen := make(map[string]bool)
	for _, pair := range pairs {
		seen[pair.Name] = true

		w.mu.RLock()
		_, exists := w.devices[pair.Name]
		w.mu.RUnlock()
		if exists {
			continue
		}

		t, err := w.open(pair)
		if err != nil {
			debug.Log("watcher", "open %s: %v", pair.Name, err)
			continue
		}
		lp, err := launchpad.New(t, w.opts...)
		if err != nil {
			t.Close()
			debug.Log("watcher", "start %s: %v", pair.Name, err)
			continue
		}

		w.mu.Lock()
		w.devices[pair.Name] = lp
		w.mu.Unlock()
		w.emit(ctx, DeviceEvent{Type: DeviceConnected, Device: lp, ID: pair.Name})
	}

	w.mu.Lock()
	var gone []string
	for id, lp := range w.devices {
		if !seen[id] {
			lp.Close()
			delete(w.devices, id)
			gone = append(gone, id)
		}
	}
	w.mu.Unlock()

	for _, id := range gone {
		w.emit(ctx, DeviceEvent{Type: DeviceDisconnected, ID: id})
	}
}

func (w *Watcher) closeAll() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, lp := range w.devices {
		lp.Close()
	}
	w.devices = make(map[string]*launchpad.Launchpad)
}
