// Package launchpad drives a Novation Launchpad over an abstract MIDI
// transport.
//
// A Launchpad encodes each call into one device message and sends it, or
// returns an error without sending anything. Input from the device is
// buffered as it arrives and handed out by Poll.
package launchpad

import (
	"fmt"
	"sync"

	"go-launchpad/color"
	"go-launchpad/debug"
	"go-launchpad/grid"
	"go-launchpad/protocol"
)

// Launchpad is a connected device.
type Launchpad struct {
	transport Transport
	codec     *protocol.Codec
	short     bool

	queue  *Queue
	stopFn func()

	sendMu sync.Mutex
}

// Option configures a Launchpad.
type Option func(*Launchpad)

// WithProfile selects the device model. The default is grid.Mk2.
func WithProfile(p *grid.Profile) Option {
	return func(lp *Launchpad) {
		lp.codec = protocol.NewCodec(p)
	}
}

// WithShortMessages sends FlashSingle and PulseSingle as 3-byte note
// messages instead of SysEx.
func WithShortMessages() Option {
	return func(lp *Launchpad) {
		lp.short = true
	}
}

// New wraps t and starts buffering its input.
func New(t Transport, opts ...Option) (*Launchpad, error) {
	lp := &Launchpad{
		transport: t,
		codec:     protocol.NewCodec(grid.Mk2),
		queue:     &Queue{},
	}
	for _, opt := range opts {
		opt(lp)
	}

	stop, err := t.Listen(lp.receive)
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	lp.stopFn = stop

	debug.Log("launchpad", "opened %s", lp.codec.Profile.Name)
	return lp, nil
}

func (lp *Launchpad) receive(msg []byte) {
	lp.queue.Push(msg)
	debug.LogEvery(50, "lp-recv", "% X (queued %d)", msg, lp.queue.Len())
}

// Profile returns the device profile in use.
func (lp *Launchpad) Profile() *grid.Profile {
	return lp.codec.Profile
}

// Close stops listening and closes the transport.
func (lp *Launchpad) Close() error {
	if lp.stopFn != nil {
		lp.stopFn()
		lp.stopFn = nil
	}
	return lp.transport.Close()
}

func (lp *Launchpad) send(cmd protocol.Command) error {
	encode := lp.codec.Encode
	if lp.short {
		switch cmd.(type) {
		case protocol.FlashSingle, protocol.PulseSingle:
			encode = lp.codec.EncodeShort
		}
	}

	msg, err := encode(cmd)
	if err != nil {
		return err
	}

	lp.sendMu.Lock()
	defer lp.sendMu.Unlock()
	if err := lp.transport.Send(msg); err != nil {
		debug.Log("lp-send", "%T failed: %v", cmd, err)
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

// LightAll sets every LED to a palette color.
func (lp *Launchpad) LightAll(c uint8) error {
	return lp.send(protocol.LightAll{Color: c})
}

// Clear turns every LED off.
func (lp *Launchpad) Clear() error {
	return lp.LightAll(0)
}

// LightSingle sets one LED to a palette color.
func (lp *Launchpad) LightSingle(loc grid.Location, c uint8) error {
	return lp.send(protocol.LightSingle{Location: loc, Color: c})
}

// LightMulti sets up to 80 LEDs in one message; the rest are ignored.
func (lp *Launchpad) LightMulti(leds []protocol.LED) error {
	return lp.send(protocol.LightMulti{LEDs: leds})
}

// FlashSingle flashes one LED.
func (lp *Launchpad) FlashSingle(loc grid.Location, c uint8) error {
	return lp.send(protocol.FlashSingle{Location: loc, Color: c})
}

// PulseSingle pulses one LED.
func (lp *Launchpad) PulseSingle(loc grid.Location, c uint8) error {
	return lp.send(protocol.PulseSingle{Location: loc, Color: c})
}

// LightRow sets row y, side buttons included. Row 0 is the bottom row.
func (lp *Launchpad) LightRow(y int, c uint8) error {
	return lp.send(protocol.LightRow{Row: y, Color: c})
}

// LightColumn sets column x, side buttons included.
func (lp *Launchpad) LightColumn(x int, c uint8) error {
	return lp.send(protocol.LightColumn{Column: x, Color: c})
}

// LightSingleRGB sets one LED to an RGB color at 6-bit channel resolution.
func (lp *Launchpad) LightSingleRGB(loc grid.Location, c color.RGB) error {
	return lp.send(protocol.LightSingleRGB{Location: loc, Color: c})
}

// LightMultiRGB sets up to 80 LEDs to RGB colors; the rest are ignored.
func (lp *Launchpad) LightMultiRGB(leds []protocol.RGBLED) error {
	return lp.send(protocol.LightMultiRGB{LEDs: leds})
}

// LightFuzzyRGB lights an LED with the palette color closest to c. The
// message is shorter than the RGB one.
func (lp *Launchpad) LightFuzzyRGB(loc grid.Location, c color.RGB) error {
	return lp.LightSingle(loc, color.NearestIndex(c))
}

// ScrollText scrolls text across the grid. The text may contain the
// protocol.Scroll* speed markers.
func (lp *Launchpad) ScrollText(text string, loop bool, c uint8) error {
	return lp.send(protocol.ScrollText{Text: text, Loop: loop, Color: c})
}

// StopScroll cancels a looping ScrollText.
func (lp *Launchpad) StopScroll() error {
	return lp.ScrollText("", false, 0)
}

// SelectLayout switches the device layout. Faders only respond in the
// Volume and Pan layouts.
func (lp *Launchpad) SelectLayout(l protocol.Layout) error {
	return lp.send(protocol.SelectLayout{Layout: l})
}

// SetupFader configures fader index (0-7).
func (lp *Launchpad) SetupFader(index int, t protocol.FaderType, c, value uint8) error {
	return lp.send(protocol.SetupFader{Index: index, Type: t, Color: c, Value: value})
}

// Poll returns the events received since the last call. It never blocks;
// unrecognized messages are dropped.
func (lp *Launchpad) Poll() []protocol.Event {
	raw := lp.queue.Drain()
	if len(raw) == 0 {
		return nil
	}
	events := make([]protocol.Event, 0, len(raw))
	for _, msg := range raw {
		if ev, ok := lp.codec.Decode(msg); ok {
			events = append(events, ev)
		}
	}
	return events
}
