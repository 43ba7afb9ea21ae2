// Package protocol encodes Launchpad commands into SysEx messages and decodes
// the 3-byte messages the device sends back.
package protocol

import (
	"errors"
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"

	"go-launchpad/grid"
)

var (
	// ErrInvalidColor is returned for raw color codes above 127.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidText is returned for scroll text that is not 7-bit ASCII.
	ErrInvalidText = errors.New("invalid scroll text")
	// ErrInvalidFader is returned for fader settings out of range.
	ErrInvalidFader = errors.New("invalid fader")
	// ErrNoShortForm is returned by EncodeShort for commands that only exist
	// as SysEx.
	ErrNoShortForm = errors.New("command has no short form")
)

// Channels used by the short note-on forms.
const (
	channelFlash uint8 = 1
	channelPulse uint8 = 2
)

// Codec encodes and decodes messages for one device profile.
type Codec struct {
	Profile *grid.Profile
}

// NewCodec returns a codec for p, or for the Mk2 when p is nil.
func NewCodec(p *grid.Profile) *Codec {
	if p == nil {
		p = grid.Mk2
	}
	return &Codec{Profile: p}
}

// Encode returns the complete SysEx message for cmd, F0 and F7 included.
// Nothing is returned when any argument fails validation.
func (c *Codec) Encode(cmd Command) (gomidi.Message, error) {
	header := c.Profile.Header()
	data := make([]byte, 0, len(header)+16)
	data = append(data, header...)
	data = append(data, cmd.opcode())

	data, err := cmd.appendArgs(data, c.Profile)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", cmd, err)
	}
	return gomidi.SysEx(data), nil
}

// EncodeShort returns the 3-byte note-on form of FlashSingle (channel 2) and
// PulseSingle (channel 3). The device treats them like the SysEx versions.
func (c *Codec) EncodeShort(cmd Command) (gomidi.Message, error) {
	var led LED
	var channel uint8
	switch cmd := cmd.(type) {
	case FlashSingle:
		led, channel = LED(cmd), channelFlash
	case PulseSingle:
		led, channel = LED(cmd), channelPulse
	default:
		return nil, fmt.Errorf("encode %T: %w", cmd, ErrNoShortForm)
	}

	args, err := appendLED(nil, c.Profile, led)
	if err != nil {
		return nil, fmt.Errorf("encode %T: %w", cmd, err)
	}
	return gomidi.NoteOn(channel, args[0], args[1]), nil
}

// Decode turns one raw inbound message into an event. It reports false for
// anything that is not a pad, button or fader message; those are dropped,
// never treated as errors.
func (c *Codec) Decode(raw []byte) (Event, bool) {
	if len(raw) < 3 {
		return Event{}, false
	}

	var channel, controller, value uint8
	msg := gomidi.Message(raw[:3])
	if msg.GetControlChange(&channel, &controller, &value) {
		if controller >= c.Profile.FaderBase && controller < c.Profile.FaderBase+8 {
			return Event{Type: FaderUpdate, Fader: int(controller - c.Profile.FaderBase), Value: value}, true
		}
	}

	note, velocity := raw[1], raw[2]
	loc, ok := c.Profile.NoteToLocation(note)
	if !ok {
		return Event{}, false
	}
	if velocity == 0 {
		return Event{Type: Release, Location: loc}, true
	}
	return Event{Type: Press, Location: loc, Value: velocity}, true
}
