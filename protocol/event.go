package protocol

import (
	"fmt"

	"go-launchpad/grid"
)

// EventType identifies what happened on the device.
type EventType int

const (
	Press EventType = iota
	Release
	FaderUpdate
)

func (t EventType) String() string {
	switch t {
	case Press:
		return "press"
	case Release:
		return "release"
	case FaderUpdate:
		return "fader"
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event is a decoded input message.
type Event struct {
	Type EventType

	// Location is set for Press and Release.
	Location grid.Location

	// Fader is the fader index (0-7) for FaderUpdate.
	Fader int

	// Value is the velocity of a Press or the new fader value.
	Value uint8
}

func (e Event) String() string {
	if e.Type == FaderUpdate {
		return fmt.Sprintf("fader %d = %d", e.Fader, e.Value)
	}
	return fmt.Sprintf("%s %s", e.Type, e.Location)
}
