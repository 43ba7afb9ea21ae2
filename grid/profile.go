package grid

import (
	"fmt"
	"strings"
)

// Profile describes the addressing and SysEx layout of one Launchpad model.
type Profile struct {
	Name string

	// PortMatch is the substring identifying the device's MIDI ports.
	PortMatch string

	// DeviceID is the last byte of the SysEx header (F0 00 20 29 02 <id>).
	DeviceID byte

	// Size is the width and height of the pad grid.
	Size int

	// Sides lists the button strips the device has, in decode order.
	Sides []Side

	// TopBase is the note of the leftmost top-row button.
	TopBase byte

	// Lines is the number of rows/columns LightRow and LightColumn address,
	// including the side buttons.
	Lines int

	// LineRepeat is how many times the color byte is repeated in row and
	// column commands.
	LineRepeat int

	// FlashPrefix is set when flash and pulse commands carry a 0x00 byte
	// before the note.
	FlashPrefix bool

	// MaxBatch caps the entries of a multi-LED command.
	MaxBatch int

	// FaderBase is the controller number of the first fader.
	FaderBase byte
}

var (
	// Mk2 is the Launchpad Mk2.
	Mk2 = &Profile{
		Name:        "mk2",
		PortMatch:   "Launchpad MK2",
		DeviceID:    0x18,
		Size:        8,
		Sides:       []Side{Right, Top},
		TopBase:     104,
		Lines:       9,
		LineRepeat:  1,
		FlashPrefix: true,
		MaxBatch:    80,
		FaderBase:   21,
	}

	// Pro is the Launchpad Pro in standalone mode.
	Pro = &Profile{
		Name:        "pro",
		PortMatch:   "Launchpad Pro",
		DeviceID:    0x10,
		Size:        8,
		Sides:       []Side{Right, Left, Top, Bottom},
		TopBase:     91,
		Lines:       10,
		LineRepeat:  10,
		FlashPrefix: false,
		MaxBatch:    80,
		FaderBase:   21,
	}

	// Profiles lists the known profiles.
	Profiles = []*Profile{Mk2, Pro}
)

// ProfileByName looks a profile up by name, case-insensitively. An empty name
// selects Mk2.
func ProfileByName(name string) (*Profile, error) {
	if name == "" {
		return Mk2, nil
	}
	for _, p := range Profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return nil, fmt.Errorf("unknown device profile %q", name)
}

// Header returns the SysEx header without the leading 0xF0.
func (p *Profile) Header() []byte {
	return []byte{0x00, 0x20, 0x29, 0x02, p.DeviceID}
}

// HasSide reports whether the device has buttons on side s.
func (p *Profile) HasSide(s Side) bool {
	for _, side := range p.Sides {
		if side == s {
			return true
		}
	}
	return false
}

// MatchesPort reports whether a MIDI port name belongs to this device.
func (p *Profile) MatchesPort(name string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(p.PortMatch))
}
