// Package grid maps pads and buttons to the single-byte note numbers the
// Launchpad uses to address them.
//
// Programmer layout (Mk2):
//
//	104 105 106 107 108 109 110 111      top buttons (Control Change)
//	 81  82  83  84  85  86  87  88  89
//	 ..                              ..
//	 11  12  13  14  15  16  17  18  19  right buttons in column 9
//
// Pads are numbered 11 + x + 10*y with (0,0) bottom left.
package grid

import (
	"errors"
	"fmt"
)

// ErrInvalidLocation is returned for coordinates the device cannot address.
var ErrInvalidLocation = errors.New("invalid location")

// Side identifies a strip of buttons around the pad grid.
type Side int

const (
	Top Side = iota
	Right
	Left
	Bottom
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// Location is either a pad on the grid or a button on one of its sides.
type Location struct {
	IsButton bool

	// X, Y are pad coordinates; unused for buttons.
	X, Y int

	// Index and Side address a button; unused for pads.
	Index int
	Side  Side
}

// Pad returns the location of the pad at column x, row y.
func Pad(x, y int) Location {
	return Location{X: x, Y: y}
}

// Button returns the location of the index-th button on side s.
func Button(index int, s Side) Location {
	return Location{IsButton: true, Index: index, Side: s}
}

func (l Location) String() string {
	if l.IsButton {
		return fmt.Sprintf("Button(%d, %s)", l.Index, l.Side)
	}
	return fmt.Sprintf("Pad(%d, %d)", l.X, l.Y)
}

// Note returns the note number addressing l on the device.
func (p *Profile) Note(l Location) (byte, error) {
	if l.IsButton {
		return p.ButtonNote(l.Index, l.Side)
	}
	return p.PadNote(l.X, l.Y)
}

// PadNote returns the note of the pad at x, y.
func (p *Profile) PadNote(x, y int) (byte, error) {
	if !p.inGrid(x) || !p.inGrid(y) {
		return 0, fmt.Errorf("pad (%d, %d): %w", x, y, ErrInvalidLocation)
	}
	return byte(11 + x + 10*y), nil
}

// ButtonNote returns the note of the index-th button on side s.
func (p *Profile) ButtonNote(index int, s Side) (byte, error) {
	if !p.inGrid(index) || !p.HasSide(s) {
		return 0, fmt.Errorf("button %d on %s side of %s: %w", index, s, p.Name, ErrInvalidLocation)
	}
	switch s {
	case Top:
		return p.TopBase + byte(index), nil
	case Right:
		return byte(10*index + 19), nil
	case Left:
		return byte(10 * (index + 1)), nil
	default:
		return byte(1 + index), nil
	}
}

// NoteToLocation classifies a note number received from the device.
//
// Side column buttons are matched first: their notes (19, 29, ... on the
// right, 20, 30, ... on the left) fall inside the pad range and are only
// told apart by exact membership.
func (p *Profile) NoteToLocation(note byte) (Location, bool) {
	n := int(note)

	for _, s := range p.Sides {
		switch s {
		case Right:
			if n%10 == 9 && n >= 19 && n <= 10*(p.Size-1)+19 {
				return Button(n/10-1, Right), true
			}
		case Left:
			if n%10 == 0 && n >= 10 && n <= 10*p.Size {
				return Button(n/10-1, Left), true
			}
		}
	}

	if n >= 11 && n <= 11+11*(p.Size-1) {
		x, y := n%10-1, n/10-1
		if p.inGrid(x) && p.inGrid(y) {
			return Pad(x, y), true
		}
		return Location{}, false
	}

	if p.HasSide(Top) && n >= int(p.TopBase) && n < int(p.TopBase)+p.Size {
		return Button(n-int(p.TopBase), Top), true
	}
	if p.HasSide(Bottom) && n >= 1 && n <= p.Size {
		return Button(n-1, Bottom), true
	}
	return Location{}, false
}

// ValidLine reports whether i addresses a row or column in LightRow and
// LightColumn commands.
func (p *Profile) ValidLine(i int) bool {
	return i >= 0 && i < p.Lines
}

func (p *Profile) inGrid(v int) bool {
	return v >= 0 && v < p.Size
}
