// Package theme maps UI roles onto Launchpad palette colors, so the
// terminal preview and the device agree on what "accent" looks like.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"go-launchpad/color"
)

type Theme struct {
	Palette color.Palette
	Symbols Symbols
}

type Symbols struct {
	Lit   rune // ■ LED on
	Unlit rune // □ LED off
	Blank rune // corner with no LED
}

// New returns a theme over p, or over the built-in palette when p is empty.
func New(p color.Palette) *Theme {
	if len(p) == 0 {
		p = color.Default()
	}
	return &Theme{
		Palette: p,
		Symbols: Symbols{
			Lit:   '■',
			Unlit: '□',
			Blank: ' ',
		},
	}
}

// Color roles mapped to palette codes
const (
	RoleMuted   uint8 = 1  // gray
	RoleActive  uint8 = 5  // red
	RoleWarning uint8 = 9  // orange
	RoleSuccess uint8 = 21 // green
	RoleAccent  uint8 = 53 // pink
)

// Style helpers

func (t *Theme) Accent() lipgloss.Color {
	return t.Color(RoleAccent)
}

func (t *Theme) Muted() lipgloss.Color {
	return t.Color(RoleMuted)
}

func (t *Theme) Active() lipgloss.Color {
	return t.Color(RoleActive)
}

func (t *Theme) Warning() lipgloss.Color {
	return t.Color(RoleWarning)
}

func (t *Theme) Success() lipgloss.Color {
	return t.Color(RoleSuccess)
}

// Color returns the lipgloss color of a palette code.
func (t *Theme) Color(code uint8) lipgloss.Color {
	return lipgloss.Color(t.RGB(code).Hex())
}

// RGB returns the raw color of a palette code.
func (t *Theme) RGB(code uint8) color.RGB {
	return t.Palette.Index(int(code))
}
