package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-launchpad/color"
	"go-launchpad/grid"
	"go-launchpad/theme"
)

// GridState is what each LED currently shows. Missing locations are off.
type GridState map[grid.Location]color.RGB

// RenderPad renders a single colored pad. Black is drawn as an unlit pad.
func RenderPad(th *theme.Theme, c color.RGB) string {
	if c == (color.RGB{}) {
		return lipgloss.NewStyle().Foreground(th.Muted()).Render(string(th.Symbols.Unlit))
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	return style.Render(string(th.Symbols.Lit))
}

// RenderGrid renders the device as seen from above: top buttons first, row 0
// at the bottom, side buttons where the profile has them.
func RenderGrid(th *theme.Theme, p *grid.Profile, state GridState) string {
	left, right := p.HasSide(grid.Left), p.HasSide(grid.Right)
	blank := string(th.Symbols.Blank)

	buttonRow := func(s grid.Side) string {
		cells := make([]string, 0, p.Size+2)
		if left {
			cells = append(cells, blank)
		}
		for i := 0; i < p.Size; i++ {
			cells = append(cells, RenderPad(th, state[grid.Button(i, s)]))
		}
		if right {
			cells = append(cells, blank)
		}
		return strings.Join(cells, " ")
	}

	var lines []string
	if p.HasSide(grid.Top) {
		lines = append(lines, buttonRow(grid.Top))
	}
	for y := p.Size - 1; y >= 0; y-- {
		cells := make([]string, 0, p.Size+2)
		if left {
			cells = append(cells, RenderPad(th, state[grid.Button(y, grid.Left)]))
		}
		for x := 0; x < p.Size; x++ {
			cells = append(cells, RenderPad(th, state[grid.Pad(x, y)]))
		}
		if right {
			cells = append(cells, RenderPad(th, state[grid.Button(y, grid.Right)]))
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	if p.HasSide(grid.Bottom) {
		lines = append(lines, buttonRow(grid.Bottom))
	}
	return strings.Join(lines, "\n")
}

// RenderPalette renders every entry of the theme's palette as a numbered
// swatch.
func RenderPalette(th *theme.Theme, columns int) string {
	if columns <= 0 {
		columns = 8
	}
	var lines []string
	var line strings.Builder
	for i, c := range th.Palette {
		if i > 0 && i%columns == 0 {
			lines = append(lines, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
		fmt.Fprintf(&line, "%3d %s  ", i, style.Render(string(th.Symbols.Lit)))
	}
	if line.Len() > 0 {
		lines = append(lines, strings.TrimRight(line.String(), " "))
	}
	return strings.Join(lines, "\n")
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(th *theme.Theme, c color.RGB, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderPad(th, c), name, desc)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}
