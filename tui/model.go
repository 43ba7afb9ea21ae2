// Package tui is a terminal monitor for a connected Launchpad: it mirrors
// the LEDs, logs input and echoes presses back onto the device.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-launchpad/color"
	"go-launchpad/grid"
	"go-launchpad/launchpad"
	"go-launchpad/midi"
	"go-launchpad/protocol"
	"go-launchpad/theme"
	"go-launchpad/widgets"
)

const (
	pollInterval = 20 * time.Millisecond
	logSize      = 8
)

// Mode is how a pressed pad is lit.
type Mode int

const (
	ModeLight Mode = iota
	ModeFlash
	ModePulse
)

func (m Mode) String() string {
	switch m {
	case ModeFlash:
		return "flash"
	case ModePulse:
		return "pulse"
	default:
		return "light"
	}
}

type Model struct {
	Watcher *midi.Watcher // may be nil
	Theme   *theme.Theme

	profile  *grid.Profile
	device   *launchpad.Launchpad
	deviceID string

	state     widgets.GridState
	faders    [8]uint8
	faderMode bool
	color     uint8
	mode      Mode
	log       []logEntry
	err       error

	quitting bool
}

type logKind int

const (
	logEvent logKind = iota
	logConnected
	logDisconnected
)

type logEntry struct {
	text string
	kind logKind
}

type TickMsg time.Time

type DeviceEventMsg midi.DeviceEvent

func NewModel(w *midi.Watcher, th *theme.Theme, p *grid.Profile) Model {
	if p == nil {
		p = grid.Mk2
	}
	return Model{
		Watcher: w,
		Theme:   th,
		profile: p,
		state:   make(widgets.GridState),
		color:   theme.RoleAccent,
	}
}

// WithDevice attaches an already open device.
func (m Model) WithDevice(lp *launchpad.Launchpad, id string) Model {
	m.device = lp
	m.deviceID = id
	m.profile = lp.Profile()
	m.state = make(widgets.GridState)
	return m
}

func tick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func ListenForDevices(w *midi.Watcher) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-w.Events()
		if !ok {
			return nil
		}
		return DeviceEventMsg(event)
	}
}

func (m Model) Init() tea.Cmd {
	if m.Watcher == nil {
		return tick()
	}
	return tea.Batch(tick(), ListenForDevices(m.Watcher))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "c":
			m.state = make(widgets.GridState)
			if m.device != nil {
				m.err = m.device.Clear()
			}

		case "]":
			m.color = (m.color + 1) % color.Size

		case "[":
			m.color = (m.color + color.Size - 1) % color.Size

		case "m":
			m.mode = (m.mode + 1) % 3

		case "v":
			if m.device != nil {
				m.err = m.toggleFaders()
			}
		}

	case TickMsg:
		if m.device != nil {
			for _, ev := range m.device.Poll() {
				m = m.handle(ev)
			}
		}
		return m, tick()

	case DeviceEventMsg:
		event := midi.DeviceEvent(msg)
		switch event.Type {
		case midi.DeviceConnected:
			if m.device == nil {
				m = m.WithDevice(event.Device, event.ID)
			}
			m = m.record(fmt.Sprintf("%s %s", event.ID, event.Type), logConnected)
		case midi.DeviceDisconnected:
			if m.deviceID == event.ID {
				m.device = nil
				m.deviceID = ""
				m.faderMode = false
			}
			m = m.record(fmt.Sprintf("%s %s", event.ID, event.Type), logDisconnected)
		}
		return m, ListenForDevices(m.Watcher)
	}

	return m, nil
}

func (m Model) handle(ev protocol.Event) Model {
	switch ev.Type {
	case protocol.Press:
		var err error
		switch m.mode {
		case ModeFlash:
			err = m.device.FlashSingle(ev.Location, m.color)
		case ModePulse:
			err = m.device.PulseSingle(ev.Location, m.color)
		default:
			err = m.device.LightSingle(ev.Location, m.color)
		}
		if err != nil {
			m.err = err
		} else {
			m.state[ev.Location] = m.Theme.RGB(m.color)
		}
	case protocol.FaderUpdate:
		m.faders[ev.Fader] = ev.Value
	}
	return m.record(ev.String(), logEvent)
}

// toggleFaders switches between the Volume layout, with all eight faders set
// up in the current color, and the Session layout.
func (m *Model) toggleFaders() error {
	if m.faderMode {
		if err := m.device.SelectLayout(protocol.LayoutSession); err != nil {
			return err
		}
		m.faderMode = false
		return nil
	}

	if err := m.device.SelectLayout(protocol.LayoutVolume); err != nil {
		return err
	}
	for i, v := range m.faders {
		if err := m.device.SetupFader(i, protocol.FaderVolume, m.color, v); err != nil {
			return err
		}
	}
	m.faderMode = true
	return nil
}

func (m Model) record(text string, kind logKind) Model {
	m.log = append(m.log, logEntry{text: text, kind: kind})
	if len(m.log) > logSize {
		m.log = m.log[len(m.log)-logSize:]
	}
	return m
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	errStyle := lipgloss.NewStyle().Foreground(m.Theme.Warning())
	connectedStyle := lipgloss.NewStyle().Foreground(m.Theme.Success())
	disconnectedStyle := lipgloss.NewStyle().Foreground(m.Theme.Active())

	status := "no device"
	if m.device != nil {
		status = m.deviceID
	}
	header := headerStyle.Render(fmt.Sprintf("go-launchpad  %s  %s", m.profile.Name, status))

	legend := widgets.RenderLegendItem(m.Theme, m.Theme.RGB(m.color), fmt.Sprintf("color %d", m.color), m.mode.String())

	faders := make([]string, len(m.faders))
	for i, v := range m.faders {
		faders[i] = fmt.Sprintf("%3d", v)
	}

	help := widgets.RenderKeyHelp([]widgets.KeySection{{
		Keys: []widgets.KeyBinding{
			{Key: "[ ]", Desc: "color"},
			{Key: "m", Desc: "light/flash/pulse"},
			{Key: "v", Desc: "faders on/off"},
			{Key: "c", Desc: "clear"},
			{Key: "q", Desc: "quit"},
		},
	}})

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(widgets.RenderGrid(m.Theme, m.profile, m.state))
	out.WriteString("\n\n")
	out.WriteString(legend)
	out.WriteString("\n")
	faderLine := "faders " + strings.Join(faders, " ")
	if m.faderMode {
		out.WriteString(headerStyle.Render(faderLine))
	} else {
		out.WriteString(dimStyle.Render(faderLine))
	}
	out.WriteString("\n\n")
	for _, entry := range m.log {
		switch entry.kind {
		case logConnected:
			out.WriteString(connectedStyle.Render(entry.text))
		case logDisconnected:
			out.WriteString(disconnectedStyle.Render(entry.text))
		default:
			out.WriteString(entry.text)
		}
		out.WriteString("\n")
	}
	if m.err != nil {
		out.WriteString(errStyle.Render(m.err.Error()))
		out.WriteString("\n")
	}
	out.WriteString("\n")
	out.WriteString(dimStyle.Render(help))

	return out.String()
}
