package protocol

import (
	"fmt"

	"go-launchpad/color"
	"go-launchpad/grid"
)

// SysEx opcodes.
const (
	opLightSingle  byte = 0x0A
	opLightRGB     byte = 0x0B
	opLightColumn  byte = 0x0C
	opLightRow     byte = 0x0D
	opLightAll     byte = 0x0E
	opScrollText   byte = 0x14
	opSelectLayout byte = 0x22
	opFlash        byte = 0x23
	opPulse        byte = 0x28
	opSetupFader   byte = 0x2B
)

// Scroll speed markers. They may appear anywhere in ScrollText.Text and
// change the speed from that point on.
const (
	ScrollSlowest = "\x01"
	ScrollSlower  = "\x02"
	ScrollSlow    = "\x03"
	ScrollNormal  = "\x04"
	ScrollFast    = "\x05"
	ScrollFaster  = "\x06"
	ScrollFastest = "\x07"
)

// Command is an outbound device command.
type Command interface {
	opcode() byte
	// appendArgs appends the argument bytes to dst, validating them against p.
	appendArgs(dst []byte, p *grid.Profile) ([]byte, error)
}

// LED pairs a location with a raw palette color.
type LED struct {
	Location grid.Location
	Color    uint8
}

// RGBLED pairs a location with an RGB color.
type RGBLED struct {
	Location grid.Location
	Color    color.RGB
}

// LightAll sets every LED to one palette color.
type LightAll struct {
	Color uint8
}

// LightSingle sets one LED to a palette color.
type LightSingle struct {
	Location grid.Location
	Color    uint8
}

// LightMulti sets up to MaxBatch LEDs in one message. Extra entries are
// dropped.
type LightMulti struct {
	LEDs []LED
}

// FlashSingle flashes one LED between its current color and Color.
type FlashSingle struct {
	Location grid.Location
	Color    uint8
}

// PulseSingle pulses one LED in Color.
type PulseSingle struct {
	Location grid.Location
	Color    uint8
}

// LightRow sets a whole row, side buttons included. Row 0 is the bottom row.
type LightRow struct {
	Row   int
	Color uint8
}

// LightColumn sets a whole column, side buttons included. Column 0 is the
// leftmost column.
type LightColumn struct {
	Column int
	Color  uint8
}

// LightSingleRGB sets one LED to an RGB color. The device has 6 bits per
// channel, so each channel is divided by 4.
type LightSingleRGB struct {
	Location grid.Location
	Color    color.RGB
}

// LightMultiRGB sets up to MaxBatch LEDs to RGB colors in one message. Extra
// entries are dropped.
type LightMultiRGB struct {
	LEDs []RGBLED
}

// ScrollText scrolls ASCII text across the grid. A looping scroll is
// cancelled by sending ScrollText with empty text.
type ScrollText struct {
	Text  string
	Loop  bool
	Color uint8
}

// SelectLayout switches the device layout.
type SelectLayout struct {
	Layout Layout
}

// SetupFader configures one of the eight faders of the Volume and Pan
// layouts. Value changes come back as FaderUpdate events.
type SetupFader struct {
	Index int
	Type  FaderType
	Color uint8
	Value uint8
}

// Layout is a device layout.
type Layout byte

const (
	LayoutSession Layout = iota
	LayoutUser1
	LayoutUser2
	LayoutAbletonReserved
	LayoutVolume
	LayoutPan
)

func (l Layout) String() string {
	switch l {
	case LayoutSession:
		return "session"
	case LayoutUser1:
		return "user1"
	case LayoutUser2:
		return "user2"
	case LayoutAbletonReserved:
		return "ableton"
	case LayoutVolume:
		return "volume"
	case LayoutPan:
		return "pan"
	}
	return fmt.Sprintf("layout(%d)", byte(l))
}

// FaderType selects between unipolar and bipolar faders.
type FaderType byte

const (
	FaderVolume FaderType = iota
	FaderPan
)

func (c LightAll) opcode() byte { return opLightAll }

func (c LightAll) appendArgs(dst []byte, _ *grid.Profile) ([]byte, error) {
	if err := checkColor(c.Color); err != nil {
		return nil, err
	}
	return append(dst, c.Color), nil
}

func (c LightSingle) opcode() byte { return opLightSingle }

func (c LightSingle) appendArgs(dst []byte, p *grid.Profile) ([]byte, error) {
	return appendLED(dst, p, LED(c))
}

func (c LightMulti) opcode() byte { return opLightSingle }

func (c LightMulti) appendArgs(dst []byte, p *grid.Profile) ([]byte, error) {
	leds := c.LEDs
	if len(leds) > p.MaxBatch {
		leds = leds[:p.MaxBatch]
	}
	var err error
	for _, led := range leds {
		if dst, err = appendLED(dst, p, led); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (c FlashSingle) opcode() byte { return opFlash }

func (c FlashSingle) appendArgs(dst []byte, p *grid.Profile) ([]byte, error) {
	if p.FlashPrefix {
		dst = append(dst, 0x00)
	}
	return appendLED(dst, p, LED(c))
}

func (c PulseSingle) opcode() byte { return opPulse }

func (c PulseSingle) appendArgs(dst []byte, p *grid.Profile) ([]byte, error) {
	if p.FlashPrefix {
		dst = append(dst, 0x00)
	}
	return appendLED(dst, p, LED(c))
}

func (c LightRow) opcode() byte { return opLightRow }

func (c LightRow) appendArgs(dst []byte, p *grid.Profile) ([]byte, error) {
	return appendLine(dst, p, "row", c.Row, c.Color)
}

func (c LightColumn) opcode() byte { return opLightColumn }

func (c LightColumn) appendArgs(dst []byte, p *grid.Profile) ([]byte, error) {
	return appendLine(dst, p, "column", c.Column, c.Color)
}

func (c LightSingleRGB) opcode() byte { return opLightRGB }

func (c LightSingleRGB) appendArgs(dst []byte, p *grid.Profile) ([]byte, error) {
	return appendRGBLED(dst, p, RGBLED(c))
}

func (c LightMultiRGB) opcode() byte { return opLightRGB }

func (c LightMultiRGB) appendArgs(dst []byte, p *grid.Profile) ([]byte, error) {
	leds := c.LEDs
	if len(leds) > p.MaxBatch {
		leds = leds[:p.MaxBatch]
	}
	var err error
	for _, led := range leds {
		if dst, err = appendRGBLED(dst, p, led); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

func (c ScrollText) opcode() byte { return opScrollText }

func (c ScrollText) appendArgs(dst []byte, _ *grid.Profile) ([]byte, error) {
	if err := checkColor(c.Color); err != nil {
		return nil, err
	}
	for i := 0; i < len(c.Text); i++ {
		if c.Text[i] == 0 || c.Text[i] > 0x7F {
			return nil, fmt.Errorf("byte 0x%02X at offset %d: %w", c.Text[i], i, ErrInvalidText)
		}
	}
	loop := byte(0)
	if c.Loop {
		loop = 1
	}
	dst = append(dst, c.Color, loop)
	return append(dst, c.Text...), nil
}

func (c SelectLayout) opcode() byte { return opSelectLayout }

func (c SelectLayout) appendArgs(dst []byte, _ *grid.Profile) ([]byte, error) {
	if c.Layout > LayoutPan {
		return nil, fmt.Errorf("unknown %s", c.Layout)
	}
	return append(dst, byte(c.Layout)), nil
}

func (c SetupFader) opcode() byte { return opSetupFader }

func (c SetupFader) appendArgs(dst []byte, _ *grid.Profile) ([]byte, error) {
	if c.Index < 0 || c.Index > 7 {
		return nil, fmt.Errorf("fader index %d: %w", c.Index, ErrInvalidFader)
	}
	if c.Type > FaderPan {
		return nil, fmt.Errorf("fader type %d: %w", c.Type, ErrInvalidFader)
	}
	if c.Value > 0x7F {
		return nil, fmt.Errorf("fader value %d: %w", c.Value, ErrInvalidFader)
	}
	if err := checkColor(c.Color); err != nil {
		return nil, err
	}
	return append(dst, byte(c.Index), byte(c.Type), c.Color, c.Value), nil
}

func appendLED(dst []byte, p *grid.Profile, led LED) ([]byte, error) {
	note, err := p.Note(led.Location)
	if err != nil {
		return nil, err
	}
	if err := checkColor(led.Color); err != nil {
		return nil, err
	}
	return append(dst, note, led.Color), nil
}

func appendRGBLED(dst []byte, p *grid.Profile, led RGBLED) ([]byte, error) {
	note, err := p.Note(led.Location)
	if err != nil {
		return nil, err
	}
	return append(dst, note, led.Color.R/4, led.Color.G/4, led.Color.B/4), nil
}

func appendLine(dst []byte, p *grid.Profile, kind string, i int, c uint8) ([]byte, error) {
	if !p.ValidLine(i) {
		return nil, fmt.Errorf("%s %d: %w", kind, i, grid.ErrInvalidLocation)
	}
	if err := checkColor(c); err != nil {
		return nil, err
	}
	dst = append(dst, byte(i))
	for n := 0; n < p.LineRepeat; n++ {
		dst = append(dst, c)
	}
	return dst, nil
}

func checkColor(c uint8) error {
	if c >= color.Size {
		return fmt.Errorf("color %d: %w", c, ErrInvalidColor)
	}
	return nil
}
