package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-launchpad/color"
	"go-launchpad/grid"
)

func encode(t *testing.T, c *Codec, cmd Command) []byte {
	t.Helper()
	msg, err := c.Encode(cmd)
	require.NoError(t, err)
	return []byte(msg)
}

func mk2Frame(body ...byte) []byte {
	return append(append([]byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x18}, body...), 0xF7)
}

func TestEncodeMk2(t *testing.T) {
	c := NewCodec(nil)

	tests := []struct {
		name string
		cmd  Command
		want []byte
	}{
		{"light all", LightAll{Color: 5}, mk2Frame(0x0E, 0x05)},
		{"light single", LightSingle{Location: grid.Pad(0, 0), Color: 5}, mk2Frame(0x0A, 0x0B, 0x05)},
		{"light single top button", LightSingle{Location: grid.Button(2, grid.Top), Color: 1}, mk2Frame(0x0A, 106, 1)},
		{"flash", FlashSingle{Location: grid.Pad(1, 0), Color: 9}, mk2Frame(0x23, 0x00, 12, 9)},
		{"pulse", PulseSingle{Location: grid.Button(0, grid.Right), Color: 9}, mk2Frame(0x28, 0x00, 19, 9)},
		{"row", LightRow{Row: 8, Color: 3}, mk2Frame(0x0D, 8, 3)},
		{"column", LightColumn{Column: 2, Color: 3}, mk2Frame(0x0C, 2, 3)},
		{"rgb", LightSingleRGB{Location: grid.Pad(7, 7), Color: color.RGB{R: 255, G: 128, B: 3}}, mk2Frame(0x0B, 88, 63, 32, 0)},
		{"scroll", ScrollText{Text: "Hi" + ScrollFast + "!", Loop: true, Color: 21}, mk2Frame(0x14, 21, 1, 'H', 'i', 0x05, '!')},
		{"scroll cancel", ScrollText{}, mk2Frame(0x14, 0, 0)},
		{"layout", SelectLayout{Layout: LayoutVolume}, mk2Frame(0x22, 4)},
		{"fader", SetupFader{Index: 3, Type: FaderPan, Color: 45, Value: 64}, mk2Frame(0x2B, 3, 1, 45, 64)},
		{"multi", LightMulti{LEDs: []LED{{grid.Pad(0, 0), 1}, {grid.Pad(1, 1), 2}}}, mk2Frame(0x0A, 11, 1, 22, 2)},
		{"multi rgb", LightMultiRGB{LEDs: []RGBLED{{grid.Pad(0, 0), color.RGB{R: 4, G: 8, B: 12}}}}, mk2Frame(0x0B, 11, 1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encode(t, c, tt.cmd))
		})
	}
}

func TestEncodeLightMultiTruncates(t *testing.T) {
	c := NewCodec(grid.Mk2)

	leds := make([]LED, 0, 81)
	for i := 0; i < 81; i++ {
		leds = append(leds, LED{Location: grid.Pad(i%8, (i/8)%8), Color: uint8(i)})
	}

	msg := encode(t, c, LightMulti{LEDs: leds})
	// header(6) + opcode + 80 pairs + F7
	assert.Len(t, msg, 6+1+2*80+1)
	assert.Equal(t, byte(79), msg[len(msg)-2])

	rgb := make([]RGBLED, 100)
	for i := range rgb {
		rgb[i] = RGBLED{Location: grid.Pad(0, 0)}
	}
	assert.Len(t, encode(t, c, LightMultiRGB{LEDs: rgb}), 6+1+4*80+1)
}

func TestEncodeRejectsInvalidLocation(t *testing.T) {
	c := NewCodec(grid.Mk2)

	for _, cmd := range []Command{
		LightSingle{Location: grid.Pad(8, 0)},
		FlashSingle{Location: grid.Pad(0, -1)},
		PulseSingle{Location: grid.Button(8, grid.Top)},
		LightSingleRGB{Location: grid.Button(0, grid.Bottom)},
		LightMulti{LEDs: []LED{{grid.Pad(0, 0), 1}, {grid.Pad(9, 9), 1}}},
		LightMultiRGB{LEDs: []RGBLED{{Location: grid.Pad(-1, 0)}}},
		LightRow{Row: 9},
		LightColumn{Column: -1},
	} {
		msg, err := c.Encode(cmd)
		assert.ErrorIs(t, err, grid.ErrInvalidLocation, "%#v", cmd)
		assert.Nil(t, msg)
	}
}

func TestEncodeRejectsInvalidArguments(t *testing.T) {
	c := NewCodec(grid.Mk2)

	_, err := c.Encode(LightAll{Color: 128})
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = c.Encode(LightSingle{Location: grid.Pad(0, 0), Color: 200})
	assert.ErrorIs(t, err, ErrInvalidColor)

	_, err = c.Encode(ScrollText{Text: "héllo"})
	assert.ErrorIs(t, err, ErrInvalidText)

	_, err = c.Encode(ScrollText{Text: "a\x00b"})
	assert.ErrorIs(t, err, ErrInvalidText)

	_, err = c.Encode(SetupFader{Index: 0, Type: FaderType(2)})
	assert.ErrorIs(t, err, ErrInvalidFader)

	_, err = c.Encode(SetupFader{Index: 8})
	assert.ErrorIs(t, err, ErrInvalidFader)

	_, err = c.Encode(SetupFader{Index: 0, Value: 128})
	assert.ErrorIs(t, err, ErrInvalidFader)

	_, err = c.Encode(SelectLayout{Layout: Layout(9)})
	assert.Error(t, err)
}

func TestEncodeScrollSpeedBytes(t *testing.T) {
	c := NewCodec(grid.Mk2)
	text := ScrollSlowest + ScrollSlower + ScrollSlow + ScrollNormal + ScrollFast + ScrollFaster + ScrollFastest

	got := encode(t, c, ScrollText{Text: text, Color: 5})
	assert.Equal(t, mk2Frame(0x14, 5, 0, 1, 2, 3, 4, 5, 6, 7), got)
}

func TestEncodePro(t *testing.T) {
	c := NewCodec(grid.Pro)
	frame := func(body ...byte) []byte {
		return append(append([]byte{0xF0, 0x00, 0x20, 0x29, 0x02, 0x10}, body...), 0xF7)
	}

	assert.Equal(t, frame(0x0E, 0), encode(t, c, LightAll{}))
	assert.Equal(t, frame(0x23, 11, 5), encode(t, c, FlashSingle{Location: grid.Pad(0, 0), Color: 5}))
	assert.Equal(t, frame(0x0A, 91, 5), encode(t, c, LightSingle{Location: grid.Button(0, grid.Top), Color: 5}))
	assert.Equal(t, frame(0x0A, 10, 5), encode(t, c, LightSingle{Location: grid.Button(0, grid.Left), Color: 5}))

	row := encode(t, c, LightRow{Row: 9, Color: 7})
	assert.Equal(t, frame(0x0D, 9, 7, 7, 7, 7, 7, 7, 7, 7, 7, 7), row)
}

func TestEncodeShort(t *testing.T) {
	c := NewCodec(grid.Mk2)

	msg, err := c.EncodeShort(FlashSingle{Location: grid.Pad(0, 0), Color: 5})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x91, 11, 5}, []byte(msg))

	msg, err = c.EncodeShort(PulseSingle{Location: grid.Button(7, grid.Top), Color: 60})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x92, 111, 60}, []byte(msg))

	_, err = c.EncodeShort(LightAll{})
	assert.ErrorIs(t, err, ErrNoShortForm)

	_, err = c.EncodeShort(FlashSingle{Location: grid.Pad(8, 8)})
	assert.ErrorIs(t, err, grid.ErrInvalidLocation)
}

func TestDecode(t *testing.T) {
	c := NewCodec(grid.Mk2)

	ev, ok := c.Decode([]byte{0x90, 11, 0})
	require.True(t, ok)
	assert.Equal(t, Event{Type: Release, Location: grid.Pad(0, 0)}, ev)

	ev, ok = c.Decode([]byte{0x90, 11, 127})
	require.True(t, ok)
	assert.Equal(t, Event{Type: Press, Location: grid.Pad(0, 0), Value: 127}, ev)

	ev, ok = c.Decode([]byte{0x90, 19, 127})
	require.True(t, ok)
	assert.Equal(t, grid.Button(0, grid.Right), ev.Location)

	ev, ok = c.Decode([]byte{0xB0, 104, 127})
	require.True(t, ok)
	assert.Equal(t, Event{Type: Press, Location: grid.Button(0, grid.Top), Value: 127}, ev)

	_, ok = c.Decode([]byte{0x90, 99, 64})
	assert.False(t, ok)

	_, ok = c.Decode([]byte{0x90, 11})
	assert.False(t, ok)

	_, ok = c.Decode(nil)
	assert.False(t, ok)
}

func TestDecodeFader(t *testing.T) {
	c := NewCodec(grid.Mk2)

	ev, ok := c.Decode([]byte{0xB0, 21, 100})
	require.True(t, ok)
	assert.Equal(t, Event{Type: FaderUpdate, Fader: 0, Value: 100}, ev)

	ev, ok = c.Decode([]byte{0xB0, 28, 0})
	require.True(t, ok)
	assert.Equal(t, Event{Type: FaderUpdate, Fader: 7, Value: 0}, ev)

	// the same numbers as notes are pads
	ev, ok = c.Decode([]byte{0x90, 21, 100})
	require.True(t, ok)
	assert.Equal(t, Press, ev.Type)
	assert.Equal(t, grid.Pad(0, 1), ev.Location)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "press Pad(0, 0)", Event{Type: Press, Location: grid.Pad(0, 0)}.String())
	assert.Equal(t, "fader 2 = 9", Event{Type: FaderUpdate, Fader: 2, Value: 9}.String())
}
