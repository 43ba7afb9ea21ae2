package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lucasb-eyer/go-colorful"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-launchpad/color"
	"go-launchpad/config"
	"go-launchpad/debug"
	"go-launchpad/grid"
	"go-launchpad/launchpad"
	"go-launchpad/midi"
	"go-launchpad/protocol"
	"go-launchpad/theme"
	"go-launchpad/tui"
	"go-launchpad/widgets"
)

func main() {
	args, debugFlag := stripFlag(os.Args[1:], "--debug")

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Debug || debugFlag {
		if err := debug.Enable(debug.DefaultPath()); err != nil {
			fmt.Printf("Error enabling debug log: %v\n", err)
		}
		defer debug.Disable()
	}

	if len(args) < 1 {
		usage()
		return
	}

	switch args[0] {
	case "list", "--list":
		err = listPorts(cfg)
	case "detect":
		err = detect(cfg)
	case "palette":
		err = showPalette(cfg, args[1:])
	case "demo":
		err = demo(cfg)
	case "monitor":
		err = monitor(cfg)
	default:
		usage()
	}
	gomidi.CloseDriver()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("launchctl - Novation Launchpad control")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list              - List all MIDI ports")
	fmt.Println("  detect            - Find Launchpads")
	fmt.Println("  palette [--export FILE]")
	fmt.Println("                    - Show the color palette or save it as GIMP .gpl")
	fmt.Println("  demo              - Run an LED demo")
	fmt.Println("  monitor           - Live view of pad presses")
	fmt.Println("")
	fmt.Println("Flags:")
	fmt.Println("  --debug           - Log to ~/.config/go-launchpad/debug.log")
}

func stripFlag(args []string, flag string) ([]string, bool) {
	out := args[:0:0]
	found := false
	for _, a := range args {
		if a == flag {
			found = true
			continue
		}
		out = append(out, a)
	}
	return out, found
}

func matcher(cfg *config.Config, p *grid.Profile) midi.Matcher {
	if cfg.PortName != "" {
		return midi.MatchName(cfg.PortName)
	}
	return midi.MatchProfile(p)
}

func options(cfg *config.Config, p *grid.Profile) []launchpad.Option {
	opts := []launchpad.Option{launchpad.WithProfile(p)}
	if cfg.ShortMessages {
		opts = append(opts, launchpad.WithShortMessages())
	}
	return opts
}

func listPorts(cfg *config.Config) error {
	fmt.Printf("(waiting up to %s...)\n", cfg.ScanTimeout())
	ports, err := midi.ListPorts(cfg.ScanTimeout())
	if err != nil {
		return err
	}

	fmt.Println("=== MIDI Input Ports ===")
	for i, name := range ports.In {
		fmt.Printf("  %d: %s\n", i, name)
	}
	fmt.Println("\n=== MIDI Output Ports ===")
	for i, name := range ports.Out {
		fmt.Printf("  %d: %s\n", i, name)
	}
	return nil
}

func detect(cfg *config.Config) error {
	p, err := cfg.Profile()
	if err != nil {
		return err
	}
	fmt.Printf("Looking for %s...\n", p.PortMatch)

	pairs, err := midi.Find(matcher(cfg, p), cfg.ScanTimeout())
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return midi.ErrNoDevicesFound
	}
	for _, pair := range pairs {
		fmt.Printf("Found: %s\n", pair.Name)
	}
	return nil
}

func loadPalette(cfg *config.Config) (color.Palette, error) {
	if cfg.PalettePath == "" {
		return color.Default(), nil
	}
	return color.LoadGPL(cfg.PalettePath)
}

func showPalette(cfg *config.Config, args []string) error {
	p, err := loadPalette(cfg)
	if err != nil {
		return err
	}

	if len(args) == 2 && args[0] == "--export" {
		f, err := os.Create(args[1])
		if err != nil {
			return err
		}
		if err := p.WriteGPL(f, "Launchpad"); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("Wrote %d colors to %s\n", len(p), args[1])
		return nil
	}

	fmt.Println(widgets.RenderPalette(theme.New(p), 16))
	return nil
}

func openDevice(cfg *config.Config) (*launchpad.Launchpad, error) {
	p, err := cfg.Profile()
	if err != nil {
		return nil, err
	}
	t, err := midi.Autodetect(matcher(cfg, p), cfg.ScanTimeout())
	if err != nil {
		return nil, err
	}
	fmt.Printf("Using: %s\n", t.Name())

	lp, err := launchpad.New(t, options(cfg, p)...)
	if err != nil {
		t.Close()
		return nil, err
	}
	return lp, nil
}

func demo(cfg *config.Config) error {
	lp, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer lp.Close()
	p := lp.Profile()

	step := func(name string, err error) error {
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		fmt.Println(name)
		time.Sleep(500 * time.Millisecond)
		return nil
	}

	if err := step("All red", lp.LightAll(5)); err != nil {
		return err
	}
	if err := step("Clear", lp.Clear()); err != nil {
		return err
	}
	for y := 0; y < p.Size; y++ {
		if err := lp.LightRow(y, uint8(13+y*4)); err != nil {
			return err
		}
		time.Sleep(60 * time.Millisecond)
	}
	if err := step("Column", lp.LightColumn(0, 3)); err != nil {
		return err
	}

	// Hue sweep, matched to the palette per pad.
	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			r, g, b := colorful.Hsv(float64(x+y*p.Size)*360/float64(p.Size*p.Size), 1, 1).RGB255()
			if err := lp.LightFuzzyRGB(grid.Pad(x, y), color.RGB{R: r, G: g, B: b}); err != nil {
				return err
			}
		}
	}
	if err := step("Palette rainbow", nil); err != nil {
		return err
	}

	// Same sweep in true color, batched.
	leds := make([]protocol.RGBLED, 0, p.Size*p.Size)
	for y := 0; y < p.Size; y++ {
		for x := 0; x < p.Size; x++ {
			c := colorful.Hsv(float64(x*45), 1, float64(y+1)/float64(p.Size))
			r, g, b := c.RGB255()
			leds = append(leds, protocol.RGBLED{Location: grid.Pad(x, y), Color: color.RGB{R: r, G: g, B: b}})
		}
	}
	if err := step("RGB gradient", lp.LightMultiRGB(leds)); err != nil {
		return err
	}

	if err := lp.FlashSingle(grid.Pad(0, 0), 5); err != nil {
		return err
	}
	if err := step("Flash and pulse", lp.PulseSingle(grid.Pad(p.Size-1, p.Size-1), 45)); err != nil {
		return err
	}

	if err := step("Scroll", lp.ScrollText(protocol.ScrollFast+"go-launchpad", false, 53)); err != nil {
		return err
	}
	time.Sleep(4 * time.Second)
	return lp.Clear()
}

func monitor(cfg *config.Config) error {
	p, err := cfg.Profile()
	if err != nil {
		return err
	}
	palette, err := loadPalette(cfg)
	if err != nil {
		return err
	}

	w := midi.NewWatcher(matcher(cfg, p), cfg.ScanTimeout(), options(cfg, p)...)
	ctx, cancel := context.WithCancel(context.Background())
	go w.Run(ctx)

	fmt.Println("Connect a Launchpad any time - it will be detected automatically")

	m := tui.NewModel(w, theme.New(palette), p)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err = prog.Run()

	// Run closes the events channel once every device is closed.
	cancel()
	for range w.Events() {
	}
	return err
}
