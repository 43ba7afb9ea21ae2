package midi

import (
	"errors"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"

	"go-launchpad/grid"
)

var (
	// ErrNoDevicesFound is returned when no port matches the profile.
	ErrNoDevicesFound = errors.New("no Launchpad found")
	// ErrScanTimeout is returned when the MIDI driver does not answer a port
	// scan in time. On macOS this usually means CoreMIDI is hung
	// (sudo killall coreaudiod midiserver).
	ErrScanTimeout = errors.New("MIDI port scan timed out")
)

// DefaultScanTimeout bounds port enumeration when no timeout is given.
const DefaultScanTimeout = 3 * time.Second

// PortPair is an input and output port belonging to one device.
type PortPair struct {
	Name string
	In   drivers.In
	Out  drivers.Out
}

// Ports lists the port names seen by the driver.
type Ports struct {
	In  []string
	Out []string
}

type scanResult struct {
	ins  []drivers.In
	outs []drivers.Out
}

// getPorts asks the registered driver for its ports. It may hang.
var getPorts = func() ([]drivers.In, []drivers.Out) {
	return gomidi.GetInPorts(), gomidi.GetOutPorts()
}

// scan enumerates ports, giving up after timeout.
func scan(timeout time.Duration) ([]drivers.In, []drivers.Out, error) {
	if timeout <= 0 {
		timeout = DefaultScanTimeout
	}

	ch := make(chan scanResult, 1)
	go func() {
		ins, outs := getPorts()
		ch <- scanResult{ins: ins, outs: outs}
	}()

	select {
	case r := <-ch:
		return r.ins, r.outs, nil
	case <-time.After(timeout):
		return nil, nil, ErrScanTimeout
	}
}

// ListPorts returns the names of every input and output port.
func ListPorts(timeout time.Duration) (Ports, error) {
	ins, outs, err := scan(timeout)
	if err != nil {
		return Ports{}, err
	}
	var ports Ports
	for _, in := range ins {
		ports.In = append(ports.In, in.String())
	}
	for _, out := range outs {
		ports.Out = append(ports.Out, out.String())
	}
	return ports, nil
}

// Matcher reports whether a port name belongs to the wanted device.
type Matcher func(name string) bool

// MatchProfile matches ports of the model described by p.
func MatchProfile(p *grid.Profile) Matcher {
	return p.MatchesPort
}

// MatchName matches ports whose name contains name, ignoring case.
func MatchName(name string) Matcher {
	name = strings.ToLower(name)
	return func(port string) bool {
		return strings.Contains(strings.ToLower(port), name)
	}
}

type pairIndex struct {
	name    string
	in, out int
}

// pairNames matches every input accepted by match with the output of the
// same name. Inputs without an output are skipped.
func pairNames(match Matcher, ins, outs []string) []pairIndex {
	var pairs []pairIndex
	for i, in := range ins {
		if !match(in) {
			continue
		}
		for j, out := range outs {
			if strings.EqualFold(in, out) {
				pairs = append(pairs, pairIndex{name: in, in: i, out: j})
				break
			}
		}
	}
	return pairs
}

// Find returns every device port pair accepted by match.
func Find(match Matcher, timeout time.Duration) ([]PortPair, error) {
	ins, outs, err := scan(timeout)
	if err != nil {
		return nil, err
	}

	inNames := make([]string, len(ins))
	for i, in := range ins {
		inNames[i] = in.String()
	}
	outNames := make([]string, len(outs))
	for i, out := range outs {
		outNames[i] = out.String()
	}

	var pairs []PortPair
	for _, idx := range pairNames(match, inNames, outNames) {
		pairs = append(pairs, PortPair{Name: idx.name, In: ins[idx.in], Out: outs[idx.out]})
	}
	return pairs, nil
}

// Autodetect opens the first device accepted by match.
func Autodetect(match Matcher, timeout time.Duration) (*Transport, error) {
	pairs, err := Find(match, timeout)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 {
		return nil, ErrNoDevicesFound
	}
	return Open(pairs[0])
}
