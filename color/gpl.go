package color

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadGPL reads a GIMP palette file.
func LoadGPL(path string) (Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p, err := ParseGPL(f)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	return p, nil
}

// ParseGPL parses GIMP palette data. Only the first three fields (R G B) of
// each color line are used.
func ParseGPL(r io.Reader) (Palette, error) {
	var p Palette
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip headers and comments
		if line == "" || line[0] == '#' || strings.HasPrefix(line, "GIMP") ||
			strings.HasPrefix(line, "Name:") || strings.HasPrefix(line, "Columns") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		var ch [3]uint8
		ok := true
		for i := range ch {
			v, err := strconv.ParseUint(fields[i], 10, 8)
			if err != nil {
				ok = false
				break
			}
			ch[i] = uint8(v)
		}
		if ok {
			p = append(p, RGB{ch[0], ch[1], ch[2]})
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(p) == 0 {
		return nil, fmt.Errorf("no colors found")
	}

	return p, nil
}

// WriteGPL writes the palette as a GIMP palette file. Each entry is named
// after its index so the file can be used as a raw color code reference.
func (p Palette) WriteGPL(w io.Writer, name string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "GIMP Palette\nName: %s\nColumns: 8\n#\n", name)
	for i, c := range p {
		fmt.Fprintf(bw, "%3d %3d %3d\t%d\n", c.R, c.G, c.B, i)
	}
	return bw.Flush()
}
