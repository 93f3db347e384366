//go:build linux

package pins

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"
	"periph.io/x/conn/v3/gpio"
)

// Line is a GPIO line requested through the character device (gpiochipN).
type Line struct {
	chip   string
	offset int
	l      *gpiocdev.Line
}

// RequestLine requests offset on chip (e.g. "gpiochip0") as an output, driven
// low.
func RequestLine(chip string, offset int) (*Line, error) {
	l, err := gpiocdev.RequestLine(chip, offset, gpiocdev.AsOutput(0))
	if err != nil {
		return nil, fmt.Errorf("pins: request %s line %d: %w", chip, offset, err)
	}
	return &Line{chip: chip, offset: offset, l: l}, nil
}

// Out sets the line value.
func (p *Line) Out(l gpio.Level) error {
	v := 0
	if l {
		v = 1
	}
	return p.l.SetValue(v)
}

// Close releases the line.
func (p *Line) Close() error {
	return p.l.Close()
}

func (p *Line) String() string {
	return fmt.Sprintf("%s/%d", p.chip, p.offset)
}
