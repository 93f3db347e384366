// Package sim decodes the sevenseg wire protocol into the digits a real
// display would show, for running without hardware.
package sim

import (
	"fmt"
	"math/bits"
	"strings"
	"sync"

	"periph.io/x/conn/v3/gpio"
)

type role int

const (
	roleLD role = iota
	roleCLK
	roleDIN
)

// Pin is one of the three inputs of a Panel.
type Pin struct {
	p    *Panel
	role role
}

// Out drives the pin.
func (p *Pin) Out(l gpio.Level) error {
	p.p.out(p.role, l)
	return nil
}

func (p *Pin) String() string {
	return [...]string{"sim/LD", "sim/CLK", "sim/DIN"}[p.role]
}

// Panel models two chained 74HC595s driving four digits. Bits are shifted in
// on the rising edge of CLK and copied to the outputs on the rising edge of
// LD. Anode must match the display driving it.
type Panel struct {
	Anode bool

	LD, CLK, DIN *Pin

	mu     sync.Mutex
	din    gpio.Level
	clk    gpio.Level
	ld     gpio.Level
	chain  uint16 // bit 0 is Q0 of the segment register, bit 8 is Q0 of the digit register
	digits [4]uint8
	frames int
}

// NewPanel returns a Panel with its pins ready to use.
func NewPanel(anode bool) *Panel {
	p := &Panel{Anode: anode}
	p.LD = &Pin{p: p, role: roleLD}
	p.CLK = &Pin{p: p, role: roleCLK}
	p.DIN = &Pin{p: p, role: roleDIN}
	return p
}

func (p *Panel) out(r role, l gpio.Level) {
	p.mu.Lock()
	defer p.mu.Unlock()
	switch r {
	case roleDIN:
		p.din = l
	case roleCLK:
		if l && !p.clk {
			p.chain <<= 1
			if p.din {
				p.chain |= 1
			}
		}
		p.clk = l
	case roleLD:
		if l && !p.ld {
			p.latch()
		}
		p.ld = l
	}
}

// latch works out which digit is enabled and what it shows. When several
// digit lines are active the highest one gets the pattern.
func (p *Panel) latch() {
	var mask uint8
	if p.Anode {
		mask = 0xff
	}
	// The register outputs come out in the reverse of the shifted bit order.
	sel := bits.Reverse8(uint8(p.chain>>8)) ^ mask ^ 0xff
	seg := bits.Reverse8(uint8(p.chain)) ^ mask
	p.frames++
	for d := 3; d >= 0; d-- {
		if sel&(0x80>>d) != 0 {
			p.digits[d] = seg
			return
		}
	}
}

// Digits returns the pattern last shown on each digit, in Font bit order.
func (p *Panel) Digits() [4]uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.digits
}

// Frames returns the number of latch pulses seen.
func (p *Panel) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

// Lines draws the digits as three lines of text.
func (p *Panel) Lines() [3]string {
	var rows [3]strings.Builder
	for _, s := range p.Digits() {
		seg := func(bit uint8, on string) string {
			if s&bit != 0 {
				return on
			}
			return " "
		}
		fmt.Fprintf(&rows[0], " %s  ", seg(0x80, "_"))
		fmt.Fprintf(&rows[1], "%s%s%s ", seg(0x04, "|"), seg(0x02, "_"), seg(0x40, "|"))
		fmt.Fprintf(&rows[2], "%s%s%s%s", seg(0x08, "|"), seg(0x10, "_"), seg(0x20, "|"), seg(0x01, "."))
	}
	return [3]string{rows[0].String(), rows[1].String(), rows[2].String()}
}

func (p *Panel) String() string {
	l := p.Lines()
	return strings.Join(l[:], "\n")
}
