package sevenseg

import (
	"fmt"
	"math/bits"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// render shows pattern on a single digit. The first byte shifted out selects
// the digit (it ends up in the second register of the chain), the second byte
// carries the segments. Both are inverted for common anode displays.
func (d *Display) render(pattern uint8, position int) error {
	// Hold the previous frame while shifting.
	if err := d.LD.Out(gpio.Low); err != nil {
		return err
	}
	sel := (d.mask ^ 0x7f) >> position
	seg := d.mask ^ pattern
	if d.SPI != nil {
		// SPI is MSB first; the registers expect LSB first.
		w := []byte{bits.Reverse8(sel), bits.Reverse8(seg)}
		if err := d.SPI.Tx(w, nil); err != nil {
			return err
		}
	} else {
		if err := d.shiftOut(sel); err != nil {
			return err
		}
		if err := d.shiftOut(seg); err != nil {
			return err
		}
	}
	// Rising edge copies the shift registers to the outputs.
	return d.LD.Out(gpio.High)
}

// shiftOut clocks b out on DIN, least significant bit first. The registers
// read DIN on the rising edge of CLK.
func (d *Display) shiftOut(b uint8) error {
	for i := 0; i < 8; i++ {
		if err := d.DIN.Out(b&1 == 1); err != nil {
			return err
		}
		b >>= 1

		if err := d.CLK.Out(gpio.High); err != nil {
			return err
		}
		d.pause()
		if err := d.CLK.Out(gpio.Low); err != nil {
			return err
		}
		d.pause()
	}
	return nil
}

func (d *Display) pause() {
	if d.ClockDelay > 0 {
		time.Sleep(d.ClockDelay)
	}
}

// Halt blanks every digit on the wire and stops the refresh from drawing
// anything further. It waits for a refresh already in progress to finish.
func (d *Display) Halt() error {
	d.wire.Lock()
	defer d.wire.Unlock()
	d.halted = true
	for p := 0; p < Digits; p++ {
		if err := d.render(Font[Blank], p); err != nil {
			return fmt.Errorf("sevenseg: %w", err)
		}
	}
	return nil
}
