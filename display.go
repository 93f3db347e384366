// Package sevenseg drives a 4-digit seven-segment LED display through two
// daisy-chained 74HC595 shift registers (using periph.io for the GPIO or SPI
// side). Only one digit is lit at a time; a periodic refresh cycles through
// them fast enough that all four appear lit.
package sevenseg // import "github.com/DrJosh9000/sevenseg"

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/spi"
)

const (
	// Digits is the number of digits on the display.
	Digits = 4

	// DefaultPeriod is the time each digit stays lit. Four of them make up
	// a 16ms cycle, which is about as slow as it can go without flicker.
	DefaultPeriod = 4000 * time.Microsecond

	// DefaultStep is the usual delay between Scroll steps.
	DefaultStep = 200 * time.Millisecond
)

var (
	// ErrConfigured is returned by Configure when called more than once.
	ErrConfigured = errors.New("sevenseg: already configured")

	// ErrNoPin is returned by Configure when a required pin is nil.
	ErrNoPin = errors.New("sevenseg: missing pin")
)

// OutPin is the part of gpio.PinOut used by Display. Any gpio.PinIO from
// gpioreg will do.
type OutPin interface {
	Out(l gpio.Level) error
}

// Display implements a driver for a 4-digit seven-segment display wired to a
// pair of 74HC595s: the first register (nearest DIN after shifting) drives the
// segments, the second drives the digit-enable lines.
//
// LD is connected to ST_CP, CLK to SH_CP and DIN to DS. If SPI is provided
// then CLK and DIN are not used (MOSI and SCLK should be wired to DS and SH_CP
// instead). Timer, Period, Clock and ErrorLog are optional.
//
// Position 0 is the leftmost digit: SetString("TEST") puts the first T in
// position 0.
type Display struct {
	LD, CLK, DIN OutPin   // latch, shift clock, serial data
	Anode        bool     // true for common anode digits
	SPI          spi.Conn // optional, replaces CLK and DIN

	Timer      Timer           // optional, TickerTimer on Clock if nil
	Period     time.Duration   // optional, DefaultPeriod if zero
	Clock      clockwork.Clock // optional, used for Scroll delays
	ClockDelay time.Duration   // optional, half-period of CLK when bit-banging
	ErrorLog   *log.Logger     // optional, refresh errors are dropped if nil

	mask       uint8
	digits     [Digits]atomic.Uint32 // Font indexes
	cursor     int                   // owned by tick
	failing    bool                  // owned by tick
	configured atomic.Bool

	wire   sync.Mutex // held for each render by tick and Halt
	halted bool       // guarded by wire
}

// New returns a Display using ld, clk, and din. It must still be configured.
func New(ld, clk, din OutPin, anode bool) *Display {
	return &Display{LD: ld, CLK: clk, DIN: din, Anode: anode}
}

// String implements conn.Resource.
func (d *Display) String() string {
	return fmt.Sprintf("sevenseg{anode: %t, text: %q}", d.Anode, d.Text())
}

// Configure sets the pins up as outputs, clears the display, and starts the
// refresh. The refresh stops when ctx is done. It must be called exactly once,
// before anything is displayed.
func (d *Display) Configure(ctx context.Context) error {
	if d.LD == nil || (d.SPI == nil && (d.CLK == nil || d.DIN == nil)) {
		return ErrNoPin
	}
	if !d.configured.CompareAndSwap(false, true) {
		return ErrConfigured
	}
	ok := false
	defer func() {
		if !ok {
			d.configured.Store(false)
		}
	}()

	pins := []OutPin{d.LD}
	if d.SPI == nil {
		pins = append(pins, d.DIN, d.CLK)
	}
	for _, p := range pins {
		if err := p.Out(gpio.Low); err != nil {
			return fmt.Errorf("sevenseg: %w", err)
		}
	}

	d.mask = 0x00
	if d.Anode {
		d.mask = 0xff
	}
	d.Clear()
	d.cursor = 0

	period := d.Period
	if period <= 0 {
		period = DefaultPeriod
	}
	timer := d.Timer
	if timer == nil {
		timer = TickerTimer{Clock: d.Clock}
	}
	timer.AttachPeriodic(ctx, period, d.tick)
	ok = true
	return nil
}

// tick lights the digit at the cursor and moves the cursor on to the next one.
func (d *Display) tick() {
	d.wire.Lock()
	defer d.wire.Unlock()
	if d.halted {
		return
	}
	p := d.cursor
	err := d.render(Font[d.digits[p].Load()], p)
	switch {
	case err != nil && !d.failing:
		d.failing = true
		if d.ErrorLog != nil {
			d.ErrorLog.Printf("sevenseg: refresh digit %d: %v", p, err)
		}
	case err == nil:
		d.failing = false
	}
	d.cursor = (p + 1) & (Digits - 1)
}

// Clear blanks all digits.
func (d *Display) Clear() {
	for i := range d.digits {
		d.digits[i].Store(uint32(Blank))
	}
}

// SetChar displays ch at position (0 - 3). Lowercase letters are shown as
// uppercase, and anything else the font lacks is shown as a space.
func (d *Display) SetChar(position int, ch byte) {
	if position < 0 || position >= Digits {
		return
	}
	d.digits[position].Store(uint32(Index(ch)))
}

// SetString displays the first four bytes of s. If s is shorter, the rest of
// the display is blank.
//
// Each digit is stored separately, so one refresh might show a mix of the old
// and new text.
func (d *Display) SetString(s string) {
	for i := Digits - 1; i >= 0; i-- {
		var ch byte
		if j := -(i - 3); j < len(s) {
			ch = s[j]
		}
		d.SetChar(i, ch)
	}
}

// Text returns what is currently displayed. Lowercase letters come back as
// uppercase.
func (d *Display) Text() string {
	var sb strings.Builder
	for i := range d.digits {
		sb.WriteByte(byte(d.digits[i].Load()) + fontFirst)
	}
	return sb.String()
}

// Scroll shows s four characters at a time, moving along by stride (at
// least 1) and waiting step after each window. The text ends at the first
// NUL. It blocks until the last window has been shown for step, or ctx is
// done.
func (d *Display) Scroll(ctx context.Context, s string, step time.Duration, stride int) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	if stride < 1 {
		stride = 1
	}
	clk := d.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	for off := 0; off+3 < len(s); off += stride {
		d.SetString(s[off:])
		if step <= 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			continue
		}
		select {
		case <-clk.After(step):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
