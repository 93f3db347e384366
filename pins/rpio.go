// Package pins adapts GPIO libraries other than periph.io to sevenseg.OutPin.
package pins

import (
	"fmt"

	"github.com/stianeikeland/go-rpio"
	"periph.io/x/conn/v3/gpio"
)

// RPIO is a BCM pin driven through go-rpio's /dev/gpiomem mapping. rpio.Open
// must have been called first.
type RPIO struct {
	Pin rpio.Pin
}

// NewRPIO returns the BCM pin n, set as an output.
func NewRPIO(n int) *RPIO {
	p := rpio.Pin(n)
	p.Output()
	return &RPIO{Pin: p}
}

// Out sets the pin high or low.
func (r *RPIO) Out(l gpio.Level) error {
	if l {
		r.Pin.High()
	} else {
		r.Pin.Low()
	}
	return nil
}

func (r *RPIO) String() string {
	return fmt.Sprintf("rpio/GPIO%d", int(r.Pin))
}
