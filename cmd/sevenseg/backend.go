package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/DrJosh9000/sevenseg"
	"github.com/DrJosh9000/sevenseg/pins"
	"github.com/DrJosh9000/sevenseg/sim"
	"github.com/stianeikeland/go-rpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"
)

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openDisplay builds a Display on the configured backend. The returned closer
// releases whatever the backend opened. panel is only set for the sim backend.
func openDisplay(c *config) (d *sevenseg.Display, panel *sim.Panel, closer io.Closer, err error) {
	d = &sevenseg.Display{Anode: c.Anode, Period: c.Period}
	closer = closerFunc(func() error { return nil })

	switch c.Backend {
	case "sim":
		panel = sim.NewPanel(c.Anode)
		d.LD, d.CLK, d.DIN = panel.LD, panel.CLK, panel.DIN

	case "periph":
		if _, err := host.Init(); err != nil {
			return nil, nil, nil, err
		}
		for _, p := range []struct {
			name string
			pin  *sevenseg.OutPin
		}{{c.Latch, &d.LD}, {c.Clock, &d.CLK}, {c.Data, &d.DIN}} {
			if c.SPI != "" && p.pin != &d.LD {
				continue
			}
			gp := gpioreg.ByName(p.name)
			if gp == nil {
				return nil, nil, nil, fmt.Errorf("no GPIO pin named %q", p.name)
			}
			*p.pin = gp
		}
		if c.SPI != "" {
			port, err := spireg.Open(c.SPI)
			if err != nil {
				return nil, nil, nil, err
			}
			conn, err := port.Connect(physic.MegaHertz, spi.Mode0, 8)
			if err != nil {
				port.Close()
				return nil, nil, nil, err
			}
			d.SPI = conn
			closer = port
		}

	case "rpio":
		nums, err := pinNumbers(c)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := rpio.Open(); err != nil {
			return nil, nil, nil, err
		}
		d.LD, d.CLK, d.DIN = pins.NewRPIO(nums[0]), pins.NewRPIO(nums[1]), pins.NewRPIO(nums[2])
		closer = closerFunc(rpio.Close)

	case "gpiocdev":
		return openLines(c, d)

	default:
		return nil, nil, nil, fmt.Errorf("unknown backend %q", c.Backend)
	}
	return d, panel, closer, nil
}

// pinNumbers parses the latch, clock and data pins as numbers.
func pinNumbers(c *config) ([3]int, error) {
	var nums [3]int
	for i, s := range []string{c.Latch, c.Clock, c.Data} {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nums, fmt.Errorf("%s backend needs numbered pins: %w", c.Backend, err)
		}
		nums[i] = n
	}
	return nums, nil
}
