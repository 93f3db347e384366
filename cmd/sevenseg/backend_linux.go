package main

import (
	"io"

	"github.com/DrJosh9000/sevenseg"
	"github.com/DrJosh9000/sevenseg/pins"
	"github.com/DrJosh9000/sevenseg/sim"
)

func openLines(c *config, d *sevenseg.Display) (*sevenseg.Display, *sim.Panel, io.Closer, error) {
	nums, err := pinNumbers(c)
	if err != nil {
		return nil, nil, nil, err
	}
	var lines []*pins.Line
	closeAll := closerFunc(func() error {
		for _, l := range lines {
			l.Close()
		}
		return nil
	})
	for _, n := range nums {
		l, err := pins.RequestLine(c.Chip, n)
		if err != nil {
			closeAll()
			return nil, nil, nil, err
		}
		lines = append(lines, l)
	}
	d.LD, d.CLK, d.DIN = lines[0], lines[1], lines[2]
	return d, nil, closeAll, nil
}
