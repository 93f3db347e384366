//go:build !linux

package main

import (
	"errors"
	"io"

	"github.com/DrJosh9000/sevenseg"
	"github.com/DrJosh9000/sevenseg/sim"
)

func openLines(*config, *sevenseg.Display) (*sevenseg.Display, *sim.Panel, io.Closer, error) {
	return nil, nil, nil, errors.New("the gpiocdev backend is only available on linux")
}
