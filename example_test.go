package sevenseg

import (
	"context"
	"os"
	"time"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

func ExampleDisplay() {
	host.Init()
	d := &Display{
		LD:  gpioreg.ByName("17"), // ST_CP
		CLK: gpioreg.ByName("27"), // SH_CP
		DIN: gpioreg.ByName("22"), // DS
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := d.Configure(ctx); err != nil {
		cancel()
		return
	}
	defer func() {
		cancel()
		d.Halt()
	}()

	if len(os.Args) == 1 {
		d.SetString("HI  ")
		time.Sleep(2 * time.Second)
		d.Scroll(ctx, "    github.com/DrJosh9000/sevenseg    ", DefaultStep, 1)
		return
	}
	d.Scroll(ctx, os.Args[1], DefaultStep, 1)
}
