package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/DrJosh9000/sevenseg"
	"github.com/buger/jsonparser"
)

type config struct {
	Backend string // periph, rpio, gpiocdev or sim
	Chip    string // gpiochip for the gpiocdev backend
	Latch   string
	Clock   string
	Data    string
	Anode   bool
	SPI     string // spireg port name, or "" to bit-bang
	Period  time.Duration
	Text    string
	Scroll  string
	Step    time.Duration
	Stride  int
	HTTP    string
	LogFile string
}

func defaultConfig() *config {
	return &config{
		Backend: "periph",
		Chip:    "gpiochip0",
		Latch:   "17",
		Clock:   "27",
		Data:    "22",
		Period:  sevenseg.DefaultPeriod,
		Step:    sevenseg.DefaultStep,
		Stride:  1,
	}
}

// parseConfig reads flags from args. If -config names a file, settings are
// read from it first and then flags given on the command line are applied on
// top.
func parseConfig(args []string) (*config, error) {
	c := defaultConfig()
	fs := flag.NewFlagSet("sevenseg", flag.ContinueOnError)
	path := fs.String("config", "", "JSON settings file")
	fs.StringVar(&c.Backend, "backend", c.Backend, "pin backend: periph, rpio, gpiocdev or sim")
	fs.StringVar(&c.Chip, "chip", c.Chip, "GPIO chip for the gpiocdev backend")
	fs.StringVar(&c.Latch, "latch", c.Latch, "latch pin (ST_CP)")
	fs.StringVar(&c.Clock, "clock", c.Clock, "shift clock pin (SH_CP)")
	fs.StringVar(&c.Data, "data", c.Data, "serial data pin (DS)")
	fs.BoolVar(&c.Anode, "anode", c.Anode, "common anode display")
	fs.StringVar(&c.SPI, "spi", c.SPI, "SPI port to use instead of the clock and data pins (periph only)")
	fs.DurationVar(&c.Period, "period", c.Period, "time each digit is lit")
	fs.StringVar(&c.Text, "text", c.Text, "text to display")
	fs.StringVar(&c.Scroll, "scroll", c.Scroll, "text to scroll repeatedly")
	fs.DurationVar(&c.Step, "step", c.Step, "delay between scroll steps")
	fs.IntVar(&c.Stride, "stride", c.Stride, "characters to move each scroll step")
	fs.StringVar(&c.HTTP, "http", c.HTTP, "address to serve the HTTP API on")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "log file (rotated); stderr if empty")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *path != "" {
		set := make(map[string]string)
		fs.Visit(func(f *flag.Flag) { set[f.Name] = f.Value.String() })
		data, err := os.ReadFile(*path)
		if err != nil {
			return nil, err
		}
		if err := c.fromJSON(data); err != nil {
			return nil, fmt.Errorf("%s: %w", *path, err)
		}
		for name, v := range set {
			if err := fs.Set(name, v); err != nil {
				return nil, err
			}
		}
	}
	return c, c.validate()
}

// fromJSON overrides settings with any keys present in data. Keys match the
// flag names.
func (c *config) fromJSON(data []byte) error {
	strs := map[string]*string{
		"backend": &c.Backend,
		"chip":    &c.Chip,
		"latch":   &c.Latch,
		"clock":   &c.Clock,
		"data":    &c.Data,
		"spi":     &c.SPI,
		"text":    &c.Text,
		"scroll":  &c.Scroll,
		"http":    &c.HTTP,
		"log":     &c.LogFile,
	}
	for k, p := range strs {
		v, err := jsonparser.GetString(data, k)
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		*p = v
	}

	durs := map[string]*time.Duration{
		"period": &c.Period,
		"step":   &c.Step,
	}
	for k, p := range durs {
		v, err := jsonparser.GetString(data, k)
		if errors.Is(err, jsonparser.KeyPathNotFoundError) {
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		if *p, err = time.ParseDuration(v); err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
	}

	if v, err := jsonparser.GetBoolean(data, "anode"); err == nil {
		c.Anode = v
	} else if !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return fmt.Errorf("anode: %w", err)
	}
	if v, err := jsonparser.GetInt(data, "stride"); err == nil {
		c.Stride = int(v)
	} else if !errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return fmt.Errorf("stride: %w", err)
	}
	return nil
}

// scrollable reports whether s has at least one full window to show.
func scrollable(s string) bool {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return len(s) >= sevenseg.Digits
}

func (c *config) validate() error {
	switch c.Backend {
	case "periph", "rpio", "gpiocdev", "sim":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.SPI != "" && c.Backend != "periph" {
		return errors.New("-spi needs the periph backend")
	}
	if c.Period <= 0 {
		return errors.New("period must be positive")
	}
	if c.Stride < 1 {
		return errors.New("stride must be at least 1")
	}
	if c.Scroll != "" {
		if c.Step <= 0 {
			return errors.New("step must be positive when scrolling")
		}
		if !scrollable(c.Scroll) {
			return fmt.Errorf("scroll text needs at least %d characters", sevenseg.Digits)
		}
	}
	return nil
}
