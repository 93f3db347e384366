// Command sevenseg shows text on a 4-digit seven-segment display driven by a
// pair of 74HC595 shift registers, or on a simulated one in the terminal.
//
//	sevenseg -text 1234
//	sevenseg -backend sim -scroll "HELLO WORLD" -step 300ms
//	sevenseg -config /etc/default/sevenseg.json -http :8080
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/DrJosh9000/sevenseg/sim"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	c, err := parseConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if c.LogFile != "" {
		log.SetOutput(&lumberjack.Logger{
			Filename:   c.LogFile,
			MaxSize:    1, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := run(ctx, c); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, c *config) error {
	d, panel, closer, err := openDisplay(c)
	if err != nil {
		return err
	}
	defer closer.Close()
	d.ErrorLog = log.Default()

	ctx, cancel := context.WithCancel(ctx)
	if err := d.Configure(ctx); err != nil {
		cancel()
		return err
	}
	log.Printf("configured %s on %s backend", d, c.Backend)

	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
		if err := d.Halt(); err != nil {
			log.Printf("halt: %v", err)
		}
	}()

	if c.Text != "" {
		d.SetString(c.Text)
	}
	if c.Scroll != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for ctx.Err() == nil {
				if err := d.Scroll(ctx, c.Scroll, c.Step, c.Stride); err != nil {
					return
				}
			}
		}()
	}
	if c.HTTP != "" {
		srv := newServer(ctx, d, c.Step, c.Stride)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.serve(c.HTTP); err != nil {
				log.Printf("http: %v", err)
				cancel()
			}
			srv.stopScroll()
		}()
	}

	if panel != nil {
		return sim.Term(ctx, panel, 50*time.Millisecond, d.Text)
	}
	<-ctx.Done()
	return nil
}
