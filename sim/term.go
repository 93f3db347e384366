package sim

import (
	"context"
	"time"

	"github.com/nsf/termbox-go"
)

// Term draws a Panel in the terminal until a key is pressed or ctx is done.
// Caption, if set, is called on every redraw and shown under the digits.
func Term(ctx context.Context, p *Panel, every time.Duration, caption func() string) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	keys := make(chan termbox.Event, 1)
	polled := make(chan struct{})
	go func() {
		defer close(polled)
		for {
			ev := termbox.PollEvent()
			if ev.Type == termbox.EventInterrupt {
				return
			}
			if ev.Type == termbox.EventKey || ev.Type == termbox.EventError {
				keys <- ev
				return
			}
		}
	}()
	defer func() {
		// Interrupt blocks unless PollEvent is waiting.
		select {
		case <-polled:
		default:
			termbox.Interrupt()
		}
	}()

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		if err := draw(p, caption); err != nil {
			return err
		}
		select {
		case ev := <-keys:
			return ev.Err
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}

func draw(p *Panel, caption func() string) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	for y, line := range p.Lines() {
		put(2, 1+y, line, termbox.ColorRed|termbox.AttrBold)
	}
	if caption != nil {
		put(2, 5, caption(), termbox.ColorDefault)
	}
	put(2, 7, "press any key to quit", termbox.ColorDefault)
	return termbox.Flush()
}

func put(x, y int, s string, fg termbox.Attribute) {
	for i, r := range s {
		termbox.SetCell(x+i, y, r, fg, termbox.ColorDefault)
	}
}
