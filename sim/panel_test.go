package sim

import (
	"context"
	"testing"
	"time"

	"github.com/DrJosh9000/sevenseg"
	"gotest.tools/assert"
)

func drive(t *testing.T, anode bool, text string) *Panel {
	t.Helper()
	p := NewPanel(anode)
	var tick func()
	d := sevenseg.New(p.LD, p.CLK, p.DIN, anode)
	d.Timer = sevenseg.TimerFunc(func(_ context.Context, _ time.Duration, fn func()) {
		tick = fn
	})
	assert.NilError(t, d.Configure(context.Background()))
	d.SetString(text)
	for i := 0; i < sevenseg.Digits; i++ {
		tick()
	}
	return p
}

func TestPanelDecodes(t *testing.T) {
	for _, anode := range []bool{false, true} {
		p := drive(t, anode, "TEST")
		want := [4]uint8{
			sevenseg.Lookup('T'),
			sevenseg.Lookup('E'),
			sevenseg.Lookup('S'),
			sevenseg.Lookup('T'),
		}
		assert.Equal(t, p.Digits(), want, "anode: %t", anode)
		assert.Equal(t, p.Frames(), 4)
	}
}

func TestPanelString(t *testing.T) {
	p := drive(t, true, "81-.")
	want := "" +
		" _              \n" +
		"|_|   |  _      \n" +
		"|_|   |        ."
	assert.Equal(t, p.String(), want)
}

func TestPanelIgnoresHeldLatch(t *testing.T) {
	p := NewPanel(false)
	p.LD.Out(true)
	p.LD.Out(true)
	assert.Equal(t, p.Frames(), 1)
	p.LD.Out(false)
	p.LD.Out(true)
	assert.Equal(t, p.Frames(), 2)
}

func TestPinString(t *testing.T) {
	p := NewPanel(false)
	assert.Equal(t, p.CLK.String(), "sim/CLK")
}
