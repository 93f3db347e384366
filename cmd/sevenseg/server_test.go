package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DrJosh9000/sevenseg"
	"github.com/DrJosh9000/sevenseg/sim"
	"github.com/jonboulle/clockwork"
	"gotest.tools/assert"
)

func newTestServer(t *testing.T) (*server, clockwork.FakeClock) {
	t.Helper()
	p := sim.NewPanel(false)
	d := sevenseg.New(p.LD, p.CLK, p.DIN, false)
	d.Timer = sevenseg.TimerFunc(func(context.Context, time.Duration, func()) {})
	fc := clockwork.NewFakeClock()
	d.Clock = fc
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	assert.NilError(t, d.Configure(ctx))
	s := newServer(ctx, d, sevenseg.DefaultStep, 1)
	t.Cleanup(s.stopScroll)
	return s, fc
}

func do(t *testing.T, s *server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestServerText(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPut, "/text", "cafe")
	assert.Equal(t, w.Code, http.StatusNoContent)

	w = do(t, s, http.MethodGet, "/text", "")
	assert.Equal(t, w.Code, http.StatusOK)
	assert.Equal(t, w.Body.String(), "CAFE\n")

	w = do(t, s, http.MethodDelete, "/text", "")
	assert.Equal(t, w.Code, http.StatusNoContent)
	assert.Equal(t, s.d.Text(), "    ")

	w = do(t, s, http.MethodPost, "/text", "")
	assert.Equal(t, w.Code, http.StatusMethodNotAllowed)
}

func TestServerScroll(t *testing.T) {
	s, fc := newTestServer(t)

	w := do(t, s, http.MethodPost, "/scroll?step=1s&stride=2", "ABCDEFGH")
	assert.Equal(t, w.Code, http.StatusAccepted)
	fc.BlockUntil(1)
	assert.Equal(t, s.d.Text(), "ABCD")
	fc.Advance(time.Second)
	fc.BlockUntil(1)
	assert.Equal(t, s.d.Text(), "CDEF")

	// Setting the text stops the scroll.
	w = do(t, s, http.MethodPut, "/text", "STOP")
	assert.Equal(t, w.Code, http.StatusNoContent)
	fc.Advance(time.Second)
	assert.Equal(t, s.d.Text(), "STOP")
}

func TestServerScrollBadQuery(t *testing.T) {
	s, _ := newTestServer(t)
	for _, q := range []string{"step=fast", "step=-1s", "stride=0", "stride=x"} {
		w := do(t, s, http.MethodPost, "/scroll?"+q, "HELLO")
		assert.Equal(t, w.Code, http.StatusBadRequest, "query %q", q)
	}
}

func TestServerScrollShortText(t *testing.T) {
	s, _ := newTestServer(t)
	s.d.SetString("KEEP")
	for _, body := range []string{"", "HI", "HI\x00THERE"} {
		w := do(t, s, http.MethodPost, "/scroll", body)
		assert.Equal(t, w.Code, http.StatusBadRequest, "body %q", body)
	}
	assert.Equal(t, s.d.Text(), "KEEP")
}
