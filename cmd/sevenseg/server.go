package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/DrJosh9000/sevenseg"
	"github.com/gorilla/mux"
)

// maxText bounds request bodies; nothing longer is worth scrolling.
const maxText = 4096

// server exposes a Display over HTTP. At most one scroll runs at a time; any
// change to the display stops it.
type server struct {
	ctx    context.Context
	d      *sevenseg.Display
	step   time.Duration
	stride int

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func newServer(ctx context.Context, d *sevenseg.Display, step time.Duration, stride int) *server {
	return &server{ctx: ctx, d: d, step: step, stride: stride}
}

func (s *server) routes() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/text", s.getText).Methods(http.MethodGet)
	r.HandleFunc("/text", s.putText).Methods(http.MethodPut)
	r.HandleFunc("/text", s.deleteText).Methods(http.MethodDelete)
	r.HandleFunc("/scroll", s.postScroll).Methods(http.MethodPost)
	return r
}

// serve runs the HTTP server until ctx is done.
func (s *server) serve(addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.routes()}
	go func() {
		<-s.ctx.Done()
		srv.Shutdown(context.Background())
	}()
	log.Printf("serving HTTP on %s", addr)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// stopScroll cancels the running scroll, if any, and waits for it to finish.
func (s *server) stopScroll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

func (s *server) stopLocked() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel, s.done = nil, nil
}

func (s *server) getText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=us-ascii")
	fmt.Fprintln(w, s.d.Text())
}

func (s *server) putText(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxText))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.stopScroll()
	s.d.SetString(string(body))
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) deleteText(w http.ResponseWriter, r *http.Request) {
	s.stopScroll()
	s.d.Clear()
	w.WriteHeader(http.StatusNoContent)
}

func (s *server) postScroll(w http.ResponseWriter, r *http.Request) {
	step, stride := s.step, s.stride
	q := r.URL.Query()
	if v := q.Get("step"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			http.Error(w, "bad step", http.StatusBadRequest)
			return
		}
		step = d
	}
	if v := q.Get("stride"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "bad stride", http.StatusBadRequest)
			return
		}
		stride = n
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxText))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if !scrollable(string(body)) {
		http.Error(w, fmt.Sprintf("scroll text needs at least %d characters", sevenseg.Digits), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	ctx, cancel := context.WithCancel(s.ctx)
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	go func() {
		defer close(done)
		if err := s.d.Scroll(ctx, string(body), step, stride); err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("scroll: %v", err)
		}
	}()
	w.WriteHeader(http.StatusAccepted)
}
