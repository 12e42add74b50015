// Package runtimer runs registered callbacks when the process receives one of
// the configured signals, giving each a bounded amount of time to clean up.
package runtimer

import (
	"context"
	"os"
	"os/signal"
	"time"
)

type Callback func(ctx context.Context, s os.Signal)

func New(gracePeriod time.Duration, signals ...os.Signal) *SignalHandler {
	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	sh := &SignalHandler{
		c:           c,
		done:        make(chan struct{}),
		gracePeriod: gracePeriod,
	}

	go sh.handle()

	return sh
}

type SignalHandler struct {
	c           chan os.Signal
	done        chan struct{}
	fns         []Callback
	gracePeriod time.Duration
}

func (sh *SignalHandler) handle() {
	defer func() {
		sh.done <- struct{}{}
	}()

	s := <-sh.c
	signal.Stop(sh.c)
	close(sh.c)

	ctx, cancel := context.WithTimeout(context.Background(), sh.gracePeriod)
	defer cancel()

	for _, fn := range sh.fns {
		fn(ctx, s)
	}
}

// RegisterCallback appends a callback. Not safe to call once a signal may
// arrive, register everything during startup.
func (sh *SignalHandler) RegisterCallback(fn Callback) {
	sh.fns = append(sh.fns, fn)
}

// Wait blocks until all callbacks have run.
func (sh *SignalHandler) Wait() {
	<-sh.done
	close(sh.done)
}
