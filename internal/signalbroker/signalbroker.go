// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker turns termination signals into context cancellation.
//
// The first signal cancels the build context so the running step can stop cleanly.
// A second signal calls the force function, which normally exits the process.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/packagebuilder/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New subscribes to sigs, or to the termination signals when none are given.
// Call Stop with the returned channel to unsubscribe.
func New(ctx context.Context, sigs ...os.Signal) chan os.Signal {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "signalbroker", "detail", "subscribing to signals", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch
}

// Stop unsubscribes ch. It does not close it.
func Stop(ch chan os.Signal) {
	signal.Stop(ch)
}

// Watch calls cancel on the first signal received from sigCh and force on the second.
// ctx must not be the context cancelled by cancel: Watch keeps running until ctx is done,
// sigCh is closed, or the second signal arrived.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc, force func()) {
	received := false

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if received {
				ctxlog.Warn(ctx, "watchdog", "detail", "second signal received, terminating", "signal", sig.String())
				force()

				return
			}

			received = true

			ctxlog.Warn(ctx, "watchdog", "detail", "signal received, stopping build", "signal", sig.String())
			cancel()
		}
	}
}
