package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// interruptExitCode is the conventional status for a process stopped by SIGINT.
const interruptExitCode = 130

// setupSignalHandler returns a context that is cancelled by the first SIGINT
// or SIGTERM so the running command can be stopped cleanly. A second signal
// exits immediately. The returned function releases the handler and should
// be deferred.
func setupSignalHandler(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancelCtx := context.WithCancel(parent)

	released := make(chan struct{})
	var once sync.Once
	release := func() {
		once.Do(func() {
			close(released)
			cancelCtx()
		})
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigChan)

		select {
		case <-sigChan:
			cancelCtx()
		case <-released:
			return
		}

		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\nForce exit")
			os.Exit(interruptExitCode)
		case <-released:
		}
	}()

	return ctx, release
}
