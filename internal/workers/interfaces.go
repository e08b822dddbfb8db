// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() {
//	    // start background processing
//	}
type Worker interface {
	Run()
}

// CodeLogJob periodically fetches the current one-time code from the vault
// and writes a timestamped line to its sink.
type CodeLogJob interface {
	Worker

	// Start launches a background goroutine that logs the current code
	// immediately and then once per interval. The goroutine exits when ctx
	// is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has fully
	// exited. Safe to call when the job is not running.
	Stop()

	// LogOnce fetches the current code once and writes a single line to the
	// sink.
	LogOnce(ctx context.Context) error
}
