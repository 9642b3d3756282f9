// Package workers runs the background jobs of both binaries: the gateway's
// index refresher and the client's receipt watcher.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job and returns immediately. Stop cancels it and
// blocks until its goroutine has exited; it is a no-op on a stopped job.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Start(ctx context.Context) { /* go loop(ctx) */ }
//	func (w *MyWorker) Stop()                     { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
