// Package workers runs the server's background jobs.
//
// Every job implements [Worker]; [Workers] starts them together and waits
// for all of them once the shared context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Name() string
	Run(ctx context.Context)
}
