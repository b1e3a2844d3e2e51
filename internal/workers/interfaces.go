// Package workers runs the background jobs of the development backend.
// It defines the Worker interface and a Workers aggregate that starts
// several workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is implemented by any background job.
//
// Run must not block: implementations spawn their own goroutine and stop
// it when ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Expirer marks approvals whose expiration date passed before today.
type Expirer interface {
	ExpireApprovals(ctx context.Context, today time.Time) (int64, error)
}
