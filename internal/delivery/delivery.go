// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) that blocks
// in Serve until the context is cancelled or a fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
