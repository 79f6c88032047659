// Package delivery defines the contract shared by every transport server.
package delivery

import "context"

// Delivery is a long-running transport endpoint (HTTP server, worker, ...).
// Serve blocks until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
