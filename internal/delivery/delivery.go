// Package delivery defines the contract every transport (HTTP API, event
// worker) fulfills so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport serving the application.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
