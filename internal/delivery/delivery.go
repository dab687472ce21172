// Package delivery defines the contract every transport front-end implements.
package delivery

import "context"

// Delivery is a long-running request entry point (e.g. the HTTP server).
type Delivery interface {
	Serve(ctx context.Context) error
}
