// Package delivery defines the contract shared by all transport servers.
package delivery

import "context"

// Delivery is implemented by every transport (HTTP, worker, ...) the
// application can serve on.
type Delivery interface {
	Serve(ctx context.Context) error
}
