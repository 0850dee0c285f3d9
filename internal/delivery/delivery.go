// Package delivery defines the transport servers the application exposes.
package delivery

import "context"

// Delivery is a long-running transport server driven by the fx lifecycle.
// Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
