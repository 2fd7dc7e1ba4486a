// Package delivery defines the contract every transport front end fulfills.
package delivery

import "context"

// Delivery is a long-running transport (HTTP today) started by the
// application and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
