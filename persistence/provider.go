// Package persistence holds the durable key-value backends the store
// writes its snapshot through. The store only ever sees the Provider
// interface; which backend is wired in is the composition root's call.
package persistence

import "context"

// Provider is a minimal durable key-value surface. Load reports
// absence through the bool, not an error: a missing snapshot is the
// normal first-run case, not a fault.
type Provider interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
}
