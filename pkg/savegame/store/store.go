// Package store persists raw encoded save data keyed by slot number.
package store

import "context"

// Store maps an integer slot identifier to durable storage for the
// encoded payload. Write replaces the slot's contents unconditionally;
// Read of a slot that was never written returns ErrNotFound.
type Store interface {
	Close(ctx context.Context) error
	Write(ctx context.Context, slot int, data []byte) error
	Read(ctx context.Context, slot int) ([]byte, error)
}
