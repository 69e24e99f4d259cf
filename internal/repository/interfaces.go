// Package repository carries the sentinel errors every storage backend
// reports and the contracts that don't belong to a single aggregate.
// Per-aggregate persistence interfaces live with their domain packages.
package repository

import "context"

// CounterRepository allocates monotonic identifier ranges. Allocate reserves
// n consecutive numbers and returns the first; numbers are never reissued,
// even when the work that consumed them fails. Current and Set exist for
// snapshot export/import.
type CounterRepository interface {
	Allocate(ctx context.Context, name string, n int) (int64, error)
	Current(ctx context.Context, name string) (int64, error)
	Set(ctx context.Context, name string, next int64) error
}
