package services

import (
	"context"
	"fmt"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// DefaultMaxUIDAttempts bounds the number of candidates UIDAllocator tries.
const DefaultMaxUIDAttempts = 10

// UIDProbe reports whether an identifier is already used within one storage scope
// (one entity table).
type UIDProbe interface {
	UIDExists(ctx context.Context, uid kernel.UID) (bool, error)
}

// UIDAllocator produces identifiers that are unique within the probed scope.
//
// A candidate is drawn, the probe is consulted, and a taken candidate is discarded in
// favour of a fresh draw. After maxAttempts collisions the allocator gives up with an
// errs.AllocationExhaustedError. The allocator never writes: the caller persists the
// identifier in its own transaction, and a unique constraint on the column catches the
// remaining race between two concurrent allocations.
//
// Example usage:
//
//	allocator := services.NewUIDAllocator()
//	uid, err := allocator.Allocate(ctx, "orders", uow.OrderRepository())
//	if err != nil {
//	    return err
//	}
type UIDAllocator struct {
	maxAttempts int
	generate    func() kernel.UID
}

// AllocatorOption customises a UIDAllocator.
type AllocatorOption func(*UIDAllocator)

// WithMaxAttempts overrides DefaultMaxUIDAttempts. Values below one are ignored.
func WithMaxAttempts(n int) AllocatorOption {
	return func(a *UIDAllocator) {
		if n > 0 {
			a.maxAttempts = n
		}
	}
}

// WithGenerator replaces the random candidate source.
func WithGenerator(generate func() kernel.UID) AllocatorOption {
	return func(a *UIDAllocator) {
		if generate != nil {
			a.generate = generate
		}
	}
}

func NewUIDAllocator(opts ...AllocatorOption) UIDAllocator {
	a := UIDAllocator{
		maxAttempts: DefaultMaxUIDAttempts,
		generate:    kernel.NewRandomUID,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Allocate returns the first candidate the probe reports as free.
// scope only labels errors; the probe decides which table is checked.
func (a UIDAllocator) Allocate(ctx context.Context, scope string, probe UIDProbe) (kernel.UID, error) {
	if probe == nil {
		return kernel.UID{}, errs.NewValueIsRequiredError("uid probe")
	}

	maxAttempts := a.maxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxUIDAttempts
	}
	generate := a.generate
	if generate == nil {
		generate = kernel.NewRandomUID
	}

	for range maxAttempts {
		candidate := generate()
		if err := candidate.Validate(); err != nil {
			return kernel.UID{}, err
		}

		taken, err := probe.UIDExists(ctx, candidate)
		if err != nil {
			return kernel.UID{}, fmt.Errorf("probe %s uid: %w", scope, err)
		}
		if !taken {
			return candidate, nil
		}
	}

	return kernel.UID{}, errs.NewAllocationExhaustedError(scope, maxAttempts)
}
