package services

import (
	"fmt"

	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

// ErrReferenceAllocatorIsNotConstructed is returned when a ReferenceAllocator
// was not created via NewReferenceAllocator.
var ErrReferenceAllocatorIsNotConstructed = errs.NewValueIsRequiredError(
	"ReferenceAllocator must be created via NewReferenceAllocator constructor")

// maxRefPadLength bounds the zero padding of order references.
const maxRefPadLength = 16

// ReferenceAllocatorConfig carries the required reference-formatting settings.
// Both values must be present: construction fails otherwise.
type ReferenceAllocatorConfig struct {
	// RefPrefix is prepended to every order reference, e.g. "CMD-".
	RefPrefix string

	// RefPadLength is the minimum width of the zero-padded counter part.
	RefPadLength int
}

// ReferenceAllocator formats human-readable order references from association
// counter values.
//
// The counter increment itself is not this service's job: issuing the next
// counter value is an atomic increment-and-read executed by the persistence
// layer inside the same transaction as the dependent order write. That keeps
// references strictly unique per association under concurrent checkouts, at
// the price of tolerated gaps when a transaction aborts.
//
// Example:
//
//	allocator, err := services.NewReferenceAllocator(services.ReferenceAllocatorConfig{
//	    RefPrefix:    "CMD-",
//	    RefPadLength: 4,
//	})
//	if err != nil {
//	    return err
//	}
//	ref := allocator.Format(7) // "CMD-0007"
type ReferenceAllocator struct {
	prefix    string
	padLength int

	guard guard.ConstructorGuard
}

// NewReferenceAllocator validates the configuration and creates an allocator.
// A missing prefix or a pad length outside [1, 16] is a construction-time
// failure, never deferred to allocation time.
func NewReferenceAllocator(config ReferenceAllocatorConfig) (ReferenceAllocator, error) {
	if config.RefPrefix == "" {
		return ReferenceAllocator{}, errs.NewValueIsRequiredError("refPrefix")
	}
	if config.RefPadLength < 1 || config.RefPadLength > maxRefPadLength {
		return ReferenceAllocator{}, errs.NewValueIsOutOfRangeError(
			"refPadLength", config.RefPadLength, 1, maxRefPadLength)
	}

	return ReferenceAllocator{
		prefix:    config.RefPrefix,
		padLength: config.RefPadLength,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the allocator was created through NewReferenceAllocator.
func (a ReferenceAllocator) Validate() error {
	return a.guard.Validate(ErrReferenceAllocatorIsNotConstructed)
}

// Format renders the reference for an issued counter value:
// prefix followed by the zero-padded counter.
func (a ReferenceAllocator) Format(counter int64) string {
	return fmt.Sprintf("%s%0*d", a.prefix, a.padLength, counter)
}
