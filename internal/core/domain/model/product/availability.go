package product

import (
	"fmt"

	"localmarket/internal/pkg/errs"
)

// Availability describes how a product can be ordered.
//
// Available products can always be ordered. AccordingToStock products are
// gated by their stock level, which must be adjusted whenever order row
// quantities change. Unavailable products cannot be ordered at all.
type Availability int

const (
	// UnknownAvailability represents an invalid or undefined mode.
	// This value (0) helps catch uninitialized Availability values.
	UnknownAvailability Availability = iota

	// Available means the product can be ordered without stock limits.
	Available

	// AccordingToStock means the stock level gates further sales and must be
	// decremented or incremented when order quantities change.
	AccordingToStock

	// Unavailable means the product cannot currently be ordered.
	Unavailable
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		UnknownAvailability: "Unknown",
		Available:           "Available",
		AccordingToStock:    "AccordingToStock",
		Unavailable:         "Unavailable",
	}
}

func getValidAvailabilityStrings() map[Availability]string {
	//nolint:exhaustive // UnknownAvailability is intentionally excluded as it's invalid
	return map[Availability]string{
		Available:        "Available",
		AccordingToStock: "AccordingToStock",
		Unavailable:      "Unavailable",
	}
}

// Validate checks that the Availability is one of the defined modes.
// UnknownAvailability (0) and out-of-range values are invalid.
func (a Availability) Validate() error {
	if _, ok := getValidAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("availability is invalid",
			fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the human-readable name of the availability mode.
// It implements fmt.Stringer and is safe to call on any value.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// TracksStock reports whether ordering this product must reconcile stock.
func (a Availability) TracksStock() bool {
	return a == AccordingToStock
}
