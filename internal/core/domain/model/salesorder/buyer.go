package salesorder

import (
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

// ErrBuyerIsNotConstructed is returned when a Buyer was not created via NewBuyer.
var ErrBuyerIsNotConstructed = errs.NewValueIsRequiredError(
	"Buyer must be created via NewBuyer constructor")

// Buyer is the identity and address snapshot copied from the ordering user at
// order-creation time. It is never re-synced with later profile changes: the
// order keeps the name and address the goods were actually sold under.
type Buyer struct {
	firstname string
	lastname  string
	address1  string
	address2  string
	zipcode   string
	city      string

	guard guard.ConstructorGuard
}

// NewBuyer creates the snapshot. First and last name are required; address
// fields may be empty for pickup-only branches.
func NewBuyer(firstname, lastname, address1, address2, zipcode, city string) (Buyer, error) {
	if firstname == "" {
		return Buyer{}, errs.NewValueIsRequiredError("firstname")
	}
	if lastname == "" {
		return Buyer{}, errs.NewValueIsRequiredError("lastname")
	}

	return Buyer{
		firstname: firstname,
		lastname:  lastname,
		address1:  address1,
		address2:  address2,
		zipcode:   zipcode,
		city:      city,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the buyer snapshot was created through NewBuyer.
func (b Buyer) Validate() error {
	return b.guard.Validate(ErrBuyerIsNotConstructed)
}

// Firstname returns the buyer's first name.
func (b Buyer) Firstname() string { return b.firstname }

// Lastname returns the buyer's last name.
func (b Buyer) Lastname() string { return b.lastname }

// Address1 returns the first address line.
func (b Buyer) Address1() string { return b.address1 }

// Address2 returns the second address line.
func (b Buyer) Address2() string { return b.address2 }

// Zipcode returns the postal code.
func (b Buyer) Zipcode() string { return b.zipcode }

// City returns the city.
func (b Buyer) City() string { return b.city }
