package product

import (
	"errors"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct or RestoreProduct factory functions.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is the catalog aggregate sold by a producer.
//
// Product invariants:
//   - Must have a valid unique identifier and producer
//   - Name and ref must not be empty
//   - Unit price must not be negative
//   - Availability must be one of the defined modes
//
// The stock level is only meaningful when availability is AccordingToStock;
// it is adjusted incrementally as order row quantities change.
type Product struct {
	id         kernel.UUID
	producerID kernel.UUID
	categoryID *kernel.UUID
	name       string
	ref        string
	isBio      bool
	price      float64

	availability Availability
	stock        float64

	guard guard.ConstructorGuard
}

// NewProduct creates a validated Product.
//
// The categoryID is optional. Stock starts at zero; use RestoreProduct to
// reconstruct a product with a persisted stock level.
func NewProduct(
	id kernel.UUID,
	producerID kernel.UUID,
	categoryID *kernel.UUID,
	name string,
	ref string,
	isBio bool,
	price float64,
	availability Availability,
) (*Product, error) {
	return RestoreProduct(id, producerID, categoryID, name, ref, isBio, price, availability, 0)
}

// RestoreProduct reconstructs a Product from persistence, including its stock level.
func RestoreProduct(
	id kernel.UUID,
	producerID kernel.UUID,
	categoryID *kernel.UUID,
	name string,
	ref string,
	isBio bool,
	price float64,
	availability Availability,
	stock float64,
) (*Product, error) {
	p := &Product{
		isBio: isBio,
		stock: stock,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setProducerID(producerID),
		p.setCategoryID(categoryID),
		p.setName(name),
		p.setRef(ref),
		p.setPrice(price),
		p.setAvailability(availability),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through a factory function.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// ProducerID returns the identifier of the producer selling this product.
func (p *Product) ProducerID() kernel.UUID {
	return p.producerID
}

// CategoryID returns the catalog category, or nil when uncategorized.
func (p *Product) CategoryID() *kernel.UUID {
	return p.categoryID
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Ref returns the producer-facing product reference.
func (p *Product) Ref() string {
	return p.ref
}

// IsBio reports whether the product is organically grown.
func (p *Product) IsBio() bool {
	return p.isBio
}

// Price returns the current unit price.
func (p *Product) Price() float64 {
	return p.price
}

// Availability returns the ordering mode of the product.
func (p *Product) Availability() Availability {
	return p.availability
}

// Stock returns the current stock level.
// Only meaningful when Availability is AccordingToStock.
func (p *Product) Stock() float64 {
	return p.stock
}

// AdjustStock applies a signed delta to the stock level.
// A negative delta consumes stock, a positive delta restocks.
func (p *Product) AdjustStock(delta float64) {
	p.stock += delta
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setProducerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.producerID = id
	return nil
}

func (p *Product) setCategoryID(id *kernel.UUID) error {
	if id != nil {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	p.categoryID = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("ref")
	}
	p.ref = ref
	return nil
}

func (p *Product) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidError("price")
	}
	p.price = price
	return nil
}

func (p *Product) setAvailability(availability Availability) error {
	if err := availability.Validate(); err != nil {
		return err
	}
	p.availability = availability
	return nil
}
