package association

import (
	"errors"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

// ErrAssociationIsNotConstructed is returned when an Association was not created
// through NewAssociation or RestoreAssociation.
var ErrAssociationIsNotConstructed = errors.New(
	"Association must be created via NewAssociation or RestoreAssociation")

// Association is the organizational entity (a local-food network) owning branches
// and their distribution occurrences.
//
// Each association owns a single monotonically increasing order-reference counter
// shared across all orders placed against any of its branches. The counter is
// never incremented in memory: allocation happens through an atomic
// increment-and-read in the same transaction that persists the dependent order,
// so two concurrent checkouts can never share a reference.
type Association struct {
	id              kernel.UUID
	name            string
	orderRefCounter int64

	guard guard.ConstructorGuard
}

// NewAssociation creates an association with a zeroed reference counter.
func NewAssociation(id kernel.UUID, name string) (*Association, error) {
	return RestoreAssociation(id, name, 0)
}

// RestoreAssociation reconstructs an association from persistence.
func RestoreAssociation(id kernel.UUID, name string, orderRefCounter int64) (*Association, error) {
	a := &Association{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setOrderRefCounter(orderRefCounter),
	); err != nil {
		return nil, err
	}

	return a, nil
}

// Validate ensures the association was created through a factory function.
func (a *Association) Validate() error {
	if a == nil {
		return ErrAssociationIsNotConstructed
	}
	return a.guard.Validate(ErrAssociationIsNotConstructed)
}

// ID returns the association's unique identifier.
func (a *Association) ID() kernel.UUID {
	return a.id
}

// Name returns the association's display name.
func (a *Association) Name() string {
	return a.name
}

// OrderRefCounter returns the last issued counter value as of the time the
// association was loaded. The authoritative value lives in storage.
func (a *Association) OrderRefCounter() int64 {
	return a.orderRefCounter
}

func (a *Association) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Association) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Association) setOrderRefCounter(counter int64) error {
	if counter < 0 {
		return errs.NewValueIsInvalidError("orderRefCounter")
	}
	a.orderRefCounter = counter
	return nil
}
