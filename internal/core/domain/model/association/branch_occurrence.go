package association

import (
	"errors"
	"time"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

var (
	// ErrBranchIsNotConstructed is returned when a Branch was not created via NewBranch.
	ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch constructor")

	// ErrBranchOccurrenceIsNotConstructed is returned when a BranchOccurrence was not
	// created via NewBranchOccurrence.
	ErrBranchOccurrenceIsNotConstructed = errors.New(
		"BranchOccurrence must be created via NewBranchOccurrence constructor")
)

// Branch is a distribution point of an association.
type Branch struct {
	id            kernel.UUID
	associationID kernel.UUID
	name          string

	guard guard.ConstructorGuard
}

// NewBranch creates a validated branch belonging to an association.
func NewBranch(id, associationID kernel.UUID, name string) (*Branch, error) {
	b := &Branch{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		b.setID(id),
		b.setAssociationID(associationID),
		b.setName(name),
	); err != nil {
		return nil, err
	}

	return b, nil
}

// Validate ensures the branch was created through NewBranch.
func (b *Branch) Validate() error {
	if b == nil {
		return ErrBranchIsNotConstructed
	}
	return b.guard.Validate(ErrBranchIsNotConstructed)
}

// ID returns the branch's unique identifier.
func (b *Branch) ID() kernel.UUID {
	return b.id
}

// AssociationID returns the owning association.
func (b *Branch) AssociationID() kernel.UUID {
	return b.associationID
}

// Name returns the branch's display name.
func (b *Branch) Name() string {
	return b.name
}

func (b *Branch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Branch) setAssociationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.associationID = id
	return nil
}

func (b *Branch) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}

// BranchOccurrence is a single dated occurrence of a branch: the point in time at
// which orders placed against it are fulfilled. The owning association is carried
// alongside the branch so the orchestration layer can resolve the reference-counter
// context without extra lookups.
type BranchOccurrence struct {
	id            kernel.UUID
	branchID      kernel.UUID
	associationID kernel.UUID
	begins        time.Time
	ends          time.Time

	guard guard.ConstructorGuard
}

// NewBranchOccurrence creates a validated occurrence.
// The end of the occurrence must be after its beginning.
func NewBranchOccurrence(id, branchID, associationID kernel.UUID, begins, ends time.Time) (*BranchOccurrence, error) {
	o := &BranchOccurrence{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setBranchID(branchID),
		o.setAssociationID(associationID),
		o.setInterval(begins, ends),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the occurrence was created through NewBranchOccurrence.
func (o *BranchOccurrence) Validate() error {
	if o == nil {
		return ErrBranchOccurrenceIsNotConstructed
	}
	return o.guard.Validate(ErrBranchOccurrenceIsNotConstructed)
}

// ID returns the occurrence's unique identifier.
func (o *BranchOccurrence) ID() kernel.UUID {
	return o.id
}

// BranchID returns the branch hosting this occurrence.
func (o *BranchOccurrence) BranchID() kernel.UUID {
	return o.branchID
}

// AssociationID returns the association owning the hosting branch.
func (o *BranchOccurrence) AssociationID() kernel.UUID {
	return o.associationID
}

// Begins returns the start of the occurrence.
func (o *BranchOccurrence) Begins() time.Time {
	return o.begins
}

// Ends returns the end of the occurrence.
func (o *BranchOccurrence) Ends() time.Time {
	return o.ends
}

func (o *BranchOccurrence) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *BranchOccurrence) setBranchID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.branchID = id
	return nil
}

func (o *BranchOccurrence) setAssociationID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.associationID = id
	return nil
}

func (o *BranchOccurrence) setInterval(begins, ends time.Time) error {
	if begins.IsZero() {
		return errs.NewValueIsRequiredError("begins")
	}
	if !ends.After(begins) {
		return errs.NewValueIsInvalidError("ends")
	}
	o.begins = begins
	o.ends = ends
	return nil
}
