package commands

import (
	"errors"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

var (
	ErrUpdateOrderRowsCommandIsNotConstructed = errors.New(
		"UpdateOrderRowsCommand must be created via NewUpdateOrderRowsCommand constructor",
	)
	ErrNoRowEdits = errors.New("at least one row edit is required")
)

// RowEdit is one requested quantity change, addressed by product reference.
type RowEdit struct {
	Ref      string
	Quantity float64
}

// UpdateOrderRowsCommand represents an administrative request to change row
// quantities on a persisted sales order. Rows not named by an edit are left
// untouched; edits for references absent from the order are ignored.
type UpdateOrderRowsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	edits   []RowEdit
	userID  *kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateOrderRowsCommand creates a command to edit row quantities of an order.
// Validates that the order ID is valid, at least one edit is present, every
// edit names a reference and carries a positive quantity. The user ID
// identifies the person making the edit and may be nil.
func NewUpdateOrderRowsCommand(
	orderID kernel.UUID,
	edits []RowEdit,
	userID *kernel.UUID,
) (UpdateOrderRowsCommand, error) {
	updateCommand := UpdateOrderRowsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setOrderID(orderID),
		updateCommand.setEdits(edits),
		updateCommand.setUserID(userID),
	); err != nil {
		return UpdateOrderRowsCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUpdateOrderRowsCommandIsNotConstructed if validation fails.
func (c UpdateOrderRowsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderRowsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being edited.
func (c UpdateOrderRowsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Edits returns the requested row quantity changes.
func (c UpdateOrderRowsCommand) Edits() []RowEdit {
	edits := make([]RowEdit, len(c.edits))
	copy(edits, c.edits)
	return edits
}

// UserID returns the identifier of the editing user, may be nil.
func (c UpdateOrderRowsCommand) UserID() *kernel.UUID {
	return c.userID
}

func (c *UpdateOrderRowsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderRowsCommand) setEdits(edits []RowEdit) error {
	if len(edits) == 0 {
		return ErrNoRowEdits
	}

	for _, edit := range edits {
		if edit.Ref == "" {
			return errs.NewValueIsRequiredError("ref")
		}
		if edit.Quantity <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
	}

	c.edits = make([]RowEdit, len(edits))
	copy(c.edits, edits)
	return nil
}

func (c *UpdateOrderRowsCommand) setUserID(userID *kernel.UUID) error {
	if userID == nil {
		return nil
	}
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
