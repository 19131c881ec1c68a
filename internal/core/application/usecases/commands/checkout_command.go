package commands

import (
	"errors"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"
	"localmarket/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand represents a request to turn a consumer's cart into a sales
// order placed against the next occurrence of the chosen branch. Carries the
// buyer snapshot captured at confirmation time and the optional consumer comment.
//
// Example:
//
//	buyer, _ := salesorder.NewBuyer("John", "Smith", "1 rue des Halles", "", "75001", "Paris")
//	cmd, err := NewCheckoutCommand(consumerID, branchID, buyer, "no plastic bags please")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	order, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
//	fmt.Printf("Order %s placed", order.Ref())
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	ownerID         kernel.UUID
	branchID        kernel.UUID
	buyer           salesorder.Buyer
	consumerComment string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to check out the cart of the given owner.
// Validates that both identifiers are valid and the buyer snapshot is complete.
// Returns an error if any validation fails.
func NewCheckoutCommand(
	ownerID kernel.UUID,
	branchID kernel.UUID,
	buyer salesorder.Buyer,
	consumerComment string,
) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		consumerComment: consumerComment,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setOwnerID(ownerID),
		checkoutCommand.setBranchID(branchID),
		checkoutCommand.setBuyer(buyer),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OwnerID returns the identifier of the consumer whose cart is checked out.
func (c CheckoutCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// BranchID returns the identifier of the branch the order is placed with.
// The handler resolves the branch's next occurrence at checkout time.
func (c CheckoutCommand) BranchID() kernel.UUID {
	return c.branchID
}

// Buyer returns the buyer snapshot captured at confirmation time.
func (c CheckoutCommand) Buyer() salesorder.Buyer {
	return c.buyer
}

// ConsumerComment returns the optional comment attached at confirmation, may be empty.
func (c CheckoutCommand) ConsumerComment() string {
	return c.consumerComment
}

func (c *CheckoutCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CheckoutCommand) setBranchID(branchID kernel.UUID) error {
	if err := branchID.Validate(); err != nil {
		return err
	}

	c.branchID = branchID
	return nil
}

func (c *CheckoutCommand) setBuyer(buyer salesorder.Buyer) error {
	if err := buyer.Validate(); err != nil {
		return err
	}

	c.buyer = buyer
	return nil
}
