package activity

import (
	"errors"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/pkg/errs"
	"localmarket/internal/pkg/guard"
)

// Translation keys for the activity stream. Presentation layers resolve them to
// localized text; the core stores the key with its structured parameters.
const (
	KeySalesOrderCreated       = "activity_stream.sales_order.created"
	KeyRowQuantityTotalUpdated = "activity_stream.sales_order.row.quantity_total_updated"
	KeyRowQuantityUpdated      = "activity_stream.sales_order.row.quantity_updated"
	KeyRowTotalUpdated         = "activity_stream.sales_order.row.total_updated"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created via NewEntry.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry constructor")

// Entry is an immutable audit-trail record describing one detected change on a
// sales order. Its timestamp is implied by persistence order.
type Entry struct {
	transKey      string
	params        map[string]string
	orderID       kernel.UUID
	associationID kernel.UUID
	userID        *kernel.UUID

	guard guard.ConstructorGuard
}

// NewEntry creates an activity entry for the given order within its association
// context. The acting user is optional: system-triggered changes carry none.
func NewEntry(
	transKey string,
	params map[string]string,
	orderID kernel.UUID,
	associationID kernel.UUID,
	userID *kernel.UUID,
) (*Entry, error) {
	if transKey == "" {
		return nil, errs.NewValueIsRequiredError("transKey")
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if err := associationID.Validate(); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := userID.Validate(); err != nil {
			return nil, err
		}
	}

	copied := make(map[string]string, len(params))
	for k, v := range params {
		copied[k] = v
	}

	return &Entry{
		transKey:      transKey,
		params:        copied,
		orderID:       orderID,
		associationID: associationID,
		userID:        userID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the entry was created through NewEntry.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// TransKey returns the translation key of the entry.
func (e *Entry) TransKey() string {
	return e.transKey
}

// Params returns a copy of the structured parameters.
func (e *Entry) Params() map[string]string {
	params := make(map[string]string, len(e.params))
	for k, v := range e.params {
		params[k] = v
	}
	return params
}

// OrderID returns the subject order.
func (e *Entry) OrderID() kernel.UUID {
	return e.orderID
}

// AssociationID returns the association context.
func (e *Entry) AssociationID() kernel.UUID {
	return e.associationID
}

// UserID returns the acting user, or nil for system-triggered entries.
func (e *Entry) UserID() *kernel.UUID {
	return e.userID
}
