// Package activityrepo provides data transfer objects and mapping functions
// for the activity stream. Entries are append-only; the auto-incremented key
// doubles as the chronological order of the stream.
package activityrepo

import (
	"encoding/json"
	"time"

	"localmarket/internal/core/domain/model/activity"
	"localmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EntryDTO represents the database structure for persisting activity entries.
// Params are stored as a JSON document keyed by placeholder name.
type EntryDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	TransKey      string
	Params        []byte     `gorm:"type:jsonb"`
	OrderID       uuid.UUID  `gorm:"type:uuid;index"`
	AssociationID uuid.UUID  `gorm:"type:uuid;index"`
	UserID        *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
}

// TableName specifies the database table name for activity entries.
func (EntryDTO) TableName() string {
	return "activity_entries"
}

// fromDomain converts an activity entry to its database representation.
func fromDomain(entry *activity.Entry) (EntryDTO, error) {
	params, err := json.Marshal(entry.Params())
	if err != nil {
		return EntryDTO{}, err
	}

	var userID *uuid.UUID
	if id := entry.UserID(); id != nil {
		raw := id.Bytes()
		userID = &raw
	}

	return EntryDTO{
		TransKey:      entry.TransKey(),
		Params:        params,
		OrderID:       entry.OrderID().Bytes(),
		AssociationID: entry.AssociationID().Bytes(),
		UserID:        userID,
	}, nil
}

// toDomain converts a database DTO to an activity entry.
func toDomain(dto EntryDTO) (*activity.Entry, error) {
	var params map[string]string
	if len(dto.Params) > 0 {
		if err := json.Unmarshal(dto.Params, &params); err != nil {
			return nil, err
		}
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	associationID, err := kernel.UUIDFromBytes(dto.AssociationID[:])
	if err != nil {
		return nil, err
	}

	var userID *kernel.UUID
	if dto.UserID != nil {
		uID, uErr := kernel.UUIDFromBytes((*dto.UserID)[:])
		if uErr != nil {
			return nil, uErr
		}
		userID = &uID
	}

	return activity.NewEntry(dto.TransKey, params, orderID, associationID, userID)
}
