// Package salesorderrepo provides data transfer objects and mapping functions
// for sales order persistence. Implements the repository pattern for the sales
// order aggregate, converting between domain entities and database rows.
package salesorderrepo

import (
	"time"

	"localmarket/internal/core/domain/model/kernel"
	"localmarket/internal/core/domain/model/salesorder"

	"github.com/google/uuid"
)

// SalesOrderDTO represents the database structure for persisting sales orders.
// The buyer snapshot is embedded so an order stays readable even after the
// consumer account changes or disappears.
type SalesOrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Ref             string    `gorm:"uniqueIndex"`
	Date            time.Time
	OccurrenceID    uuid.UUID `gorm:"type:uuid;index"`
	Buyer           BuyerDTO  `gorm:"embedded;embeddedPrefix:buyer_"`
	ConsumerComment string
	Total           float64

	Rows []RowDTO `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName specifies the database table name for sales orders.
func (SalesOrderDTO) TableName() string {
	return "sales_orders"
}

// BuyerDTO represents the embedded buyer snapshot within the order table.
type BuyerDTO struct {
	Firstname string
	Lastname  string
	Address1  string
	Address2  string
	Zipcode   string
	City      string
}

// RowDTO represents one order row. The product reference data is denormalized
// onto the row so the order survives catalog deletions.
type RowDTO struct {
	ID         int64      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID  `gorm:"type:uuid;index"`
	ProductID  *uuid.UUID `gorm:"type:uuid;index"`
	ProducerID uuid.UUID  `gorm:"type:uuid;index"`
	Name       string
	Ref        string
	IsBio      bool
	UnitPrice  float64
	Quantity   float64
	Total      float64
}

// TableName specifies the database table name for order rows.
func (RowDTO) TableName() string {
	return "sales_order_rows"
}

// fromDomain converts a sales order aggregate to its database representation.
func fromDomain(order *salesorder.SalesOrder) SalesOrderDTO {
	buyer := order.Buyer()
	rows := order.Rows()

	rowDTOs := make([]RowDTO, 0, len(rows))
	for _, row := range rows {
		var productID *uuid.UUID
		if id := row.ProductID(); id != nil {
			raw := id.Bytes()
			productID = &raw
		}

		rowDTOs = append(rowDTOs, RowDTO{
			OrderID:    order.ID().Bytes(),
			ProductID:  productID,
			ProducerID: row.ProducerID().Bytes(),
			Name:       row.Name(),
			Ref:        row.Ref(),
			IsBio:      row.IsBio(),
			UnitPrice:  row.UnitPrice(),
			Quantity:   row.Quantity(),
			Total:      row.Total(),
		})
	}

	return SalesOrderDTO{
		ID:           order.ID().Bytes(),
		Ref:          order.Ref(),
		Date:         order.Date(),
		OccurrenceID: order.OccurrenceID().Bytes(),
		Buyer: BuyerDTO{
			Firstname: buyer.Firstname(),
			Lastname:  buyer.Lastname(),
			Address1:  buyer.Address1(),
			Address2:  buyer.Address2(),
			Zipcode:   buyer.Zipcode(),
			City:      buyer.City(),
		},
		ConsumerComment: order.ConsumerComment(),
		Total:           order.Total(),
		Rows:            rowDTOs,
	}
}

// toDomain converts a database DTO to a sales order aggregate. The restored
// rows carry their stored quantity and total as change detection baselines.
func toDomain(dto SalesOrderDTO) (*salesorder.SalesOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	occurrenceID, err := kernel.UUIDFromBytes(dto.OccurrenceID[:])
	if err != nil {
		return nil, err
	}

	buyer, err := salesorder.NewBuyer(
		dto.Buyer.Firstname,
		dto.Buyer.Lastname,
		dto.Buyer.Address1,
		dto.Buyer.Address2,
		dto.Buyer.Zipcode,
		dto.Buyer.City,
	)
	if err != nil {
		return nil, err
	}

	rows := make([]*salesorder.Row, 0, len(dto.Rows))
	for _, rowDTO := range dto.Rows {
		var productID *kernel.UUID
		if rowDTO.ProductID != nil {
			pID, pErr := kernel.UUIDFromBytes((*rowDTO.ProductID)[:])
			if pErr != nil {
				return nil, pErr
			}
			productID = &pID
		}

		producerID, pErr := kernel.UUIDFromBytes(rowDTO.ProducerID[:])
		if pErr != nil {
			return nil, pErr
		}

		row, rowErr := salesorder.RestoreRow(
			productID,
			producerID,
			rowDTO.Name,
			rowDTO.Ref,
			rowDTO.IsBio,
			rowDTO.UnitPrice,
			rowDTO.Quantity,
			rowDTO.Total,
		)
		if rowErr != nil {
			return nil, rowErr
		}
		rows = append(rows, row)
	}

	return salesorder.RestoreSalesOrder(
		id,
		dto.Ref,
		dto.Date,
		occurrenceID,
		buyer,
		dto.ConsumerComment,
		rows,
		dto.Total,
	)
}
