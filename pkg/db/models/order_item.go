package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderItem is one product line within an order. Quantity and unit price
// are nullable at the source; normalization treats nil as zero.
type OrderItem struct {
	ID        uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	OrderID   uuid.UUID        `gorm:"column:order_id;type:uuid;not null"`
	ProductID *uuid.UUID       `gorm:"column:product_id;type:uuid"`
	Quantity  *int             `gorm:"column:quantity"`
	UnitPrice *decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
	CreatedAt time.Time        `gorm:"column:created_at;autoCreateTime"`
}

func (OrderItem) TableName() string {
	return "order_items"
}

func (i *OrderItem) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
