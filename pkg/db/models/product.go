package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a catalog listing tracked by the dashboard.
type Product struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;primaryKey"`
	Name         string           `gorm:"column:name;not null"`
	ArticleID    string           `gorm:"column:article_id;not null"`
	Stock        int              `gorm:"column:stock;not null;default:0"`
	Price        decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null"`
	SellingPrice *decimal.Decimal `gorm:"column:selling_price;type:numeric(12,2)"`
	CategoryID   *uuid.UUID       `gorm:"column:category_id;type:uuid"`
	Category     *Category        `gorm:"foreignKey:CategoryID"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(*gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
