package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nikhilbhatia/shopsight-backend/pkg/db/models"
)

// CreateProductInput carries the admin product form fields.
type CreateProductInput struct {
	Name         string           `json:"name" validate:"required,min=1,max=255"`
	ArticleID    string           `json:"article_id" validate:"required,min=1,max=64"`
	Stock        int              `json:"stock" validate:"gte=0"`
	Price        decimal.Decimal  `json:"price" validate:"required"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	CategoryID   *uuid.UUID       `json:"category_id,omitempty"`
}

// UpdateProductInput carries a partial update; nil fields are left untouched.
type UpdateProductInput struct {
	Name         *string          `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	ArticleID    *string          `json:"article_id,omitempty" validate:"omitempty,min=1,max=64"`
	Stock        *int             `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Price        *decimal.Decimal `json:"price,omitempty"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	CategoryID   *uuid.UUID       `json:"category_id,omitempty"`
}

// ProductSummary is the list/detail shape handed to controllers.
type ProductSummary struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	ArticleID    string           `json:"article_id"`
	Stock        int              `json:"stock"`
	Price        decimal.Decimal  `json:"price"`
	SellingPrice *decimal.Decimal `json:"selling_price,omitempty"`
	CategoryID   *uuid.UUID       `json:"category_id,omitempty"`
	CategoryName string           `json:"category_name,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ProductList wraps one page of products plus the next page cursor.
type ProductList struct {
	Products   []ProductSummary `json:"products"`
	NextCursor string           `json:"next_cursor,omitempty"`
}

func toSummary(product models.Product) ProductSummary {
	summary := ProductSummary{
		ID:           product.ID,
		Name:         product.Name,
		ArticleID:    product.ArticleID,
		Stock:        product.Stock,
		Price:        product.Price,
		SellingPrice: product.SellingPrice,
		CategoryID:   product.CategoryID,
		CreatedAt:    product.CreatedAt,
		UpdatedAt:    product.UpdatedAt,
	}
	if product.Category != nil {
		summary.CategoryName = product.Category.Name
	}
	return summary
}
