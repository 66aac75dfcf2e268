package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nikhilbhatia/shopsight-backend/pkg/db/models"
	pkgerrors "github.com/nikhilbhatia/shopsight-backend/pkg/errors"
	"github.com/nikhilbhatia/shopsight-backend/pkg/pagination"
)

// Service exposes catalog management operations for the admin forms and
// the dashboard tables.
type Service interface {
	ListProducts(ctx context.Context, params pagination.Params) (*ProductList, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*ProductSummary, error)
	CreateProduct(ctx context.Context, input CreateProductInput) (*ProductSummary, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductSummary, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type service struct {
	repo Repository
}

// NewService wires a catalog service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) ListProducts(ctx context.Context, params pagination.Params) (*ProductList, error) {
	if _, err := pagination.ParseCursor(params.Cursor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	products, next, err := s.repo.ListProductsPage(ctx, params)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing products")
	}

	summaries := make([]ProductSummary, 0, len(products))
	for _, product := range products {
		summaries = append(summaries, toSummary(product))
	}
	return &ProductList{Products: summaries, NextCursor: next}, nil
}

func (s *service) GetProduct(ctx context.Context, id uuid.UUID) (*ProductSummary, error) {
	product, err := s.repo.FindProduct(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "fetching product")
	}
	summary := toSummary(*product)
	return &summary, nil
}

func (s *service) CreateProduct(ctx context.Context, input CreateProductInput) (*ProductSummary, error) {
	product := &models.Product{
		Name:         input.Name,
		ArticleID:    input.ArticleID,
		Stock:        input.Stock,
		Price:        input.Price,
		SellingPrice: input.SellingPrice,
		CategoryID:   input.CategoryID,
	}

	created, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating product")
	}
	summary := toSummary(*created)
	return &summary, nil
}

func (s *service) UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*ProductSummary, error) {
	updates := map[string]any{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.ArticleID != nil {
		updates["article_id"] = *input.ArticleID
	}
	if input.Stock != nil {
		updates["stock"] = *input.Stock
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.SellingPrice != nil {
		updates["selling_price"] = *input.SellingPrice
	}
	if input.CategoryID != nil {
		updates["category_id"] = *input.CategoryID
	}
	if len(updates) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no fields to update")
	}

	if err := s.repo.UpdateProduct(ctx, id, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "updating product")
	}
	return s.GetProduct(ctx, id)
}

func (s *service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "deleting product")
	}
	return nil
}

func (s *service) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "listing categories")
	}
	return categories, nil
}
