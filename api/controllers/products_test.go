package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhilbhatia/shopsight-backend/internal/catalog"
	"github.com/nikhilbhatia/shopsight-backend/pkg/db/models"
	pkgerrors "github.com/nikhilbhatia/shopsight-backend/pkg/errors"
	"github.com/nikhilbhatia/shopsight-backend/pkg/pagination"
)

type stubCatalogService struct {
	list    *catalog.ProductList
	product *catalog.ProductSummary
	err     error
}

func (s *stubCatalogService) ListProducts(context.Context, pagination.Params) (*catalog.ProductList, error) {
	return s.list, s.err
}

func (s *stubCatalogService) GetProduct(context.Context, uuid.UUID) (*catalog.ProductSummary, error) {
	return s.product, s.err
}

func (s *stubCatalogService) CreateProduct(_ context.Context, input catalog.CreateProductInput) (*catalog.ProductSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &catalog.ProductSummary{ID: uuid.New(), Name: input.Name, ArticleID: input.ArticleID, Price: input.Price}, nil
}

func (s *stubCatalogService) UpdateProduct(context.Context, uuid.UUID, catalog.UpdateProductInput) (*catalog.ProductSummary, error) {
	return s.product, s.err
}

func (s *stubCatalogService) DeleteProduct(context.Context, uuid.UUID) error {
	return s.err
}

func (s *stubCatalogService) ListCategories(context.Context) ([]models.Category, error) {
	return nil, s.err
}

func routeWithParam(method, pattern string, handler http.HandlerFunc) *chi.Mux {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, handler)
	return r
}

func TestListProductsRejectsBadLimit(t *testing.T) {
	handler := ListProducts(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?limit=banana", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductInvalidID(t *testing.T) {
	r := routeWithParam(http.MethodGet, "/products/{productID}", GetProduct(&stubCatalogService{}, nil))

	req := httptest.NewRequest(http.MethodGet, "/products/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductNotFound(t *testing.T) {
	stub := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	r := routeWithParam(http.MethodGet, "/products/{productID}", GetProduct(stub, nil))

	req := httptest.NewRequest(http.MethodGet, "/products/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateProduct(t *testing.T) {
	handler := CreateProduct(&stubCatalogService{}, nil)

	body := `{"name":"Widget","article_id":"ART-1","stock":5,"price":"100"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var envelope struct {
		Data catalog.ProductSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "Widget", envelope.Data.Name)
	assert.True(t, envelope.Data.Price.Equal(decimal.NewFromInt(100)))
}

func TestCreateProductValidationFailure(t *testing.T) {
	handler := CreateProduct(&stubCatalogService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", strings.NewReader(`{"stock":-1}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
