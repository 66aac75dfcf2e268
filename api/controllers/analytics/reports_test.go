package analytics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalanalytics "github.com/nikhilbhatia/shopsight-backend/internal/analytics"
	pkgerrors "github.com/nikhilbhatia/shopsight-backend/pkg/errors"
	"github.com/nikhilbhatia/shopsight-backend/pkg/types"
)

func TestAgingStockReturnsEnvelope(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	stub := &stubService{
		aging: &internalanalytics.AgingReport{
			Rows: []internalanalytics.AgingRow{
				{
					ProductID:      uuid.New(),
					Name:           "Dusty Widget",
					AgeDays:        50,
					AgingBucket:    "45+ days",
					InventoryValue: decimal.NewFromInt(500),
				},
			},
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/aging", nil)
	rec := httptest.NewRecorder()
	AgingStock(stub, testAnalyticsCfg(), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, stub.called())

	var envelope struct {
		Data internalanalytics.AgingReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Rows, 1)
	assert.Equal(t, "45+ days", envelope.Data.Rows[0].AgingBucket)
}

func TestAgingStockEmptyCatalogStill200(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/aging", nil)
	rec := httptest.NewRecorder()
	AgingStock(&stubService{}, testAnalyticsCfg(), nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFastMoversDependencyFailure(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	stub := &stubService{err: pkgerrors.New(pkgerrors.CodeDependency, "fetching order items")}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/fast-movers", nil)
	rec := httptest.NewRecorder()
	FastMovers(stub, testAnalyticsCfg(), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var envelope types.ErrorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, string(pkgerrors.CodeDependency), envelope.Error.Code)
	assert.Equal(t, "data source unavailable", envelope.Error.Message)
}

func TestPerformancePassesStatusFilter(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	stub := &stubService{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/performance?status=delivered", nil)
	rec := httptest.NewRecorder()
	Performance(stub, testAnalyticsCfg(), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "delivered", stub.lastQuery.Status)
}

func TestDashboardUsesDefaultTopN(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	stub := &stubService{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/dashboard", nil)
	rec := httptest.NewRecorder()
	Dashboard(stub, testAnalyticsCfg(), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, stub.lastQuery.TopN)
}
