package analytics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalanalytics "github.com/nikhilbhatia/shopsight-backend/internal/analytics"
	"github.com/nikhilbhatia/shopsight-backend/pkg/config"
)

func testAnalyticsCfg() config.AnalyticsConfig {
	return config.AnalyticsConfig{
		AgingBasePeriodDays:  15,
		DefaultWindowDays:    30,
		InventorySentinel:    999,
		FastMoverTopN:        10,
		SummaryCardTopN:      3,
		ExportMaxRows:        10000,
		HighTierPercentile:   0.2,
		MediumTierPercentile: 0.5,
	}
}

func withFixedNow(t *testing.T, now time.Time) {
	t.Helper()
	timeNowUTC = func() time.Time { return now }
	t.Cleanup(func() {
		timeNowUTC = func() time.Time { return time.Now().UTC() }
	})
}

func TestResolveQueryExplicitRange(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	req := httptest.NewRequest(http.MethodGet, "/?from=2026-01-01T00:00:00Z&to=2026-01-31T00:00:00Z", nil)
	q := resolveQuery(req, testAnalyticsCfg())

	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), q.Window.From)
	assert.Equal(t, time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC), q.Window.To)
}

func TestResolveQueryMalformedDatesFallBack(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	req := httptest.NewRequest(http.MethodGet, "/?from=last-tuesday&to=whenever", nil)
	q := resolveQuery(req, testAnalyticsCfg())

	assert.Equal(t, now, q.Window.To)
	assert.Equal(t, now.AddDate(0, 0, -30), q.Window.From)
}

func TestResolveQueryPreset(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	req := httptest.NewRequest(http.MethodGet, "/?preset=7d", nil)
	q := resolveQuery(req, testAnalyticsCfg())

	assert.Equal(t, 7, q.Window.Days())

	req = httptest.NewRequest(http.MethodGet, "/?preset=2years", nil)
	q = resolveQuery(req, testAnalyticsCfg())
	assert.Equal(t, 30, q.Window.Days())
}

func TestResolveQueryFilters(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	productID := uuid.New()
	req := httptest.NewRequest(http.MethodGet, "/?status=delivered&product_id="+productID.String()+"&sort=inventory_value&direction=asc&top_n=5", nil)
	q := resolveQuery(req, testAnalyticsCfg())

	assert.Equal(t, "delivered", q.Status)
	require.NotNil(t, q.ProductID)
	assert.Equal(t, productID, *q.ProductID)
	assert.Equal(t, internalanalytics.SortByInventoryValue, q.Sort)
	assert.Equal(t, internalanalytics.SortAsc, q.Direction)
	assert.Equal(t, 5, q.TopN)
}

func TestResolveQueryInvalidFiltersDegrade(t *testing.T) {
	withFixedNow(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	req := httptest.NewRequest(http.MethodGet, "/?status=teleported&product_id=nope&top_n=-4&sort=height", nil)
	q := resolveQuery(req, testAnalyticsCfg())

	assert.Empty(t, q.Status)
	assert.Nil(t, q.ProductID)
	assert.Equal(t, 10, q.TopN)
	assert.Equal(t, internalanalytics.SortByAgeDays, q.Sort)
	assert.Equal(t, internalanalytics.SortDesc, q.Direction)
}
