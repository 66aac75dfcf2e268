package analytics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nikhilbhatia/shopsight-backend/internal/analytics"
	"github.com/nikhilbhatia/shopsight-backend/pkg/config"
	"github.com/nikhilbhatia/shopsight-backend/pkg/enums"
)

var timeNowUTC = func() time.Time {
	return time.Now().UTC()
}

// resolveQuery turns request parameters into an analytics query. Malformed
// values never fail the request: bad dates fall back to the default window,
// unknown statuses and product ids are dropped, and out-of-range top_n
// reverts to the configured default. The dashboard degrades, it does not 400.
func resolveQuery(r *http.Request, cfg config.AnalyticsConfig) analytics.Query {
	params := r.URL.Query()
	now := timeNowUTC()

	fromRaw := strings.TrimSpace(params.Get("from"))
	toRaw := strings.TrimSpace(params.Get("to"))
	if fromRaw == "" && toRaw == "" {
		if days, ok := presetDays(params.Get("preset")); ok {
			fromRaw = now.AddDate(0, 0, -days).Format(time.RFC3339)
			toRaw = now.Format(time.RFC3339)
		}
	}
	window := analytics.ResolveWindow(fromRaw, toRaw, now, cfg.DefaultWindowDays)

	column, direction := analytics.ParseSort(params.Get("sort"), params.Get("direction"))

	status := ""
	if parsed, err := enums.ParseOrderStatus(strings.TrimSpace(params.Get("status"))); err == nil {
		status = parsed.String()
	}

	var productID *uuid.UUID
	if raw := strings.TrimSpace(params.Get("product_id")); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			productID = &id
		}
	}

	topN := cfg.FastMoverTopN
	if raw := strings.TrimSpace(params.Get("top_n")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= cfg.ExportMaxRows {
			topN = n
		}
	}

	return analytics.Query{
		Window:    window,
		Status:    status,
		ProductID: productID,
		Sort:      column,
		Direction: direction,
		TopN:      topN,
	}
}

func presetDays(value string) (int, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "7d":
		return 7, true
	case "30d":
		return 30, true
	case "90d":
		return 90, true
	default:
		return 0, false
	}
}
