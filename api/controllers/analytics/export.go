package analytics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/nikhilbhatia/shopsight-backend/api/responses"
	"github.com/nikhilbhatia/shopsight-backend/internal/analytics"
	"github.com/nikhilbhatia/shopsight-backend/internal/analytics/export"
	"github.com/nikhilbhatia/shopsight-backend/pkg/config"
	pkgerrors "github.com/nikhilbhatia/shopsight-backend/pkg/errors"
	"github.com/nikhilbhatia/shopsight-backend/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export streams one report as an xlsx download. The report kind is the
// only parameter that hard-fails; window and filter parameters degrade the
// same way the JSON endpoints do.
func Export(service analytics.Service, exporter *export.Exporter, cfg config.AnalyticsConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		kind, err := export.ParseKind(r.URL.Query().Get("report"))
		if err != nil {
			responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid report kind"))
			return
		}

		query := resolveQuery(r, cfg)

		w.Header().Set("Content-Type", xlsxContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename(kind, timeNowUTC())))

		switch kind {
		case export.KindAging:
			report, err := service.Aging(ctx, query)
			if err != nil {
				writeExportError(ctx, logg, w, err)
				return
			}
			err = exporter.Aging(w, report)
			logExportFailure(ctx, logg, kind, err)
		case export.KindFastMovers:
			report, err := service.FastMovers(ctx, query)
			if err != nil {
				writeExportError(ctx, logg, w, err)
				return
			}
			err = exporter.FastMovers(w, report)
			logExportFailure(ctx, logg, kind, err)
		case export.KindPerformance:
			report, err := service.Performance(ctx, query)
			if err != nil {
				writeExportError(ctx, logg, w, err)
				return
			}
			err = exporter.Performance(w, report)
			logExportFailure(ctx, logg, kind, err)
		}
	}
}

// writeExportError clears the download headers before writing the JSON
// error envelope.
func writeExportError(ctx context.Context, logg *logger.Logger, w http.ResponseWriter, err error) {
	w.Header().Del("Content-Disposition")
	responses.WriteError(ctx, logg, w, err)
}

// logExportFailure records a workbook write that failed after headers were
// sent; the response is already committed so there is nothing to rewrite.
func logExportFailure(ctx context.Context, logg *logger.Logger, kind export.ReportKind, err error) {
	if err == nil || logg == nil {
		return
	}
	logg.Error(logg.WithReportKind(ctx, string(kind)), "export.write.failed", err)
}
