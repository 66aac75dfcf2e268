package analytics

import (
	"context"
	"sync/atomic"

	"github.com/nikhilbhatia/shopsight-backend/internal/analytics"
)

type stubService struct {
	aging       *analytics.AgingReport
	fastMovers  *analytics.FastMoverReport
	performance *analytics.PerformanceReport
	dashboard   *analytics.DashboardReport
	err         error

	calls     atomic.Int64
	lastQuery analytics.Query
}

func (s *stubService) Aging(_ context.Context, q analytics.Query) (*analytics.AgingReport, error) {
	s.calls.Add(1)
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	if s.aging == nil {
		return &analytics.AgingReport{Window: q.Window}, nil
	}
	return s.aging, nil
}

func (s *stubService) FastMovers(_ context.Context, q analytics.Query) (*analytics.FastMoverReport, error) {
	s.calls.Add(1)
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	if s.fastMovers == nil {
		return &analytics.FastMoverReport{Window: q.Window}, nil
	}
	return s.fastMovers, nil
}

func (s *stubService) Performance(_ context.Context, q analytics.Query) (*analytics.PerformanceReport, error) {
	s.calls.Add(1)
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	if s.performance == nil {
		return &analytics.PerformanceReport{Window: q.Window}, nil
	}
	return s.performance, nil
}

func (s *stubService) Dashboard(_ context.Context, q analytics.Query) (*analytics.DashboardReport, error) {
	s.calls.Add(1)
	s.lastQuery = q
	if s.err != nil {
		return nil, s.err
	}
	if s.dashboard == nil {
		return &analytics.DashboardReport{Window: q.Window}, nil
	}
	return s.dashboard, nil
}

func (s *stubService) called() bool {
	return s.calls.Load() > 0
}
