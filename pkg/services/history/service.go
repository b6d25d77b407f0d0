package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gyounis-TX/explify/pkg/adapters"
	"github.com/gyounis-TX/explify/pkg/models/domain"
	"github.com/gyounis-TX/explify/pkg/models/store"
	"github.com/gyounis-TX/explify/pkg/store/sqlite/report"
)

// ErrNotFound mirrors the store sentinel so callers only depend on this
// package.
var ErrNotFound = report.ErrNotFound

// Service owns stored report analyses. GetReportAnalysis satisfies the
// comparison engine's Fetcher contract.
type Service interface {
	GetReportAnalysis(ctx context.Context, id string) (domain.ReportAnalysis, error)
	Save(ctx context.Context, analysis domain.ReportAnalysis) (domain.ReportAnalysis, error)
	List(ctx context.Context, filter domain.HistoryFilter) ([]domain.ReportSummary, int, error)
	Delete(ctx context.Context, id string) error
	SetLiked(ctx context.Context, id string, liked bool) error
}

type service struct {
	reports report.Store
}

func NewService(reports report.Store) Service {
	return &service{reports: reports}
}

func (s *service) GetReportAnalysis(ctx context.Context, id string) (domain.ReportAnalysis, error) {
	rec, err := s.reports.Get(ctx, id)
	if err != nil {
		return domain.ReportAnalysis{}, err
	}
	return adapters.MapStoreRecordToDomainReport(rec)
}

func (s *service) Save(ctx context.Context, analysis domain.ReportAnalysis) (domain.ReportAnalysis, error) {
	if analysis.ID == "" {
		analysis.ID = uuid.NewString()
	}
	if analysis.CreatedAt.IsZero() {
		analysis.CreatedAt = time.Now().UTC()
	}

	rec, err := adapters.MapDomainReportToStoreRecord(analysis)
	if err != nil {
		return domain.ReportAnalysis{}, err
	}
	if err := s.reports.Add(ctx, rec); err != nil {
		return domain.ReportAnalysis{}, fmt.Errorf("save report: %w", err)
	}
	return analysis, nil
}

func (s *service) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.ReportSummary, int, error) {
	records, total, err := s.reports.List(ctx, store.ReportFilter{
		Search:    filter.Search,
		LikedOnly: filter.LikedOnly,
		Offset:    filter.Offset,
		Limit:     filter.Limit,
	})
	if err != nil {
		return nil, 0, err
	}

	summaries := make([]domain.ReportSummary, 0, len(records))
	for _, rec := range records {
		summaries = append(summaries, domain.ReportSummary{
			ID:              rec.ID,
			TestType:        rec.TestType,
			TestTypeDisplay: rec.TestTypeDisplay,
			Filename:        rec.Filename,
			Summary:         rec.Summary,
			Liked:           rec.Liked,
			CreatedAt:       rec.CreatedAt,
		})
	}
	return summaries, total, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.reports.Delete(ctx, id)
}

func (s *service) SetLiked(ctx context.Context, id string, liked bool) error {
	return s.reports.SetLiked(ctx, id, liked)
}
