package report

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gyounis-TX/explify/pkg/models/store"
)

var ErrNotFound = errors.New("report not found")

const defaultListLimit = 20

// Store persists report analysis snapshots.
type Store interface {
	Add(ctx context.Context, record store.ReportRecord) error
	Get(ctx context.Context, id string) (store.ReportRecord, error)
	List(ctx context.Context, filter store.ReportFilter) ([]store.ReportRecord, int, error)
	Delete(ctx context.Context, id string) error
	SetLiked(ctx context.Context, id string, liked bool) error
}

type reportStore struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (Store, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &reportStore{db: db}, nil
}

func (s *reportStore) Add(ctx context.Context, record store.ReportRecord) error {
	query := `
		INSERT INTO reports (
			id, test_type, test_type_display, filename, summary, payload, liked, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.TestType,
		record.TestTypeDisplay,
		record.Filename,
		record.Summary,
		string(record.Payload),
		boolToInt(record.Liked),
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (s *reportStore) Get(ctx context.Context, id string) (store.ReportRecord, error) {
	query := `
		SELECT id, test_type, test_type_display, filename, summary, payload, liked, created_at
		FROM reports WHERE id = ?`

	var (
		rec       store.ReportRecord
		payload   string
		liked     int
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&rec.ID, &rec.TestType, &rec.TestTypeDisplay, &rec.Filename,
		&rec.Summary, &payload, &liked, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return store.ReportRecord{}, ErrNotFound
	}
	if err != nil {
		return store.ReportRecord{}, fmt.Errorf("select report: %w", err)
	}

	rec.Payload = []byte(payload)
	rec.Liked = liked != 0
	rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return store.ReportRecord{}, fmt.Errorf("parse report timestamp: %w", err)
	}
	return rec, nil
}

func (s *reportStore) List(ctx context.Context, filter store.ReportFilter) ([]store.ReportRecord, int, error) {
	var conditions []string
	var params []any

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		conditions = append(conditions, "(summary LIKE ? OR test_type_display LIKE ? OR filename LIKE ?)")
		params = append(params, like, like, like)
	}
	if filter.LikedOnly {
		conditions = append(conditions, "liked = 1")
	}

	where := ""
	for i, c := range conditions {
		if i == 0 {
			where = " WHERE " + c
		} else {
			where += " AND " + c
		}
	}

	var total int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reports"+where, params...).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count reports: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `
		SELECT id, test_type, test_type_display, filename, summary, liked, created_at
		FROM reports` + where + `
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?`
	rows, err := s.db.QueryContext(ctx, query, append(params, limit, filter.Offset)...)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var records []store.ReportRecord
	for rows.Next() {
		var (
			rec       store.ReportRecord
			liked     int
			createdAt string
		)
		err := rows.Scan(&rec.ID, &rec.TestType, &rec.TestTypeDisplay, &rec.Filename,
			&rec.Summary, &liked, &createdAt)
		if err != nil {
			return nil, 0, fmt.Errorf("scan report row: %w", err)
		}
		rec.Liked = liked != 0
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, 0, fmt.Errorf("parse report timestamp: %w", err)
		}
		records = append(records, rec)
	}
	return records, total, rows.Err()
}

func (s *reportStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM reports WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *reportStore) SetLiked(ctx context.Context, id string, liked bool) error {
	res, err := s.db.ExecContext(ctx, "UPDATE reports SET liked = ? WHERE id = ?", boolToInt(liked), id)
	if err != nil {
		return fmt.Errorf("update report liked: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update report liked: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
