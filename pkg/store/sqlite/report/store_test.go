package report

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyounis-TX/explify/pkg/models/store"
	"github.com/gyounis-TX/explify/pkg/store/sqlite"
)

type fixture struct {
	db    *sql.DB
	store Store
}

func setupFixture(t *testing.T) *fixture {
	db, err := sqlite.NewDB(sqlite.Settings{DbPath: ":memory:"})
	require.NoError(t, err)

	s, err := NewStore(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		db.Close()
	})

	return &fixture{db: db, store: s}
}

func record(id string, created time.Time) store.ReportRecord {
	return store.ReportRecord{
		ID:              id,
		TestType:        "echo",
		TestTypeDisplay: "Echocardiogram",
		Filename:        "echo_" + id + ".pdf",
		Summary:         "Your heart is pumping normally.",
		Payload:         []byte(`{"overall_summary":"Your heart is pumping normally.","measurements":[],"key_findings":[]}`),
		CreatedAt:       created,
	}
}

func TestReportStore_AddAndGet(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	created := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	require.NoError(t, f.store.Add(ctx, record("r1", created)))

	got, err := f.store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "echo", got.TestType)
	assert.Equal(t, "Echocardiogram", got.TestTypeDisplay)
	assert.Equal(t, created, got.CreatedAt)
	assert.JSONEq(t,
		`{"overall_summary":"Your heart is pumping normally.","measurements":[],"key_findings":[]}`,
		string(got.Payload))
	assert.False(t, got.Liked)
}

func TestReportStore_GetMissing(t *testing.T) {
	f := setupFixture(t)

	_, err := f.store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReportStore_List(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.store.Add(ctx, record("r1", base)))
	require.NoError(t, f.store.Add(ctx, record("r2", base.Add(24*time.Hour))))
	require.NoError(t, f.store.Add(ctx, record("r3", base.Add(48*time.Hour))))
	require.NoError(t, f.store.SetLiked(ctx, "r2", true))

	t.Run("newest first", func(t *testing.T) {
		records, total, err := f.store.List(ctx, store.ReportFilter{})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, records, 3)
		assert.Equal(t, "r3", records[0].ID)
		assert.Equal(t, "r1", records[2].ID)
	})

	t.Run("liked only", func(t *testing.T) {
		records, total, err := f.store.List(ctx, store.ReportFilter{LikedOnly: true})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, records, 1)
		assert.Equal(t, "r2", records[0].ID)
		assert.True(t, records[0].Liked)
	})

	t.Run("search matches filename", func(t *testing.T) {
		records, total, err := f.store.List(ctx, store.ReportFilter{Search: "echo_r1"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, records, 1)
		assert.Equal(t, "r1", records[0].ID)
	})

	t.Run("pagination", func(t *testing.T) {
		records, total, err := f.store.List(ctx, store.ReportFilter{Offset: 1, Limit: 1})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		require.Len(t, records, 1)
		assert.Equal(t, "r2", records[0].ID)
	})
}

func TestReportStore_Delete(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Add(ctx, record("r1", time.Now().UTC())))
	require.NoError(t, f.store.Delete(ctx, "r1"))

	_, err := f.store.Get(ctx, "r1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, f.store.Delete(ctx, "r1"), ErrNotFound)
}

func TestReportStore_SetLiked(t *testing.T) {
	f := setupFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Add(ctx, record("r1", time.Now().UTC())))
	require.NoError(t, f.store.SetLiked(ctx, "r1", true))

	got, err := f.store.Get(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, got.Liked)

	assert.ErrorIs(t, f.store.SetLiked(ctx, "missing", true), ErrNotFound)
}
