package compare

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) GetReportAnalysis(ctx context.Context, id string) (domain.ReportAnalysis, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ReportAnalysis), args.Error(1)
}

type mockSummarizer struct {
	mock.Mock
}

func (m *mockSummarizer) Compare(ctx context.Context, newer, older domain.ReportAnalysis) (string, error) {
	args := m.Called(ctx, newer, older)
	return args.String(0), args.Error(1)
}

// fetcherFunc adapts a function to the Fetcher interface, used by tests that
// need to gate fetch completion.
type fetcherFunc func(ctx context.Context, id string) (domain.ReportAnalysis, error)

func (f fetcherFunc) GetReportAnalysis(ctx context.Context, id string) (domain.ReportAnalysis, error) {
	return f(ctx, id)
}

type summarizerFunc func(ctx context.Context, newer, older domain.ReportAnalysis) (string, error)

func (f summarizerFunc) Compare(ctx context.Context, newer, older domain.ReportAnalysis) (string, error) {
	return f(ctx, newer, older)
}

func waitFor(t *testing.T, c *Controller, cond func(Snapshot) bool) Snapshot {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		if s := c.Snapshot(); cond(s) {
			return s
		}
		select {
		case <-deadline:
			t.Fatalf("timed out waiting for snapshot, last state %q / %q",
				c.Snapshot().State, c.Snapshot().SummaryState)
		case <-time.After(2 * time.Millisecond):
		}
	}
}

func reportAt(id string, created time.Time) domain.ReportAnalysis {
	return domain.ReportAnalysis{
		ID:              id,
		TestType:        "echo",
		TestTypeDisplay: "Echocardiogram",
		CreatedAt:       created,
		Measurements:    []domain.Measurement{meas("EF", domain.Num(55), "%")},
		KeyFindings:     []domain.Finding{finding("Mild MR", "Slight leak.")},
	}
}

func TestRun_ComputesTables(t *testing.T) {
	older := reportAt("old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	older.Measurements = []domain.Measurement{meas("EF", domain.Num(60), "%")}
	newer := reportAt("new", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	fetcher := new(mockFetcher)
	fetcher.On("GetReportAnalysis", mock.Anything, "old").Return(older, nil)
	fetcher.On("GetReportAnalysis", mock.Anything, "new").Return(newer, nil)

	// argument order does not matter, the resolver picks the newer side
	result, err := Run(context.Background(), fetcher, "old", "new")
	require.NoError(t, err)

	assert.Equal(t, "new", result.NewerID)
	assert.Equal(t, "old", result.OlderID)
	assert.Equal(t, "Echocardiogram", result.NewerLabel)
	require.Len(t, result.Measurements, 1)
	assert.Equal(t, domain.TrendDecreased, result.Measurements[0].Trend)
	fetcher.AssertExpectations(t)
}

func TestRun_InputValidation(t *testing.T) {
	fetcher := new(mockFetcher)
	_, err := Run(context.Background(), fetcher, "", "b")
	require.Error(t, err)
	// no lookup is attempted for invalid input
	fetcher.AssertNotCalled(t, "GetReportAnalysis")
}

func TestRun_FetchErrorIsFatal(t *testing.T) {
	newer := reportAt("new", time.Now())

	fetcher := new(mockFetcher)
	fetcher.On("GetReportAnalysis", mock.Anything, "new").Return(newer, nil)
	fetcher.On("GetReportAnalysis", mock.Anything, "missing").
		Return(domain.ReportAnalysis{}, fmt.Errorf("report not found"))

	_, err := Run(context.Background(), fetcher, "new", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestController_HappyPath(t *testing.T) {
	older := reportAt("old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := reportAt("new", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	fetcher := new(mockFetcher)
	fetcher.On("GetReportAnalysis", mock.Anything, "old").Return(older, nil)
	fetcher.On("GetReportAnalysis", mock.Anything, "new").Return(newer, nil)

	summarizer := new(mockSummarizer)
	summarizer.On("Compare", mock.Anything, newer, older).
		Return("EF held steady between the two studies.", nil)

	c := NewController(fetcher, summarizer)
	assert.Equal(t, domain.SessionAwaitingInput, c.Snapshot().State)

	session, err := c.Start(context.Background(), "new", "old")
	require.NoError(t, err)

	final := waitFor(t, c, func(s Snapshot) bool { return s.SummaryState == domain.SummaryReady })
	assert.Equal(t, session, final.Session)
	assert.Equal(t, domain.SessionReady, final.State)
	require.NotNil(t, final.Result)
	assert.Equal(t, "new", final.Result.NewerID)
	assert.Equal(t, "EF held steady between the two studies.", final.Summary)

	summarizer.AssertExpectations(t)
}

func TestController_TablesReadyBeforeSummary(t *testing.T) {
	older := reportAt("old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := reportAt("new", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	fetcher := new(mockFetcher)
	fetcher.On("GetReportAnalysis", mock.Anything, "old").Return(older, nil)
	fetcher.On("GetReportAnalysis", mock.Anything, "new").Return(newer, nil)

	release := make(chan struct{})
	summarizer := summarizerFunc(func(ctx context.Context, _, _ domain.ReportAnalysis) (string, error) {
		<-release
		return "done", nil
	})

	c := NewController(fetcher, summarizer)
	_, err := c.Start(context.Background(), "new", "old")
	require.NoError(t, err)

	pending := waitFor(t, c, func(s Snapshot) bool { return s.State == domain.SessionReady })
	assert.Equal(t, domain.SummaryPending, pending.SummaryState)
	require.NotNil(t, pending.Result, "tables must be available while the summary is in flight")

	close(release)
	waitFor(t, c, func(s Snapshot) bool { return s.SummaryState == domain.SummaryReady })
}

func TestController_FetchErrorState(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("GetReportAnalysis", mock.Anything, mock.Anything).
		Return(domain.ReportAnalysis{}, fmt.Errorf("network unreachable"))

	c := NewController(fetcher, nil)
	_, err := c.Start(context.Background(), "a", "b")
	require.NoError(t, err)

	final := waitFor(t, c, func(s Snapshot) bool { return s.State == domain.SessionError })
	require.Error(t, final.Err)
	assert.Nil(t, final.Result)
}

func TestController_SummaryErrorFallsBack(t *testing.T) {
	older := reportAt("old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := reportAt("new", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	fetcher := new(mockFetcher)
	fetcher.On("GetReportAnalysis", mock.Anything, "old").Return(older, nil)
	fetcher.On("GetReportAnalysis", mock.Anything, "new").Return(newer, nil)

	summarizer := new(mockSummarizer)
	summarizer.On("Compare", mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("model overloaded"))

	c := NewController(fetcher, summarizer)
	_, err := c.Start(context.Background(), "new", "old")
	require.NoError(t, err)

	final := waitFor(t, c, func(s Snapshot) bool { return s.SummaryState == domain.SummaryError })
	assert.Equal(t, domain.SessionReady, final.State)
	require.NotNil(t, final.Result, "summary failure must not invalidate the tables")
	assert.Equal(t, SummaryFallback, final.Summary)
}

func TestController_NilSummarizerFallsBack(t *testing.T) {
	older := reportAt("old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := reportAt("new", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	fetcher := new(mockFetcher)
	fetcher.On("GetReportAnalysis", mock.Anything, "old").Return(older, nil)
	fetcher.On("GetReportAnalysis", mock.Anything, "new").Return(newer, nil)

	c := NewController(fetcher, nil)
	_, err := c.Start(context.Background(), "new", "old")
	require.NoError(t, err)

	final := waitFor(t, c, func(s Snapshot) bool { return s.SummaryState == domain.SummaryError })
	assert.Equal(t, SummaryFallback, final.Summary)
}

func TestController_StartValidation(t *testing.T) {
	c := NewController(new(mockFetcher), nil)
	_, err := c.Start(context.Background(), "only-one", "")
	require.Error(t, err)
	assert.Equal(t, domain.SessionAwaitingInput, c.Snapshot().State)
}

func TestController_NewSessionSupersedesInFlight(t *testing.T) {
	slowRelease := make(chan struct{})
	fastOlder := reportAt("fast-old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	fastNewer := reportAt("fast-new", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	fetcher := fetcherFunc(func(ctx context.Context, id string) (domain.ReportAnalysis, error) {
		switch id {
		case "fast-old":
			return fastOlder, nil
		case "fast-new":
			return fastNewer, nil
		default:
			<-slowRelease
			return reportAt(id, time.Now()), nil
		}
	})

	c := NewController(fetcher, nil)

	_, err := c.Start(context.Background(), "slow-a", "slow-b")
	require.NoError(t, err)

	second, err := c.Start(context.Background(), "fast-new", "fast-old")
	require.NoError(t, err)

	final := waitFor(t, c, func(s Snapshot) bool { return s.State == domain.SessionReady })
	assert.Equal(t, second, final.Session)

	// let the superseded fetches land; they must not overwrite newer state
	close(slowRelease)
	time.Sleep(20 * time.Millisecond)

	current := c.Snapshot()
	assert.Equal(t, second, current.Session)
	require.NotNil(t, current.Result)
	assert.Equal(t, "fast-new", current.Result.NewerID)
}

func TestController_Reset(t *testing.T) {
	older := reportAt("old", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	newer := reportAt("new", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	fetcher := new(mockFetcher)
	fetcher.On("GetReportAnalysis", mock.Anything, "old").Return(older, nil)
	fetcher.On("GetReportAnalysis", mock.Anything, "new").Return(newer, nil)

	c := NewController(fetcher, nil)
	_, err := c.Start(context.Background(), "new", "old")
	require.NoError(t, err)
	waitFor(t, c, func(s Snapshot) bool { return s.State == domain.SessionReady })

	c.Reset()
	s := c.Snapshot()
	assert.Equal(t, domain.SessionAwaitingInput, s.State)
	assert.Nil(t, s.Result)
}
