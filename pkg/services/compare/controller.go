package compare

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyounis-TX/explify/pkg/models/domain"
)

// SummaryFallback replaces the narrative when generation fails. Summary
// failure is non-fatal: the tables stay usable.
const SummaryFallback = "A narrative summary could not be generated for this comparison. " +
	"The measurement and finding tables above are complete and unaffected."

// Fetcher looks up a stored report analysis by id.
type Fetcher interface {
	GetReportAnalysis(ctx context.Context, id string) (domain.ReportAnalysis, error)
}

// Summarizer produces the narrative trend summary for a resolved pair.
type Summarizer interface {
	Compare(ctx context.Context, newer, older domain.ReportAnalysis) (string, error)
}

// BuildResult resolves the chronological order of two snapshots and runs both
// comparators. Pure and synchronous; never fails on well-formed input.
func BuildResult(a, b domain.ReportAnalysis) domain.ComparisonResult {
	newer, older := ResolvePair(a, b)
	return domain.ComparisonResult{
		NewerID:        newer.ID,
		OlderID:        older.ID,
		NewerLabel:     label(newer),
		OlderLabel:     label(older),
		NewerCreatedAt: newer.CreatedAt,
		OlderCreatedAt: older.CreatedAt,
		Measurements:   CompareMeasurements(newer.Measurements, older.Measurements),
		Findings:       CompareFindings(newer.KeyFindings, older.KeyFindings),
	}
}

func label(r domain.ReportAnalysis) string {
	if r.Filename != "" {
		return r.Filename
	}
	return r.TestTypeDisplay
}

// fetchBoth issues both snapshot lookups concurrently and waits for both.
func fetchBoth(ctx context.Context, fetcher Fetcher, firstID, secondID string) (first, second domain.ReportAnalysis, err error) {
	ids := [2]string{firstID, secondID}
	var snaps [2]domain.ReportAnalysis
	var errs [2]error

	var wg sync.WaitGroup
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snaps[i], errs[i] = fetcher.GetReportAnalysis(ctx, ids[i])
		}(i)
	}
	wg.Wait()

	for i, e := range errs {
		if e != nil {
			return domain.ReportAnalysis{}, domain.ReportAnalysis{}, fmt.Errorf("fetch report %s: %w", ids[i], e)
		}
	}
	return snaps[0], snaps[1], nil
}

// Run fetches both snapshots concurrently and computes the comparison tables.
// Either fetch failing is fatal to the whole comparison; retry is a fresh
// invocation.
func Run(ctx context.Context, fetcher Fetcher, firstID, secondID string) (domain.ComparisonResult, error) {
	if firstID == "" || secondID == "" {
		return domain.ComparisonResult{}, fmt.Errorf("comparison requires two report ids")
	}
	first, second, err := fetchBoth(ctx, fetcher, firstID, secondID)
	if err != nil {
		return domain.ComparisonResult{}, err
	}
	return BuildResult(first, second), nil
}

// Snapshot is a point-in-time view of a comparison session. Result is only
// set once State is SessionReady; Summary is only set once SummaryState is
// terminal.
type Snapshot struct {
	Session      uuid.UUID
	State        domain.SessionState
	SummaryState domain.SummaryState
	Result       *domain.ComparisonResult
	Summary      string
	Err          error
}

// Controller drives one comparison session at a time for a presentation
// layer. Starting a new session supersedes any in-flight one: async results
// arriving for an old session are discarded, never merged. The tables are
// published the moment both fetches land; the narrative request is dispatched
// afterwards and never blocks them.
type Controller struct {
	fetcher    Fetcher
	summarizer Summarizer

	mu      sync.Mutex
	current Snapshot
	updates chan Snapshot
}

func NewController(fetcher Fetcher, summarizer Summarizer) *Controller {
	return &Controller{
		fetcher:    fetcher,
		summarizer: summarizer,
		current:    Snapshot{State: domain.SessionAwaitingInput, SummaryState: domain.SummaryIdle},
		updates:    make(chan Snapshot, 16),
	}
}

// Updates delivers a snapshot after every state transition. Sends never
// block; a slow consumer misses intermediate snapshots, not the final one,
// because Snapshot always returns the latest state.
func (c *Controller) Updates() <-chan Snapshot {
	return c.updates
}

// Snapshot returns the latest session state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Reset returns the controller to AwaitingInput and invalidates any in-flight
// session.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(Snapshot{State: domain.SessionAwaitingInput, SummaryState: domain.SummaryIdle})
}

// Start begins a new comparison session for two report ids and returns its
// session id. Invalid input fails immediately without any lookup and leaves
// the previous session state untouched.
func (c *Controller) Start(ctx context.Context, firstID, secondID string) (uuid.UUID, error) {
	if firstID == "" || secondID == "" {
		return uuid.Nil, fmt.Errorf("comparison requires two report ids")
	}

	session := uuid.New()
	c.mu.Lock()
	c.setLocked(Snapshot{
		Session:      session,
		State:        domain.SessionLoading,
		SummaryState: domain.SummaryIdle,
	})
	c.mu.Unlock()

	go c.load(ctx, session, firstID, secondID)
	return session, nil
}

func (c *Controller) load(ctx context.Context, session uuid.UUID, firstID, secondID string) {
	logger := zerolog.Ctx(ctx)

	first, second, err := fetchBoth(ctx, c.fetcher, firstID, secondID)

	c.mu.Lock()
	if c.current.Session != session {
		c.mu.Unlock()
		return // superseded while fetching
	}
	if err != nil {
		logger.Error().Err(err).Msg("comparison fetch failed")
		c.setLocked(Snapshot{Session: session, State: domain.SessionError, SummaryState: domain.SummaryIdle, Err: err})
		c.mu.Unlock()
		return
	}

	result := BuildResult(first, second)
	c.setLocked(Snapshot{
		Session:      session,
		State:        domain.SessionReady,
		SummaryState: domain.SummaryPending,
		Result:       &result,
	})
	c.mu.Unlock()

	newer, older := ResolvePair(first, second)
	go c.summarize(ctx, session, newer, older)
}

func (c *Controller) summarize(ctx context.Context, session uuid.UUID, newer, older domain.ReportAnalysis) {
	logger := zerolog.Ctx(ctx)

	summary := ""
	state := domain.SummaryReady
	if c.summarizer == nil {
		state = domain.SummaryError
	} else {
		text, err := c.summarizer.Compare(ctx, newer, older)
		if err != nil {
			logger.Warn().Err(err).Msg("narrative summary failed, substituting fallback")
			state = domain.SummaryError
		}
		summary = text
	}
	if state == domain.SummaryError {
		summary = SummaryFallback
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current.Session != session || c.current.State != domain.SessionReady {
		return // stale summary, drop it
	}
	next := c.current
	next.SummaryState = state
	next.Summary = summary
	c.setLocked(next)
}

func (c *Controller) setLocked(s Snapshot) {
	c.current = s
	select {
	case c.updates <- s:
	default:
	}
}
