// Package batch runs the extraction engine over many pages on a worker pool
// and merges the per-page results into one cross-page deduplicated prospect
// list.
package batch

import (
	"context"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/prospect"
	"github.com/fwojciec/prospect/bloom"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Bloom filter sizing for the seen-URL check.
const (
	expectedPages     = 10000
	falsePositiveRate = 0.01
)

// Prospect is one merged extraction record, assigned a stable ID for
// downstream ingestion.
type Prospect struct {
	ID string `json:"id"`
	prospect.Candidate
}

// Result holds the outcome of a batch run.
type Result struct {
	Prospects      []Prospect
	PagesProcessed int
	PagesSkipped   int
	Duplicates     int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Found     int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressSkipped
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress. It is invoked
// from the collecting goroutine only.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single page.
type pageResult struct {
	position int
	url      string
	found    []prospect.Candidate
}

// Processor runs per-page extraction in parallel. The engine is stateless,
// so pages need no coordination; only the final identity-key merge is
// single-threaded.
type Processor struct {
	Engine      prospect.Engine
	Concurrency int
}

// Process extracts candidates from every page and merges them across pages:
// the first candidate observed per identity key, in input page order, wins.
// Pages repeating an already-seen SourceURL are skipped before dispatch.
// Cancelling the context stops dispatching new pages and returns ctx.Err().
func (p *Processor) Process(ctx context.Context, pages []*prospect.RawPage, progress ProgressFunc) (*Result, error) {
	if p.Engine == nil {
		return nil, prospect.Errorf(prospect.EINTERNAL, "batch processor requires an engine")
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	total := len(pages)
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	// Drop repeated page URLs before dispatch.
	seen := bloom.NewFilter(expectedPages, falsePositiveRate)
	work := make([]*prospect.RawPage, 0, len(pages))
	var skipped int
	for _, page := range pages {
		if page == nil {
			skipped++
			continue
		}
		if page.SourceURL != "" && !seen.AddIfNew(page.SourceURL) {
			skipped++
			if progress != nil {
				progress(ProgressEvent{
					Type:  ProgressSkipped,
					Total: total,
					URL:   page.SourceURL,
				})
			}
			continue
		}
		work = append(work, page)
	}

	resultCh := make(chan pageResult, len(work))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, page := range work {
			if gctx.Err() != nil {
				break
			}
			i, page := i, page
			g.Go(func() error {
				resultCh <- pageResult{
					position: i,
					url:      page.SourceURL,
					found:    p.Engine.Extract(page),
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in input order so the merge below is deterministic.
	results := make([][]prospect.Candidate, len(work))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result.found
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressCompleted,
				Completed: int(completed.Load()),
				Total:     total,
				URL:       result.url,
				Found:     len(result.found),
			})
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Cross-page merge: first candidate per identity key wins.
	seenKeys := make(map[uint64]struct{})
	var prospects []Prospect
	var duplicates int
	for _, found := range results {
		for _, c := range found {
			key := xxhash.Sum64String(c.IdentityKey())
			if _, ok := seenKeys[key]; ok {
				duplicates++
				continue
			}
			seenKeys[key] = struct{}{}
			prospects = append(prospects, Prospect{
				ID:        uuid.NewString(),
				Candidate: c,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: int(completed.Load()),
			Total:     total,
		})
	}

	return &Result{
		Prospects:      prospects,
		PagesProcessed: len(work),
		PagesSkipped:   skipped,
		Duplicates:     duplicates,
	}, nil
}
