// Package build provides documentation index build orchestration.
// It coordinates downloading and extracting the documentation archive,
// parsing pages per the build plan, name resolution, and storage of the
// finalized index.
package build

import (
	"context"
	"fmt"
	"time"

	"github.com/Bluscream/acedocs"
	"golang.org/x/sync/errgroup"
)

// Progress messages sent to the ProgressFunc.
const (
	StatusDownloading      = "Downloading..."
	StatusBuilding         = "Building..."
	StatusDownloadFailed   = "download failed."
	StatusExtractionFailed = "extraction failed."
)

// DefaultConcurrency is the number of pages parsed at once.
const DefaultConcurrency = 8

// Builder builds the documentation index described by Plan.
type Builder struct {
	Fetcher   acedocs.Fetcher
	Extractor acedocs.ArchiveExtractor
	Workspace acedocs.Workspace
	Pages     acedocs.PageSource
	Parsers   acedocs.ParserFactory
	Records   acedocs.RecordService // Optional; the index is not stored when nil
	Plan      *acedocs.Plan

	Concurrency int
	RetryDelays []time.Duration
	Logf        LogFunc

	// ProgressTimeout bounds the wait for the progress sink once the build
	// is done. Zero means DefaultProgressTimeout.
	ProgressTimeout time.Duration
}

// Options controls a single build.
type Options struct {
	// Fetch downloads and extracts a fresh archive before parsing.
	// Without it the previously extracted documentation is reused.
	Fetch bool
}

// Result holds the outcome of a build.
type Result struct {
	Names   int // Names held by all records
	Entries int // Unique records
	Pages   int // Pages parsed successfully
	Failed  int // Pages that could not be listed, read or parsed
	Records []*acedocs.Record
}

// Status returns the summary line reported when a build completes.
func (r *Result) Status() string {
	return fmt.Sprintf("List built. Total names: %d Unique entries: %d", r.Names, r.Entries)
}

// job is one page to parse with the parser of its step.
type job struct {
	step   int
	path   string
	parser acedocs.PageParser
}

// parseResult holds the outcome of parsing a single page.
type parseResult struct {
	entries []*acedocs.Entry
	err     error
}

// Build runs the whole pipeline. The progress callback, if provided,
// receives status messages on a separate goroutine. Build waits for
// delivery of every message, up to ProgressTimeout; a blocked callback never
// holds up the result.
//
// Download and extraction failures abort the build. Pages that fail to
// parse are counted in Result.Failed and skipped.
func (b *Builder) Build(ctx context.Context, opts Options, progress acedocs.ProgressFunc) (*Result, error) {
	if b.Plan == nil {
		return nil, acedocs.Errorf(acedocs.EINVALID, "build plan required")
	}
	if err := b.Plan.Validate(); err != nil {
		return nil, err
	}

	n := newNotifier(progress)
	defer n.close(ctx, b.progressTimeout())

	if opts.Fetch {
		if err := b.fetch(ctx, n); err != nil {
			return nil, err
		}
	}

	n.send(StatusBuilding)

	jobs, failed, err := b.jobs(ctx)
	if err != nil {
		return nil, err
	}

	results := b.parse(ctx, jobs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Aggregate strictly in plan order so contested names resolve the
	// same way on every build.
	agg := acedocs.NewAggregator(b.Plan.Aliases)
	parsed := 0
	for i, res := range results {
		if res.err != nil {
			failed++
			b.logf("parse %s: %v", jobs[i].path, res.err)
			continue
		}
		parsed++
		for _, entry := range res.entries {
			agg.AddEntry(entry.Candidate())
		}
	}

	result := &Result{
		Names:   agg.NameCount(),
		Entries: agg.Len(),
		Pages:   parsed,
		Failed:  failed,
		Records: agg.Records(),
	}

	if b.Records != nil {
		if err := b.Records.ReplaceRecords(ctx, result.Records); err != nil {
			return nil, fmt.Errorf("store index: %w", err)
		}
	}

	n.send(result.Status())
	return result, nil
}

// fetch downloads the archive and swaps it into the workspace.
func (b *Builder) fetch(ctx context.Context, n *notifier) error {
	n.send(StatusDownloading)

	delays := b.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	data, err := FetchWithRetry(ctx, b.Plan.ArchiveURL, b.Fetcher.Fetch, b.Logf, delays)
	if err != nil {
		n.send(StatusDownloadFailed)
		return fmt.Errorf("download %s: %w", b.Plan.ArchiveURL, err)
	}

	if err := b.extract(ctx, data); err != nil {
		n.send(StatusExtractionFailed)
		_ = b.Workspace.Abort()
		return fmt.Errorf("extract archive: %w", err)
	}
	return nil
}

func (b *Builder) extract(ctx context.Context, data []byte) error {
	if err := b.Workspace.Abort(); err != nil {
		return err
	}
	if err := b.Extractor.Extract(ctx, data, b.Workspace.StagingDir()); err != nil {
		return err
	}
	return b.Workspace.Commit()
}

// jobs expands the plan steps into pages, in plan order. Directories that
// cannot be listed count as failures.
func (b *Builder) jobs(ctx context.Context) ([]job, int, error) {
	var jobs []job
	failed := 0
	for i, step := range b.Plan.Steps {
		parser, err := b.Parsers.ParserFor(step)
		if err != nil {
			return nil, 0, fmt.Errorf("step %d (%s): %w", i+1, step.String(), err)
		}

		paths := append([]string(nil), step.Pages...)
		if step.Dir != "" {
			listed, err := b.Pages.ListPages(ctx, step.Dir, step.PageExt())
			if err != nil {
				failed++
				b.logf("list %s: %v", step.Dir, err)
			}
			paths = append(paths, listed...)
		}

		for _, path := range paths {
			jobs = append(jobs, job{step: i, path: path, parser: parser})
		}
	}
	return jobs, failed, nil
}

// parse reads and parses every page concurrently. Results are indexed like
// jobs.
func (b *Builder) parse(ctx context.Context, jobs []job) []parseResult {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	results := make([]parseResult, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, j := range jobs {
		g.Go(func() error {
			results[i] = b.parsePage(gctx, j)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (b *Builder) parsePage(ctx context.Context, j job) (res parseResult) {
	defer func() {
		if r := recover(); r != nil {
			res = parseResult{err: fmt.Errorf("parser panic: %v", r)}
		}
	}()

	if err := ctx.Err(); err != nil {
		return parseResult{err: err}
	}

	page, err := b.Pages.ReadPage(ctx, j.path)
	if err != nil {
		return parseResult{err: err}
	}

	entries, err := j.parser.Parse(ctx, page)
	return parseResult{entries: entries, err: err}
}

func (b *Builder) progressTimeout() time.Duration {
	if b.ProgressTimeout <= 0 {
		return DefaultProgressTimeout
	}
	return b.ProgressTimeout
}

func (b *Builder) logf(format string, args ...any) {
	if b.Logf != nil {
		b.Logf(format, args...)
	}
}

// Run is a build started in the background.
type Run struct {
	done   chan struct{}
	result *Result
	err    error
}

// Start runs Build on a new goroutine and returns immediately.
func (b *Builder) Start(ctx context.Context, opts Options, progress acedocs.ProgressFunc) *Run {
	r := &Run{done: make(chan struct{})}
	go func() {
		defer close(r.done)
		r.result, r.err = b.Build(ctx, opts, progress)
	}()
	return r
}

// Done is closed when the build finishes.
func (r *Run) Done() <-chan struct{} {
	return r.done
}

// Wait blocks until the build finishes and returns its outcome.
func (r *Run) Wait() (*Result, error) {
	<-r.done
	return r.result, r.err
}
