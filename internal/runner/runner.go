// Package runner drives the sync pipeline: fetch, classify, locate,
// merge, persist. Fully sequential; the catalog fetch completes before
// the database is touched, and any stage failure aborts the run before
// a write can happen.
package runner

import (
	"context"
	"time"

	"github.com/joss/owfree/internal/allowlist"
	"github.com/joss/owfree/internal/catalog"
	"github.com/joss/owfree/internal/logging"
	"github.com/joss/owfree/internal/store"
)

// Fetcher retrieves the provider catalog.
type Fetcher interface {
	Fetch(ctx context.Context) ([]catalog.Model, error)
}

// ConfigStore reads and writes the persisted config row.
type ConfigStore interface {
	ReadRow(ctx context.Context) (*store.ConfigRow, error)
	WriteRow(ctx context.Context, data []byte) error
}

// Result summarizes one run.
type Result struct {
	Total   int
	Free    int
	Paid    int
	FreeIDs []string
	Current []string
	Changes allowlist.ChangeSet

	// Applied is true only when the store was actually written.
	Applied bool

	// SnapshotPath is the pre-apply database copy, if one was taken.
	SnapshotPath string
}

// Runner executes the pipeline against injected collaborators.
type Runner struct {
	fetcher  Fetcher
	store    ConfigStore
	log      *logging.Logger
	path     allowlist.Path
	apply    bool
	snapshot func() (string, error)
}

// Option configures the runner.
type Option func(*Runner)

// WithLogger sets the run logger.
func WithLogger(l *logging.Logger) Option {
	return func(r *Runner) {
		r.log = l
	}
}

// WithPath overrides the allow-list path.
func WithPath(p allowlist.Path) Option {
	return func(r *Runner) {
		r.path = p
	}
}

// WithApply enables persistence; without it every run is a dry-run.
func WithApply(apply bool) Option {
	return func(r *Runner) {
		r.apply = apply
	}
}

// WithSnapshot registers a function that backs up the database file.
// It runs once, just before the first (and only) write.
func WithSnapshot(fn func() (string, error)) Option {
	return func(r *Runner) {
		r.snapshot = fn
	}
}

// New creates a runner.
func New(fetcher Fetcher, cfgStore ConfigStore, opts ...Option) *Runner {
	r := &Runner{
		fetcher: fetcher,
		store:   cfgStore,
		log:     logging.New("runner"),
		path:    allowlist.ConnectionPath(0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes one sync. Idempotent: an empty ChangeSet skips
// persistence entirely, so back-to-back runs against the same catalog
// write at most once.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	models, err := r.fetcher.Fetch(ctx)
	if err != nil {
		r.log.Error("fetch.failed", nil, err)
		return nil, err
	}
	r.log.Timed("fetch.done", start, map[string]any{"models": len(models)})

	free, paid := catalog.CountTiers(models)
	res := &Result{
		Total:   len(models),
		Free:    free,
		Paid:    paid,
		FreeIDs: catalog.FreeIDs(models),
	}

	row, err := r.store.ReadRow(ctx)
	if err != nil {
		r.log.Error("store.read_failed", nil, err)
		return nil, err
	}

	res.Current, err = allowlist.Locate(row.Data, r.path)
	if err != nil {
		r.log.Error("locate.failed", map[string]any{"path": r.path.String()}, err)
		return nil, err
	}

	res.Changes = allowlist.Plan(res.Current, res.FreeIDs)
	r.log.Info("plan.done", map[string]any{
		"added":     len(res.Changes.Added),
		"removed":   len(res.Changes.Removed),
		"unchanged": res.Changes.Unchanged,
	})

	if res.Changes.Empty() {
		r.log.Info("plan.no_changes", nil)
		return res, nil
	}
	if !r.apply {
		r.log.Info("plan.dry_run", nil)
		return res, nil
	}

	if r.snapshot != nil {
		res.SnapshotPath, err = r.snapshot()
		if err != nil {
			r.log.Error("snapshot.failed", nil, err)
			return nil, err
		}
		r.log.Info("snapshot.done", map[string]any{"path": res.SnapshotPath})
	}

	next, err := allowlist.Apply(row.Data, r.path, res.FreeIDs)
	if err != nil {
		r.log.Error("merge.failed", nil, err)
		return nil, err
	}
	if err := r.store.WriteRow(ctx, next); err != nil {
		r.log.Error("store.write_failed", nil, err)
		return nil, err
	}

	res.Applied = true
	r.log.Timed("run.applied", start, map[string]any{"ids": len(res.FreeIDs)})
	return res, nil
}
