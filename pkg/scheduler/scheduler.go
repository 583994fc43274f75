// Package scheduler periodically triggers placeholder resolution for all stored documents.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

//go:generate moq -out mocks/documents.go -pkg mocks -skip-ensure -fmt goimports . Documents
//go:generate moq -out mocks/resolver.go -pkg mocks -skip-ensure -fmt goimports . Resolver

// Documents lists documents to resolve
type Documents interface {
	ListDocumentIDs(ctx context.Context) ([]string, error)
}

// Resolver resolves placeholders in a stored document
type Resolver interface {
	ResolveDocument(ctx context.Context, id string) (bool, error)
}

// Config holds scheduler configuration
type Config struct {
	Interval   time.Duration
	MaxWorkers int
}

// Scheduler fires a resolution pass for every document on a fixed interval
type Scheduler struct {
	docs       Documents
	resolver   Resolver
	interval   time.Duration
	maxWorkers int

	cron   *cron.Cron
	wg     sync.WaitGroup
	cancel context.CancelFunc
	runs   atomic.Int64
}

// NewScheduler creates a new scheduler instance
func NewScheduler(docs Documents, resolver Resolver, cfg Config) *Scheduler {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Second
	}
	if cfg.MaxWorkers <= 0 {
		cfg.MaxWorkers = 4
	}
	return &Scheduler{
		docs:       docs,
		resolver:   resolver,
		interval:   cfg.Interval,
		maxWorkers: cfg.MaxWorkers,
	}
}

// Start runs the first check immediately and schedules the next ones
func (s *Scheduler) Start(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	logger := cron.PrintfLogger(cronLogger{})
	s.cron = cron.New(cron.WithLogger(logger), cron.WithChain(cron.SkipIfStillRunning(logger)))
	if _, err := s.cron.AddFunc("@every "+s.interval.String(), func() { s.RunOnce(ctx) }); err != nil {
		s.cancel()
		return err
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.RunOnce(ctx)
	}()
	s.cron.Start()

	lgr.Printf("[INFO] scheduler started with interval %v, max workers %d", s.interval, s.maxWorkers)
	return nil
}

// Stop cancels in-flight passes and waits for running jobs to finish
func (s *Scheduler) Stop() {
	lgr.Printf("[INFO] stopping scheduler...")
	if s.cancel != nil {
		s.cancel()
	}
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	s.wg.Wait()
	lgr.Printf("[INFO] scheduler stopped")
}

// Runs returns the number of completed checks
func (s *Scheduler) Runs() int64 {
	return s.runs.Load()
}

// RunOnce resolves all documents with bounded parallelism and returns the number of changed ones.
// Failures are logged, a document busy with another pass is skipped by the resolver.
func (s *Scheduler) RunOnce(ctx context.Context) int {
	defer s.runs.Add(1)

	ids, err := s.docs.ListDocumentIDs(ctx)
	if err != nil {
		lgr.Printf("[ERROR] failed to list documents: %v", err)
		return 0
	}
	if len(ids) == 0 {
		return 0
	}

	var changed atomic.Int32
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for _, id := range ids {
		g.Go(func() error {
			ok, err := s.resolver.ResolveDocument(gctx, id)
			if err != nil {
				lgr.Printf("[WARN] failed to resolve document %s: %v", id, err)
				return nil
			}
			if ok {
				changed.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	if n := changed.Load(); n > 0 {
		lgr.Printf("[INFO] placeholders resolved in %d of %d documents", n, len(ids))
	}
	return int(changed.Load())
}

// cronLogger routes cron messages to lgr
type cronLogger struct{}

func (cronLogger) Printf(format string, args ...any) {
	lgr.Printf("[DEBUG] cron: "+format, args...)
}
