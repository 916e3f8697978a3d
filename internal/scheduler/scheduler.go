// Package scheduler runs the garden's periodic jobs on cron specs.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/florarium-backend/internal/metrics"
)

// Job is one periodic task. Spec uses the standard five-field cron syntax
// or a descriptor such as "@every 1m".
type Job struct {
	Name       string
	Spec       string
	RunOnStart bool
	Run        func(ctx context.Context) error
}

// Scheduler owns a cron runner. Overlapping runs of the same job are skipped.
type Scheduler struct {
	cron *cron.Cron
	log  *slog.Logger

	mu   sync.Mutex
	jobs map[string]Job
	ctx  context.Context
}

// New creates a scheduler evaluating specs in loc.
func New(logger *slog.Logger, loc *time.Location) *Scheduler {
	log := logger.With("component", "scheduler")
	cl := cronLogger{log: log}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log:  log,
		jobs: make(map[string]Job),
		ctx:  context.Background(),
	}
}

// Add registers j. It fails on an empty name, a duplicate name or an
// invalid spec.
func (s *Scheduler) Add(j Job) error {
	if j.Name == "" || j.Run == nil {
		return errors.New("scheduler: job needs a name and a func")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.jobs[j.Name]; dup {
		return fmt.Errorf("scheduler: duplicate job %q", j.Name)
	}
	if _, err := s.cron.AddFunc(j.Spec, func() { s.run(j) }); err != nil {
		return fmt.Errorf("scheduler: job %q spec %q: %w", j.Name, j.Spec, err)
	}
	s.jobs[j.Name] = j
	return nil
}

// Run starts the cron runner, fires RunOnStart jobs and blocks until ctx is
// done. It then waits for running jobs to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	var initial []Job
	for _, j := range s.jobs {
		if j.RunOnStart {
			initial = append(initial, j)
		}
	}
	s.mu.Unlock()

	s.cron.Start()
	s.log.InfoContext(ctx, "scheduler started", slog.Int("jobs", len(s.cron.Entries())))
	for _, j := range initial {
		go s.run(j)
	}

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

// Trigger runs the named job now, outside the cron timetable.
func (s *Scheduler) Trigger(ctx context.Context, name string) error {
	s.mu.Lock()
	j, ok := s.jobs[name]
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("scheduler: unknown job %q", name)
	}
	return s.exec(ctx, j)
}

func (s *Scheduler) run(j Job) {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	_ = s.exec(ctx, j)
}

func (s *Scheduler) exec(ctx context.Context, j Job) error {
	start := time.Now()
	err := j.Run(ctx)
	d := time.Since(start)
	metrics.RecordJob(j.Name, d, err == nil)

	if err != nil {
		s.log.WarnContext(ctx, "job failed",
			slog.String("job", j.Name),
			slog.Duration("duration", d),
			slog.String("error", err.Error()),
		)
		return err
	}
	s.log.DebugContext(ctx, "job finished", slog.String("job", j.Name), slog.Duration("duration", d))
	return nil
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
