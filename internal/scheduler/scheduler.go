package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Refresher is refreshed on every tick. Errors are logged, never surfaced.
type Refresher interface {
	AutoRefresh(ctx context.Context) error
}

// Scheduler runs a Refresher at a constant delay. A tick that arrives while
// the previous refresh is still running is skipped.
type Scheduler struct {
	target   Refresher
	logger   *zap.Logger
	interval time.Duration
	timeout  time.Duration

	mu      sync.Mutex
	cron    *cron.Cron
	entryID cron.EntryID
	ctx     context.Context
	stop    chan struct{}
	running bool
	lastRun time.Time
}

func NewScheduler(target Refresher, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		target:   target,
		logger:   logger,
		interval: interval,
		timeout:  60 * time.Second,
	}
}

// Start schedules the refresh and returns immediately. The scheduler stops
// when ctx ends or Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.ctx = ctx
	stop := make(chan struct{})
	s.stop = stop

	s.cron = cron.New(cron.WithChain(
		cron.Recover(cronLogger{s.logger.Sugar()}),
		cron.SkipIfStillRunning(cronLogger{s.logger.Sugar()}),
	))
	s.entryID = s.cron.Schedule(cron.Every(s.interval), cron.FuncJob(s.runRefresh))
	s.cron.Start()
	next := s.cron.Entry(s.entryID).Next
	s.mu.Unlock()

	s.logger.Info("Scheduler started",
		zap.Duration("interval", s.interval),
		zap.Time("next_run", next))

	// The watcher belongs to this run only and exits with it.
	go func() {
		select {
		case <-ctx.Done():
			s.stopRun(stop)
		case <-stop:
		}
	}()
}

func (s *Scheduler) runRefresh() {
	s.mu.Lock()
	parent := s.ctx
	s.lastRun = time.Now()
	s.mu.Unlock()

	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, s.timeout)
	defer cancel()

	startTime := time.Now()
	if err := s.target.AutoRefresh(ctx); err != nil {
		s.logger.Warn("Scheduled refresh failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(startTime)))
		return
	}
	s.logger.Debug("Scheduled refresh completed",
		zap.Duration("duration", time.Since(startTime)))
}

// Stop cancels future ticks and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	s.stopRun(nil)
}

// stopRun stops the current run, or only the run owning stop when it is set.
func (s *Scheduler) stopRun(stop chan struct{}) {
	s.mu.Lock()
	if !s.running || (stop != nil && stop != s.stop) {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	c := s.cron
	s.mu.Unlock()

	s.logger.Info("Stopping scheduler")
	<-c.Stop().Done()
}

// ForceRun triggers a refresh outside the schedule.
func (s *Scheduler) ForceRun() {
	s.logger.Info("Manually triggering refresh")
	go s.runRefresh()
}

func (s *Scheduler) GetStatus() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := map[string]interface{}{
		"running":  s.running,
		"interval": s.interval.String(),
		"last_run": s.lastRun,
	}
	if s.running {
		status["next_run"] = s.cron.Entry(s.entryID).Next
	}
	return status
}

// cronLogger routes cron's own messages through zap.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}
