package services

import (
	"context"
	"errors"
	"sync"
	"tonoffer/internal/config"
	"tonoffer/internal/models"

	"github.com/robfig/cron/v3"
)

var log = config.InitLogger()

const ratePollSpec = "@every 30s"

// RateFetcher fetches the current TON rate snapshot from an external feed.
type RateFetcher interface {
	TonRates(ctx context.Context) (*models.RateSnapshot, error)
}

// RateService keeps the last good rate snapshot fresh: one immediate fetch on
// Start, then a fixed 30 second cadence until Stop. A failed fetch never
// clears a snapshot that was obtained once.
type RateService struct {
	fetcher RateFetcher

	mu       sync.RWMutex
	snapshot models.RateSnapshot
	hasData  bool
	loading  bool

	cronMu sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

func NewRateService(fetcher RateFetcher) *RateService {
	return &RateService{
		fetcher: fetcher,
	}
}

// Start activates the poller: an immediate fetch plus the periodic cadence.
// Overlapping ticks are skipped, ticks are strictly sequential.
func (s *RateService) Start() error {
	s.cronMu.Lock()
	defer s.cronMu.Unlock()

	if s.cron != nil {
		return errors.New("rate poller already running")
	}

	ctx, cancel := context.WithCancel(context.Background())

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(ratePollSpec, func() {
		_ = s.Refresh(ctx)
	}); err != nil {
		cancel()
		return err
	}

	s.cron = c
	s.cancel = cancel
	c.Start()

	go func() {
		_ = s.Refresh(ctx)
	}()

	return nil
}

// Stop cancels the periodic cadence. No tick fires after Stop returns.
func (s *RateService) Stop() {
	s.cronMu.Lock()
	defer s.cronMu.Unlock()

	if s.cron == nil {
		return
	}
	s.cancel()
	s.cron.Stop()
	s.cron = nil
	s.cancel = nil
}

// Refresh performs one fetch. Invocable on demand without touching the
// cadence. On failure the previous snapshot stays in place.
func (s *RateService) Refresh(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	snap, err := s.fetcher.TonRates(ctx)
	if err != nil {
		log.Error("Failed to fetch TON rates: ", err)
		return err
	}

	s.mu.Lock()
	s.snapshot = *snap
	s.hasData = true
	s.mu.Unlock()

	return nil
}

// Snapshot returns the last good snapshot and whether one exists yet.
func (s *RateService) Snapshot() (models.RateSnapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, s.hasData
}

// Loading reports whether a fetch is currently outstanding.
func (s *RateService) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *RateService) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}
