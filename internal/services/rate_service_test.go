package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	"tonoffer/internal/models"

	"github.com/stretchr/testify/require"
)

type fakeRateFetcher struct {
	mu   sync.Mutex
	snap *models.RateSnapshot
	err  error
}

func (f *fakeRateFetcher) TonRates(ctx context.Context) (*models.RateSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	snap := *f.snap
	return &snap, nil
}

func (f *fakeRateFetcher) set(snap *models.RateSnapshot, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snap = snap
	f.err = err
}

func TestRateService_NoDataBeforeFirstFetch(t *testing.T) {
	rs := NewRateService(&fakeRateFetcher{err: errors.New("not yet")})
	_, ok := rs.Snapshot()
	require.False(t, ok)
}

func TestRateService_FailureKeepsLastGoodSnapshot(t *testing.T) {
	fetcher := &fakeRateFetcher{}
	fetcher.set(&models.RateSnapshot{USDPrice: 3.25, Diff24h: "+1.20", FetchedAt: time.Now()}, nil)
	rs := NewRateService(fetcher)

	require.NoError(t, rs.Refresh(context.Background()))
	snap, ok := rs.Snapshot()
	require.True(t, ok)
	require.Equal(t, 3.25, snap.USDPrice)

	fetcher.set(nil, errors.New("network down"))
	require.Error(t, rs.Refresh(context.Background()))

	snap, ok = rs.Snapshot()
	require.True(t, ok)
	require.Equal(t, 3.25, snap.USDPrice)
	require.Equal(t, "+1.20", snap.Diff24h)
}

func TestRateService_SuccessReplacesSnapshotWholesale(t *testing.T) {
	fetcher := &fakeRateFetcher{}
	fetcher.set(&models.RateSnapshot{USDPrice: 3.25, Diff24h: "+1.20"}, nil)
	rs := NewRateService(fetcher)
	require.NoError(t, rs.Refresh(context.Background()))

	fetcher.set(&models.RateSnapshot{USDPrice: 3.5, Diff24h: "-0.10"}, nil)
	require.NoError(t, rs.Refresh(context.Background()))

	snap, _ := rs.Snapshot()
	require.Equal(t, 3.5, snap.USDPrice)
	require.Equal(t, "-0.10", snap.Diff24h)
}

func TestRateService_LoadingClearedAfterRefresh(t *testing.T) {
	fetcher := &fakeRateFetcher{err: errors.New("down")}
	rs := NewRateService(fetcher)

	_ = rs.Refresh(context.Background())
	require.False(t, rs.Loading())
}

func TestRateService_StartStop(t *testing.T) {
	fetcher := &fakeRateFetcher{}
	fetcher.set(&models.RateSnapshot{USDPrice: 3.25}, nil)
	rs := NewRateService(fetcher)

	require.NoError(t, rs.Start())
	require.Error(t, rs.Start()) // already running

	rs.Stop()
	rs.Stop() // idempotent

	require.NoError(t, rs.Start())
	rs.Stop()
}
