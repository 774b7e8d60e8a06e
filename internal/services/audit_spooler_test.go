package services

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/infrastructure/buffer"
)

type flakyAuditRepo struct {
	failing bool
	entries []domain.AuditEntry
}

func (r *flakyAuditRepo) Record(_ context.Context, entry domain.AuditEntry) error {
	if r.failing {
		return errors.New("connection refused")
	}
	r.entries = append(r.entries, entry)
	return nil
}

type staticMonitor struct {
	online bool
}

func (m *staticMonitor) IsOnline() bool { return m.online }

func newSpoolerFixture(t *testing.T) (*AuditSpooler, *flakyAuditRepo, *staticMonitor) {
	t.Helper()

	store, err := buffer.Open(filepath.Join(t.TempDir(), "audit.db"), "audit")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	repo := &flakyAuditRepo{}
	mon := &staticMonitor{online: true}
	sp := NewAuditSpooler(store, mon, repo, nil, SpoolerConfig{
		Interval:   time.Minute,
		BatchSize:  10,
		MaxRetries: 2,
	})
	return sp, repo, mon
}

func loginEntry(userID int64) domain.AuditEntry {
	return domain.AuditEntry{
		UserID:     userID,
		Action:     domain.AuditLogin,
		OccurredAt: time.Now(),
	}
}

func TestRecordWritesImmediatelyWhenOnline(t *testing.T) {
	sp, repo, _ := newSpoolerFixture(t)

	require.NoError(t, sp.Record(context.Background(), loginEntry(7)))

	assert.Len(t, repo.entries, 1)
	assert.Zero(t, sp.Size())
}

func TestRecordSpoolsWhenInsertFails(t *testing.T) {
	sp, repo, _ := newSpoolerFixture(t)
	repo.failing = true

	require.NoError(t, sp.Record(context.Background(), loginEntry(7)))

	assert.Empty(t, repo.entries)
	assert.Equal(t, 1, sp.Size())
}

func TestRecordSpoolsWhenOffline(t *testing.T) {
	sp, repo, mon := newSpoolerFixture(t)
	mon.online = false

	require.NoError(t, sp.Record(context.Background(), loginEntry(7)))

	assert.Empty(t, repo.entries, "offline must not even attempt the insert")
	assert.Equal(t, 1, sp.Size())
}

func TestDrainReplaysSpooledEntries(t *testing.T) {
	sp, repo, _ := newSpoolerFixture(t)
	repo.failing = true

	require.NoError(t, sp.Record(context.Background(), loginEntry(7)))
	require.NoError(t, sp.Record(context.Background(), loginEntry(8)))
	require.Equal(t, 2, sp.Size())

	repo.failing = false
	require.NoError(t, sp.Drain(context.Background()))

	assert.Zero(t, sp.Size())
	require.Len(t, repo.entries, 2)
	assert.Equal(t, int64(7), repo.entries[0].UserID)
	assert.Equal(t, int64(8), repo.entries[1].UserID)
}

func TestDrainSkipsWhileOffline(t *testing.T) {
	sp, repo, mon := newSpoolerFixture(t)
	repo.failing = true
	require.NoError(t, sp.Record(context.Background(), loginEntry(7)))

	mon.online = false
	require.NoError(t, sp.Drain(context.Background()))

	assert.Equal(t, 1, sp.Size(), "drain must wait for the connection to return")
}

func TestDrainDropsAfterMaxRetries(t *testing.T) {
	sp, repo, _ := newSpoolerFixture(t)
	repo.failing = true
	require.NoError(t, sp.Record(context.Background(), loginEntry(7)))

	// MaxRetries is 2: two failing drains exhaust the item.
	require.NoError(t, sp.Drain(context.Background()))
	require.NoError(t, sp.Drain(context.Background()))

	assert.Zero(t, sp.Size())
	assert.Empty(t, repo.entries)
}
