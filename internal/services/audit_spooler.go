package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vitorlacerda05/Formula1-dashboard/domain"
	"github.com/vitorlacerda05/Formula1-dashboard/internal/infrastructure/buffer"
	"github.com/vitorlacerda05/Formula1-dashboard/repository"
	"github.com/vitorlacerda05/Formula1-dashboard/usecase"
)

// ConnectionHealth abstracts the connection monitor functionality.
type ConnectionHealth interface {
	IsOnline() bool
}

// SpoolerConfig controls how frequently the audit spool is drained.
type SpoolerConfig struct {
	Interval   time.Duration
	BatchSize  int
	MaxRetries int
}

// AuditSpooler gives audit logging its at-least-once semantics: events are
// written straight to users_log when Postgres is reachable and spooled to
// disk otherwise, then drained on a schedule. Auth responses never wait on a
// failed audit insert.
type AuditSpooler struct {
	store   *buffer.Store
	monitor ConnectionHealth
	audits  repository.AuditRepository
	logger  *zap.Logger
	cron    *cron.Cron
	cfg     SpoolerConfig
}

func NewAuditSpooler(
	store *buffer.Store,
	monitor ConnectionHealth,
	audits repository.AuditRepository,
	logger *zap.Logger,
	cfg SpoolerConfig,
) *AuditSpooler {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sp := &AuditSpooler{
		store:   store,
		monitor: monitor,
		audits:  audits,
		logger:  logger,
		cfg:     cfg,
		cron:    cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = sp.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if err := sp.Drain(ctx); err != nil {
			sp.logger.Error("audit spool drain failed", zap.Error(err))
		}
	})

	return sp
}

// Start launches the drain scheduler.
func (sp *AuditSpooler) Start() {
	if sp == nil || sp.cron == nil {
		return
	}
	sp.cron.Start()
	sp.logger.Info("audit spooler started")
}

// Stop gracefully stops the scheduler.
func (sp *AuditSpooler) Stop(ctx context.Context) {
	if sp == nil || sp.cron == nil {
		return
	}
	stopCtx := sp.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	sp.logger.Info("audit spooler stopped")
}

// Record attempts an immediate users_log insert and falls back to the spool.
// It only errors when both the insert and the spool write fail.
func (sp *AuditSpooler) Record(ctx context.Context, entry domain.AuditEntry) error {
	if sp == nil || sp.audits == nil {
		return fmt.Errorf("audit spooler not configured")
	}

	if sp.monitor == nil || sp.monitor.IsOnline() {
		if err := sp.audits.Record(ctx, entry); err == nil {
			return nil
		} else {
			sp.logger.Warn("immediate audit insert failed, spooling", zap.Error(err))
		}
	}

	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return sp.store.Enqueue(buffer.Item{
		UserID: entry.UserID,
		Action: string(entry.Action),
		Data:   payload,
	})
}

// Drain replays spooled entries synchronously.
func (sp *AuditSpooler) Drain(ctx context.Context) error {
	if sp == nil || sp.store == nil {
		return nil
	}
	if sp.monitor != nil && !sp.monitor.IsOnline() {
		sp.logger.Debug("skipping audit drain (offline)")
		return nil
	}

	items, err := sp.store.GetBatch(sp.cfg.BatchSize)
	if err != nil {
		return err
	}

	for _, item := range items {
		if err := sp.replayItem(ctx, item); err != nil {
			sp.logger.Error("failed to replay audit item",
				zap.String("item_id", item.ID),
				zap.String("action", item.Action),
				zap.Error(err))

			item.Retries++
			if item.Retries >= sp.cfg.MaxRetries {
				sp.logger.Warn("dropping audit item (max retries reached)", zap.String("item_id", item.ID))
				_ = sp.store.Remove(item)
				continue
			}

			if err := sp.store.Remove(item); err != nil {
				sp.logger.Warn("failed to remove audit item", zap.Error(err))
			}
			if err := sp.store.Requeue(item); err != nil {
				sp.logger.Error("failed to requeue audit item", zap.Error(err))
			}
			continue
		}

		if err := sp.store.Remove(item); err != nil {
			sp.logger.Warn("failed to purge replayed audit item", zap.Error(err))
		}
	}
	return nil
}

// Size returns the number of spooled entries.
func (sp *AuditSpooler) Size() int {
	if sp == nil || sp.store == nil {
		return 0
	}
	size, err := sp.store.Size()
	if err != nil {
		return 0
	}
	return size
}

func (sp *AuditSpooler) replayItem(ctx context.Context, item buffer.Item) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var entry domain.AuditEntry
	if err := json.Unmarshal(item.Data, &entry); err != nil {
		return err
	}
	return sp.audits.Record(ctx, entry)
}

var _ usecase.AuditTrail = (*AuditSpooler)(nil)
