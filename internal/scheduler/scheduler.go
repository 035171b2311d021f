package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mamadbah2/feedlot/internal/config"
	"github.com/mamadbah2/feedlot/internal/service/reporting"
	"github.com/mamadbah2/feedlot/pkg/clients/whatsapp"
)

// Scheduler manages scheduled tasks.
type Scheduler struct {
	cron      *cron.Cron
	digestSvc *reporting.Service
	notifier  whatsapp.Client
	cfg       config.Config
	logger    *zap.Logger
}

// NewScheduler creates a new scheduler instance. The notifier may be nil, in
// which case digests are generated and logged but not pushed.
func NewScheduler(cfg config.Config, digestSvc *reporting.Service, notifier whatsapp.Client, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	loc, err := time.LoadLocation(cfg.Reporting.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local", zap.String("timezone", cfg.Reporting.Timezone), zap.Error(err))
		loc = time.Local
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		digestSvc: digestSvc,
		notifier:  notifier,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers the daily digest job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.Reporting.CronSchedule))

	if _, err := s.cron.AddFunc(s.cfg.Reporting.CronSchedule, s.sendDailyDigest); err != nil {
		s.logger.Error("failed to schedule daily digest", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sendDailyDigest() {
	s.logger.Info("generating daily fattening digest")
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	digest, err := s.digestSvc.GenerateDailyDigest(ctx, time.Now())
	if err != nil {
		s.logger.Error("failed to generate daily digest", zap.Error(err))
		return
	}

	if s.notifier == nil {
		s.logger.Info("notifications disabled, digest not pushed", zap.String("digest", digest))
		return
	}

	_, err = s.notifier.SendTextMessage(ctx, whatsapp.SendTextMessageRequest{
		To:   s.cfg.Notify.RecipientID,
		Body: digest,
	})
	if err != nil {
		s.logger.Error("failed to send daily digest", zap.Error(err))
	} else {
		s.logger.Info("daily digest sent successfully")
	}
}
