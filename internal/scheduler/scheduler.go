package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/agron-app/agron/internal/config"
	"github.com/agron-app/agron/internal/service/session"
	"github.com/agron-app/agron/internal/service/weather"
)

// Scheduler manages the background jobs: weather snapshot refresh and idle
// session sweeping.
type Scheduler struct {
	cron       *cron.Cron
	weatherSvc *weather.Service
	sessions   *session.Manager
	cfg        config.Config
	logger     *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.Config, weatherSvc *weather.Service, sessions *session.Manager, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	// robfig/cron/v3 default parser is standard cron (5 fields: min, hour, dom, month, dow).
	c := cron.New()

	return &Scheduler{
		cron:       c,
		weatherSvc: weatherSvc,
		sessions:   sessions,
		cfg:        cfg,
		logger:     logger,
	}
}

// Start registers the jobs and starts the cron loop. When the weather
// provider is enabled an immediate refresh runs so the first request does
// not wait for the schedule.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if s.cfg.Weather.Enabled {
		if _, err := s.cron.AddFunc(s.cfg.Weather.RefreshCron, s.refreshWeather); err != nil {
			s.logger.Error("failed to schedule weather refresh", zap.Error(err))
		}
		go s.refreshWeather()
	}

	if _, err := s.cron.AddFunc(s.cfg.Sessions.SweepCron, s.sweepSessions); err != nil {
		s.logger.Error("failed to schedule session sweep", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) refreshWeather() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.weatherSvc.Refresh(ctx); err != nil {
		s.logger.Error("weather refresh failed", zap.Error(err))
	}
}

func (s *Scheduler) sweepSessions() {
	s.sessions.Sweep(time.Now())
}
