package scheduler

import (
	"github.com/chocolog/chocolog-backend/internal/app/service"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// PlaceRefreshScheduler re-resolves stale place rows against the Places
// API. Shop names and addresses drift; reviews should not point at a
// place that renamed itself a year ago.
type PlaceRefreshScheduler struct {
	cron         *cron.Cron
	placeService service.PlaceService
}

func NewPlaceRefreshScheduler(placeService service.PlaceService) *PlaceRefreshScheduler {
	return &PlaceRefreshScheduler{
		cron:         cron.New(),
		placeService: placeService,
	}
}

// Start schedules the daily refresh (04:00, low-traffic window)
func (s *PlaceRefreshScheduler) Start() error {
	_, err := s.cron.AddFunc("0 4 * * *", func() {
		logger.Info("Starting scheduled place refresh")

		if err := s.placeService.RefreshStalePlaces(); err != nil {
			logger.Error("Scheduled place refresh failed", err)
			return
		}
	})
	if err != nil {
		logger.Error("Failed to add cron job for place refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Place refresh scheduler started (daily at 04:00)")
	return nil
}

// Stop stops the scheduler
func (s *PlaceRefreshScheduler) Stop() {
	s.cron.Stop()
	logger.Info("Place refresh scheduler stopped")
}
