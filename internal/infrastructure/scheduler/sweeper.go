package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/dinheirorapido/loanledger/internal/infrastructure/metrics"
	"github.com/dinheirorapido/loanledger/internal/usecase"
)

// Sweeper periodically re-evaluates open loan statuses so loans past their
// due date transition to defaulted without waiting for a read.
type Sweeper struct {
	loanUC  *usecase.LoanUseCase
	logger  zerolog.Logger
	metrics *metrics.Metrics
	cron    *cron.Cron
}

// NewSweeper creates a new Sweeper.
func NewSweeper(loanUC *usecase.LoanUseCase, logger zerolog.Logger, m *metrics.Metrics) *Sweeper {
	return &Sweeper{
		loanUC:  loanUC,
		logger:  logger,
		metrics: m,
		cron:    cron.New(cron.WithSeconds()),
	}
}

// Start registers the sweep job and starts the scheduler. The schedule uses
// the six-field cron format with seconds.
func (s *Sweeper) Start(schedule string) error {
	_, err := s.cron.AddFunc(schedule, s.run)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info().Str("schedule", schedule).Msg("status sweeper started")

	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("status sweeper stopped")
}

func (s *Sweeper) run() {
	ctx := context.Background()

	result, err := s.loanUC.SweepStatuses(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("status sweep failed")
		return
	}

	if s.metrics != nil {
		s.metrics.SweepRuns.Inc()
		s.metrics.SweepTransitions.Add(float64(result.Transitioned))
	}

	s.logger.Info().
		Int("examined", result.Examined).
		Int("transitioned", result.Transitioned).
		Msg("status sweep completed")
}
