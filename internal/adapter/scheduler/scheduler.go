package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/lcorreia/bankledger/internal/usecase/ledger"
)

// Scheduler runs the ledger's monthly update on a cron schedule, so fees
// and interest are applied without an operator calling the API.
type Scheduler struct {
	cron     *cron.Cron
	service  *ledger.LedgerService
	schedule string
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance. The schedule is a
// standard five-field cron spec; "0 0 1 * *" runs on the first of each
// month at midnight.
func NewScheduler(service *ledger.LedgerService, schedule string, logger *zap.Logger) *Scheduler {
	cronLogger := cron.PrintfLogger(zap.NewStdLog(logger))
	c := cron.New(cron.WithChain(cron.Recover(cronLogger)))

	return &Scheduler{
		cron:     c,
		service:  service,
		schedule: schedule,
		logger:   logger,
	}
}

// Start registers the monthly update job and starts the cron scheduler.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.schedule, s.runMonthlyUpdates); err != nil {
		s.logger.Error("failed to schedule monthly update job",
			zap.String("schedule", s.schedule), zap.Error(err))
		return err
	}
	s.logger.Info("scheduled monthly update job", zap.String("schedule", s.schedule))
	s.cron.Start()
	return nil
}

// Stop gracefully stops the cron scheduler. The returned context is done
// once any running job has finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runMonthlyUpdates() {
	s.service.ProcessMonthlyUpdates()
	s.logger.Info("monthly updates applied", zap.Int("accounts", s.service.Count()))
}
