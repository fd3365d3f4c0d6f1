package digest

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/financialking/budget-service/internal/config"
	"github.com/financialking/budget-service/internal/service"
	"github.com/financialking/budget-service/internal/utils/email"
)

// Job emails each configured recipient a digest of their current
// budget report on a cron schedule
type Job struct {
	svc    *service.Service
	sender *email.Sender
	cfg    *config.Config
	log    *logrus.Logger
	cron   *cron.Cron
}

// NewJob creates a new digest job
func NewJob(svc *service.Service, sender *email.Sender, cfg *config.Config, log *logrus.Logger) *Job {
	return &Job{
		svc:    svc,
		sender: sender,
		cfg:    cfg,
		log:    log,
		cron:   cron.New(),
	}
}

// Start schedules the digest run
func (j *Job) Start() error {
	if _, err := j.cron.AddFunc(j.cfg.DigestCron, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	j.log.Infof("Budget digest scheduled: %s (%d recipients)", j.cfg.DigestCron, len(j.cfg.DigestRecipients))
	return nil
}

// Stop halts the scheduler
func (j *Job) Stop() {
	j.cron.Stop()
}

// Run sends one digest per configured recipient. Users without data
// are skipped; individual send failures do not stop the run.
func (j *Job) Run() {
	for userID, addr := range j.cfg.DigestRecipients {
		report, err := j.svc.BudgetReport(userID)
		if err != nil {
			j.log.Errorf("Digest skipped for user %s: %v", userID, err)
			continue
		}
		if report.Message != "" {
			j.log.Debugf("Digest skipped for user %s: no data", userID)
			continue
		}
		if err := j.sender.SendBudgetDigest(addr, userID, report); err != nil {
			j.log.Errorf("Digest failed for user %s: %v", userID, err)
		}
	}
}
