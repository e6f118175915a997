package jobs

import (
	"context"
	"log"
	"time"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/pkg/analytics"
	"github.com/cliptokk/api/pkg/backup"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/slack"
	"github.com/robfig/cron/v3"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron    *cron.Cron
	monitor *BudgetMonitor
	logger  *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(db *ent.Client, cache *cache.Client, analyticsSvc *analytics.Service, slackSvc *slack.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:    cron.New(),
		monitor: NewBudgetMonitor(db, cache, analyticsSvc, slackSvc, logger),
		logger:  logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Hourly: complete missions whose budget is exhausted
	_, err := cm.cron.AddFunc("0 * * * *", func() {
		cm.logger.Println("🕐 Running mission budget sweep...")

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		completed, err := cm.monitor.CompleteExhaustedMissions(ctx)
		if err != nil {
			cm.logger.Printf("❌ Budget sweep failed: %v", err)
			return
		}

		if completed == 0 {
			cm.logger.Println("✅ Budget sweep: no exhausted missions")
			return
		}
		cm.logger.Printf("✅ Budget sweep: completed %d missions", completed)
	})

	if err != nil {
		return err
	}

	// Every 10 minutes: keep the hot leaderboard periods warm
	_, err = cm.cron.AddFunc("*/10 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		if err := cm.monitor.WarmLeaderboards(ctx); err != nil {
			cm.logger.Printf("⚠️ Leaderboard warm-up failed: %v", err)
			return
		}
	})

	if err != nil {
		return err
	}

	cm.logger.Println("✅ Cron jobs configured successfully")
	cm.logger.Println("  - Hourly: mission budget sweep")
	cm.logger.Println("  - Every 10 minutes: leaderboard cache warm-up")

	return nil
}

// ScheduleBackups registers the nightly database backup job
func (cm *CronManager) ScheduleBackups(svc *backup.Service) error {
	_, err := cm.cron.AddFunc("0 3 * * *", func() {
		cm.logger.Println("🕐 Running nightly database backup...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		result, err := svc.CreateBackup(ctx)
		if err != nil {
			cm.logger.Printf("❌ Database backup failed: %v", err)
			return
		}
		cm.logger.Printf("✅ Database backup completed: %s", result.Filename)
	})
	if err != nil {
		return err
	}

	cm.logger.Println("  - Daily at 03:00: database backup")
	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Println("🚀 Starting cron scheduler...")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.logger.Println("🛑 Stopping cron scheduler...")
	cm.cron.Stop()
}

// GetMonitor returns the budget monitor (for manual triggers)
func (cm *CronManager) GetMonitor() *BudgetMonitor {
	return cm.monitor
}
