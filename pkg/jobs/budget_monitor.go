package jobs

import (
	"context"
	"log"

	"github.com/cliptokk/api/ent"
	"github.com/cliptokk/api/ent/mission"
	"github.com/cliptokk/api/pkg/analytics"
	"github.com/cliptokk/api/pkg/cache"
	"github.com/cliptokk/api/pkg/slack"
)

// BudgetMonitor detects active missions whose spend reached their budget and
// marks them completed, and keeps hot leaderboard periods warm in the cache.
type BudgetMonitor struct {
	db        *ent.Client
	cache     *cache.Client
	analytics *analytics.Service
	slack     *slack.Service
	logger    *log.Logger
}

func NewBudgetMonitor(db *ent.Client, cache *cache.Client, analyticsSvc *analytics.Service, slackSvc *slack.Service, logger *log.Logger) *BudgetMonitor {
	if logger == nil {
		logger = log.Default()
	}
	if slackSvc == nil {
		slackSvc = slack.NewService(nil)
	}
	return &BudgetMonitor{db: db, cache: cache, analytics: analyticsSvc, slack: slackSvc, logger: logger}
}

// CompleteExhaustedMissions flips active missions with spent >= total_budget
// to completed. Approval already does this inline; the sweep catches missions
// that slipped through manual budget edits.
func (m *BudgetMonitor) CompleteExhaustedMissions(ctx context.Context) (int, error) {
	missions, err := m.db.Mission.Query().
		Where(mission.StatusEQ(mission.StatusActive)).
		All(ctx)
	if err != nil {
		return 0, err
	}

	completed := 0
	for _, ms := range missions {
		if ms.Spent < ms.TotalBudget {
			continue
		}
		if err := m.db.Mission.UpdateOne(ms).
			SetStatus(mission.StatusCompleted).
			Exec(ctx); err != nil {
			m.logger.Printf("❌ Failed to complete mission %d: %v", ms.ID, err)
			continue
		}
		m.logger.Printf("✅ Mission %d budget exhausted (%.2f/%.2f), marked completed", ms.ID, ms.Spent, ms.TotalBudget)
		if err := m.slack.NotifyMissionBudgetExhausted(ctx, ms.ID, ms.Title, ms.TotalBudget); err != nil {
			m.logger.Printf("⚠️ Failed to send Slack notification for mission %d: %v", ms.ID, err)
		}
		completed++
	}

	if completed > 0 {
		if err := m.cache.DeletePattern(ctx, "missions:list:*"); err != nil {
			m.logger.Printf("⚠️ Failed to invalidate mission list cache: %v", err)
		}
	}

	return completed, nil
}

// WarmLeaderboards recomputes the leaderboard for the commonly requested
// periods so first readers after cache expiry do not pay the aggregation cost.
func (m *BudgetMonitor) WarmLeaderboards(ctx context.Context) error {
	periods := []analytics.Period{
		analytics.Period7d,
		analytics.Period30d,
		analytics.PeriodMonth,
		analytics.PeriodAll,
	}

	for _, p := range periods {
		if err := m.cache.DeletePattern(ctx, "analytics:leaderboard:"+string(p)+":*"); err != nil {
			m.logger.Printf("⚠️ Failed to clear leaderboard cache for %s: %v", p, err)
		}
		if _, err := m.analytics.Leaderboard(ctx, p, 50); err != nil {
			return err
		}
	}

	return nil
}
