package metrics

import (
	"context"
	"math"
	"math/rand"
	"time"

	"portfolio-site/internal/domain"
)

// Refresh intervals per page.
const (
	DashboardInterval = 3 * time.Second
	AnalyticsInterval = 4 * time.Second
	AdminInterval     = 5 * time.Second
)

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func StepRealTime(prev domain.RealTimeStats, rnd *rand.Rand) domain.RealTimeStats {
	return domain.RealTimeStats{
		ActiveUsers:    max(0, prev.ActiveUsers+rnd.Intn(21)-10),
		PageViews:      prev.PageViews + rnd.Intn(15),
		ConversionRate: clamp(prev.ConversionRate+(rnd.Float64()-0.5)*2, 0, 100),
		Revenue:        prev.Revenue + rnd.Intn(500),
	}
}

func StepAnalytics(prev domain.AnalyticsStats, rnd *rand.Rand) domain.AnalyticsStats {
	session := prev.SessionDuration + int(math.Floor((rnd.Float64()-0.5)*20))
	return domain.AnalyticsStats{
		AvgLoadTime:     clamp(prev.AvgLoadTime+(rnd.Float64()-0.5)*0.5, 0.5, 5),
		BounceRate:      clamp(prev.BounceRate+(rnd.Float64()-0.5)*5, 20, 80),
		SessionDuration: max(30, min(300, session)),
		GoalCompletion:  clamp(prev.GoalCompletion+(rnd.Float64()-0.5)*8, 10, 100),
	}
}

func StepAdmin(prev domain.AdminStats, rnd *rand.Rand) domain.AdminStats {
	health := domain.HealthGood
	if rnd.Float64() <= 0.1 {
		health = domain.HealthWarning
	}
	return domain.AdminStats{
		TotalUsers:    prev.TotalUsers + rnd.Intn(3),
		TotalPosts:    prev.TotalPosts + rnd.Intn(2),
		TotalContacts: prev.TotalContacts + rnd.Intn(5),
		SystemHealth:  health,
	}
}

// Boards bundles the three live boards so they can be started and torn down
// together.
type Boards struct {
	RealTime  *Board[domain.RealTimeStats]
	Analytics *Board[domain.AnalyticsStats]
	Admin     *Board[domain.AdminStats]
}

func NewBoards(seed int64) *Boards {
	return &Boards{
		RealTime:  NewBoard(domain.RealTimeStats{}, DashboardInterval, StepRealTime, seed),
		Analytics: NewBoard(domain.AnalyticsStats{}, AnalyticsInterval, StepAnalytics, seed+1),
		Admin:     NewBoard(domain.AdminStats{SystemHealth: domain.HealthGood}, AdminInterval, StepAdmin, seed+2),
	}
}

func (b *Boards) Start(ctx context.Context) {
	b.RealTime.Start(ctx)
	b.Analytics.Start(ctx)
	b.Admin.Start(ctx)
}

func (b *Boards) Stop() {
	b.RealTime.Stop()
	b.Analytics.Stop()
	b.Admin.Stop()
}
