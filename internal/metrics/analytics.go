package metrics

import (
	"fmt"

	"portfolio-site/internal/domain"
)

func LoadTimeStatus(seconds float64) domain.Status {
	switch {
	case seconds < 2:
		return domain.StatusGood
	case seconds < 3:
		return domain.StatusWarning
	}
	return domain.StatusCritical
}

func BounceRateStatus(pct float64) domain.Status {
	switch {
	case pct < 40:
		return domain.StatusGood
	case pct < 60:
		return domain.StatusWarning
	}
	return domain.StatusCritical
}

func SessionStatus(seconds int) domain.Status {
	switch {
	case seconds > 120:
		return domain.StatusGood
	case seconds > 60:
		return domain.StatusWarning
	}
	return domain.StatusCritical
}

func GoalStatus(pct float64) domain.Status {
	switch {
	case pct > 70:
		return domain.StatusGood
	case pct > 40:
		return domain.StatusWarning
	}
	return domain.StatusCritical
}

// Classify formats an analytics snapshot into display metrics.
func Classify(s domain.AnalyticsStats) []domain.Metric {
	return []domain.Metric{
		{
			Name:        "Page Load Time",
			Value:       fmt.Sprintf("%.2fs", s.AvgLoadTime),
			Status:      LoadTimeStatus(s.AvgLoadTime),
			Description: "Average time to fully load the page",
		},
		{
			Name:        "Bounce Rate",
			Value:       fmt.Sprintf("%.1f%%", s.BounceRate),
			Status:      BounceRateStatus(s.BounceRate),
			Description: "Percentage of single-page sessions",
		},
		{
			Name:        "Session Duration",
			Value:       fmt.Sprintf("%ds", s.SessionDuration),
			Status:      SessionStatus(s.SessionDuration),
			Description: "Average time users spend on site",
		},
		{
			Name:        "Goal Completion",
			Value:       fmt.Sprintf("%.1f%%", s.GoalCompletion),
			Status:      GoalStatus(s.GoalCompletion),
			Description: "Conversion rate for main goals",
		},
	}
}
