package metrics

import "portfolio-site/internal/domain"

// Static chart data for the dashboard pages.

var TimeRanges = []string{"24h", "7d", "30d", "90d"}

const DefaultTimeRange = "7d"

func ValidTimeRange(r string) bool {
	for _, v := range TimeRanges {
		if v == r {
			return true
		}
	}
	return false
}

func Traffic() []domain.TrafficPoint {
	return []domain.TrafficPoint{
		{Name: "Mon", Visits: 4000, UniqueVisitors: 2400, ConversionRate: 2.4},
		{Name: "Tue", Visits: 3000, UniqueVisitors: 1398, ConversionRate: 2.2},
		{Name: "Wed", Visits: 2000, UniqueVisitors: 9800, ConversionRate: 2.9},
		{Name: "Thu", Visits: 2780, UniqueVisitors: 3908, ConversionRate: 3.1},
		{Name: "Fri", Visits: 1890, UniqueVisitors: 4800, ConversionRate: 2.8},
		{Name: "Sat", Visits: 2390, UniqueVisitors: 3800, ConversionRate: 3.2},
		{Name: "Sun", Visits: 3490, UniqueVisitors: 4300, ConversionRate: 3.5},
	}
}

func Devices() []domain.DeviceShare {
	return []domain.DeviceShare{
		{Name: "Desktop", Value: 45, Color: "#3B82F6"},
		{Name: "Mobile", Value: 40, Color: "#10B981"},
		{Name: "Tablet", Value: 15, Color: "#F59E0B"},
	}
}

func Pages() []domain.PageStat {
	return []domain.PageStat{
		{Page: "/Home", Views: 12500, BounceRate: 25, Trend: 5.2},
		{Page: "/Products", Views: 8700, BounceRate: 32, Trend: 12.8},
		{Page: "/About", Views: 6200, BounceRate: 18, Trend: 8.5},
		{Page: "/Blog", Views: 5400, BounceRate: 45, Trend: 15.3},
		{Page: "/Contact", Views: 3100, BounceRate: 12, Trend: 9.7},
	}
}

func Funnel() []domain.FunnelStage {
	return []domain.FunnelStage{
		{Stage: "Visit", Users: 10000, Conversion: 100},
		{Stage: "Register", Users: 2500, Conversion: 25},
		{Stage: "Activate", Users: 1500, Conversion: 15},
		{Stage: "Retain", Users: 900, Conversion: 9},
		{Stage: "Purchase", Users: 450, Conversion: 4.5},
	}
}

func Behavior() []domain.BehaviorRow {
	return []domain.BehaviorRow{
		{Path: "/home", Views: 15420, AvgTime: 45, BounceRate: 25},
		{Path: "/products", Views: 12300, AvgTime: 120, BounceRate: 35},
		{Path: "/about", Views: 8900, AvgTime: 65, BounceRate: 20},
		{Path: "/blog", Views: 6700, AvgTime: 180, BounceRate: 42},
		{Path: "/contact", Views: 3400, AvgTime: 95, BounceRate: 15},
	}
}

func Conversions() []domain.ConversionEvent {
	return []domain.ConversionEvent{
		{Event: "Sign Up", Conversions: 234, Rate: 3.2, Revenue: 4680},
		{Event: "Purchase", Conversions: 89, Rate: 1.2, Revenue: 17800},
		{Event: "Download", Conversions: 456, Rate: 6.2, Revenue: 0},
		{Event: "Contact Form", Conversions: 123, Rate: 1.7, Revenue: 3690},
		{Event: "Newsletter", Conversions: 789, Rate: 10.8, Revenue: 0},
	}
}

func RecentActivity() []domain.Activity {
	return []domain.Activity{
		{ID: 1, Type: "user", Action: "New user signed up", Time: "2 minutes ago", Status: "success"},
		{ID: 2, Type: "post", Action: "New post published", Time: "5 minutes ago", Status: "success"},
		{ID: 3, Type: "contact", Action: "Contact form received", Time: "10 minutes ago", Status: "info"},
		{ID: 4, Type: "system", Action: "System backup finished", Time: "1 hour ago", Status: "success"},
		{ID: 5, Type: "alert", Action: "High CPU usage", Time: "2 hours ago", Status: "warning"},
	}
}
