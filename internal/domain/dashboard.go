package domain

// Live counters for the dashboard overview.
type RealTimeStats struct {
	ActiveUsers    int     `json:"activeUsers"`
	PageViews      int     `json:"pageViews"`
	ConversionRate float64 `json:"conversionRate"`
	Revenue        int     `json:"revenue"`
}

// Live counters for the analytics page.
type AnalyticsStats struct {
	AvgLoadTime     float64 `json:"avgLoadTime"`
	BounceRate      float64 `json:"bounceRate"`
	SessionDuration int     `json:"sessionDuration"`
	GoalCompletion  float64 `json:"goalCompletion"`
}

type Health string

const (
	HealthGood    Health = "good"
	HealthWarning Health = "warning"
)

// Live counters for the admin overview.
type AdminStats struct {
	TotalUsers    int    `json:"totalUsers"`
	TotalPosts    int    `json:"totalPosts"`
	TotalContacts int    `json:"totalContacts"`
	SystemHealth  Health `json:"systemHealth"`
}

type TrafficPoint struct {
	Name           string  `json:"name"`
	Visits         int     `json:"visits"`
	UniqueVisitors int     `json:"uniqueVisitors"`
	ConversionRate float64 `json:"conversionRate"`
}

type DeviceShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type PageStat struct {
	Page       string  `json:"page"`
	Views      int     `json:"views"`
	BounceRate int     `json:"bounceRate"`
	Trend      float64 `json:"trend"`
}

type FunnelStage struct {
	Stage      string  `json:"stage"`
	Users      int     `json:"users"`
	Conversion float64 `json:"conversion"`
}

type BehaviorRow struct {
	Path       string `json:"path"`
	Views      int    `json:"views"`
	AvgTime    int    `json:"avgTime"`
	BounceRate int    `json:"bounceRate"`
}

type ConversionEvent struct {
	Event       string  `json:"event"`
	Conversions int     `json:"conversions"`
	Rate        float64 `json:"rate"`
	Revenue     int     `json:"revenue"`
}

type Activity struct {
	ID     int    `json:"id"`
	Type   string `json:"type"`
	Action string `json:"action"`
	Time   string `json:"time"`
	Status string `json:"status"`
}

type Status string

const (
	StatusGood     Status = "good"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Metric is one classified analytics reading.
type Metric struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Status      Status `json:"status"`
	Description string `json:"description"`
}
