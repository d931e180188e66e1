package domain

// DashboardStats holds the headline counters and period-over-period trends.
// Trends are signed integer percentages.
type DashboardStats struct {
	TotalDocuments     int
	TotalUsers         int
	ActiveUsers        int
	TotalAnnouncements int

	DocumentsTrend     int
	UsersTrend         int
	ActiveUsersTrend   int
	AnnouncementsTrend int
}
