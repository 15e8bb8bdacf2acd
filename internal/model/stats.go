package model

// DailyStats is the per-calendar-day aggregate derived from the day's
// sent/received batch pair. Date is the unique key.
//
// Invariants: Pending == TotalSent - TotalReceived, and
// Confirmed + NotConfirmed + Questions + Other == TotalReceived.
type DailyStats struct {
	Date          string `json:"date" db:"date"`
	TotalSent     int    `json:"total_sent" db:"total_sent"`
	TotalReceived int    `json:"total_received" db:"total_received"`
	Confirmed     int    `json:"confirmed" db:"confirmed"`
	NotConfirmed  int    `json:"not_confirmed" db:"not_confirmed"`
	Questions     int    `json:"questions" db:"questions"`
	Other         int    `json:"other" db:"other"`
	Pending       int    `json:"pending" db:"pending"`
}

// DashboardMetrics is the headline view for the dashboard, computed from
// today's DailyStats (or the most recent day available).
type DashboardMetrics struct {
	Date          string `json:"date"`
	TotalSent     int    `json:"total_sent"`
	TotalReceived int    `json:"total_received"`
	Confirmed     int    `json:"confirmed"`
	NotConfirmed  int    `json:"not_confirmed"`
	Questions     int    `json:"questions"`
	Other         int    `json:"other"`
	Pending       int    `json:"pending"`
	ResponseRate  int    `json:"response_rate"`
}

// ChartPoint is one day of the sent/received trend series. Days with no
// stats are reported as zeros so the series has no gaps.
type ChartPoint struct {
	Date     string `json:"date"`
	Sent     int    `json:"sent"`
	Received int    `json:"received"`
}

// CategoryPoint is one slice of the response-category breakdown.
type CategoryPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}
