package dto

type AnalyticsResponse struct {
	TotalSessions  int64  `json:"total_sessions"`
	TotalMessages  int64  `json:"total_messages"`
	TotalAnalyses  int64  `json:"total_analyses"`
	RecentSessions int64  `json:"recent_sessions"`
	Platform       string `json:"platform"`
}
