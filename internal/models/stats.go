package models

// StatsSummary aggregates a user's progress in one dictionary
type StatsSummary struct {
	Total          int   `json:"total"`
	Known          int   `json:"known"`   // repetitions > 0
	Unknown        int   `json:"unknown"` // total - known
	DueToday       int   `json:"dueToday"`
	StudyTimeTotal int64 `json:"studyTimeTotal"` // whole seconds across ended sessions
}
