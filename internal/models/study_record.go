package models

import "time"

// StudyRecord holds one user's SM-2 scheduling state for one character
// in one dictionary. At most one record exists per (user, dictionary,
// character) triple; reviews replace it via an atomic upsert.
type StudyRecord struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"userId"`
	DictionaryID   int64     `json:"dictionaryId"`
	CharacterID    int64     `json:"characterId"`
	EaseFactor     float64   `json:"easeFactor"`
	Interval       int       `json:"interval"` // days
	Repetitions    int       `json:"repetitions"`
	LastReviewedAt time.Time `json:"lastReviewedAt"`
	NextReviewAt   time.Time `json:"nextReviewAt"`
	LastRating     int       `json:"lastRating"`
}

// QueueItem represents one entry of the due queue: a character the user
// should review now. DueAt is nil for characters never reviewed.
type QueueItem struct {
	Hanzi  string     `json:"hanzi"`
	Pinyin string     `json:"pinyin"`
	DueAt  *time.Time `json:"dueAt"`
	IsNew  bool       `json:"isNew"`
}

// QueueResponse wraps the due queue
type QueueResponse struct {
	Items []QueueItem `json:"items"`
}

// ReviewRequest represents a submitted review of one character
type ReviewRequest struct {
	Hanzi      string `json:"hanzi"`
	Rating     int    `json:"rating"`
	ReviewedAt string `json:"reviewedAt,omitempty"`
}

// ReviewResult represents the new scheduling state after a review
type ReviewResult struct {
	NextReviewAt time.Time `json:"nextReviewAt"`
	Interval     int       `json:"interval"`
	EaseFactor   float64   `json:"easeFactor"`
}
