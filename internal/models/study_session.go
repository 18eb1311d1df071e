package models

import "time"

// StudySession represents one study session bounded by start/end timestamps.
// EndedAt stays nil while the session is open.
type StudySession struct {
	ID           int64      `json:"id"`
	UserID       string     `json:"userId"`
	DictionaryID int64      `json:"dictionaryId"`
	StartedAt    time.Time  `json:"startedAt"`
	EndedAt      *time.Time `json:"endedAt"`
}

// SessionStartResult represents a freshly opened session
type SessionStartResult struct {
	SessionID int64     `json:"sessionId"`
	StartedAt time.Time `json:"startedAt"`
}

// EndSessionRequest represents a request to close a session
type EndSessionRequest struct {
	SessionID int64  `json:"sessionId"`
	EndedAt   string `json:"endedAt,omitempty"`
}

// SessionEndResult represents a closed session
type SessionEndResult struct {
	SessionID int64     `json:"sessionId"`
	EndedAt   time.Time `json:"endedAt"`
}
