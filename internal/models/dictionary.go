package models

import "time"

// Visibility controls who may read a dictionary besides its owner
type Visibility string

const (
	VisibilityPrivate Visibility = "private"
	VisibilityPublic  Visibility = "public"
)

// Dictionary represents a user-owned collection of characters
type Dictionary struct {
	ID         int64      `json:"id"`
	OwnerID    string     `json:"ownerId"`
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// CanRead reports whether the user may read this dictionary
func (d *Dictionary) CanRead(userID string) bool {
	return d.OwnerID == userID || d.Visibility == VisibilityPublic
}

// CanWrite reports whether the user may modify this dictionary
func (d *Dictionary) CanWrite(userID string) bool {
	return d.OwnerID == userID
}

// DictionaryItem represents a dictionary in list responses
type DictionaryItem struct {
	ID         int64      `json:"id"`
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility"`
	OwnerID    string     `json:"ownerId"`
	IsOwner    bool       `json:"isOwner"`
}

// CreateDictionaryRequest represents a request to create a dictionary
type CreateDictionaryRequest struct {
	Name       string     `json:"name"`
	Visibility Visibility `json:"visibility,omitempty"`
}

// UpdateDictionaryRequest represents a request to update a dictionary (partial update)
type UpdateDictionaryRequest struct {
	Name       string     `json:"name,omitempty"`
	Visibility Visibility `json:"visibility,omitempty"`
}
