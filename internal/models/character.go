package models

import "time"

// Character represents a single hanzi inside a dictionary
type Character struct {
	ID           int64     `json:"id"`
	DictionaryID int64     `json:"dictionaryId"`
	Hanzi        string    `json:"hanzi"`
	Pinyin       string    `json:"pinyin"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CharacterListItem represents a character in list responses
type CharacterListItem struct {
	Hanzi  string `json:"hanzi"`
	Pinyin string `json:"pinyin"`
}

// CommonWord represents a frequency-ranked word containing a character
type CommonWord struct {
	Word      string `json:"word"`
	Frequency int    `json:"frequency"`
}

// CharacterInfo represents a character with its common-word enrichment
type CharacterInfo struct {
	Hanzi       string       `json:"hanzi"`
	Pinyin      string       `json:"pinyin"`
	CommonWords []CommonWord `json:"commonWords"`
}

// ImportCharactersRequest represents a request to import characters into a dictionary
type ImportCharactersRequest struct {
	Items []string `json:"items"`
}

// ImportCharactersResult represents the outcome of a character import
type ImportCharactersResult struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
