// Package contract defines the JSON bodies exchanged over the HTTP action
// surface and maps app types onto them.
package contract

import "time"

// ErrorBody is returned with every non-2xx response.
type ErrorBody struct {
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type SessionBody struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"startedAt"`
}

// ProfileBody mirrors domain.UserProfile. Unset enums are omitted and lists
// are always present.
type ProfileBody struct {
	SkinType        string     `json:"skinType,omitempty"`
	Concerns        []string   `json:"concerns"`
	CurrentSeason   string     `json:"currentSeason,omitempty"`
	Climate         string     `json:"climate,omitempty"`
	Allergies       []string   `json:"allergies"`
	CurrentProducts []string   `json:"currentProducts"`
	LastUpdate      *time.Time `json:"lastUpdate,omitempty"`
}

type JournalEntryBody struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	Outcome   string    `json:"outcome"`
	Field     string    `json:"field,omitempty"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type SkinTypeBody struct {
	SkinType    string `json:"skinType"`
	Description string `json:"description"`
}
