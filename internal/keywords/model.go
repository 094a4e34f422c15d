package keywords

import "time"

// Keyword is a dangerous phrase watched by the scanner. Builtin entries are
// seeded at process start and are immutable; custom entries are user-managed.
type Keyword struct {
	ID        string    `json:"id"`
	Phrase    string    `json:"phrase"`
	Builtin   bool      `json:"builtin"`
	CreatedAt time.Time `json:"createdAt"`
}
