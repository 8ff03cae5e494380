// Package models defines the data shapes notekeeper persists as JSON blobs.
package models

// Account is a registered user identity. The password is stored verbatim —
// a documented limitation of the single-user local store, not an oversight.
type Account struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is the pointer to the currently logged-in account. At most one
// exists per installation. It never carries credentials.
type Session struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Note is a titled, timestamped text record owned by exactly one account.
// CreatedAt is a fixed-width UTC ISO-8601 string with milliseconds, so
// lexicographic comparison matches chronological order. It is set once at
// creation and never touched by edits.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}
