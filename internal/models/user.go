package models

// User is the legacy account entity. It predates the student intake flow and
// is kept for compatibility; Password holds a bcrypt hash, never plaintext.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}
