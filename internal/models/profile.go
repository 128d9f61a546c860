package models

import (
	"regexp"
	"strings"
	"time"
)

// AccountIDPattern is the shareable account handle format: two uppercase
// letters followed by eight digits, e.g. BQ12345678.
var AccountIDPattern = regexp.MustCompile(`^[A-Z]{2}\d{8}$`)

// Profile is the minimal user record the transfer flow needs: the
// shareable account handle and a display name for the recipient.
type Profile struct {
	UserID    string    `gorm:"primaryKey" json:"user_id"`
	AccountID string    `gorm:"uniqueIndex;not null" json:"account_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeAccountID upper-cases and trims a raw account handle so that
// bq12345678 and BQ12345678 resolve to the same profile.
func NormalizeAccountID(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
