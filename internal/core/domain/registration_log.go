package domain

import "time"

// RegistrationEntry is a single append-only audit record describing a
// completed registration. IP is best-effort and may be empty.
type RegistrationEntry struct {
	UserID    string
	UserName  string
	Email     string
	Timestamp time.Time
	IP        string
}
