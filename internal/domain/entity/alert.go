package entity

import "time"

// Alert is a notification record. ForAdmin marks alerts intended for the
// admin dashboard; every admin endpoint is scoped to ForAdmin=true.
type Alert struct {
	ID        string
	Type      string
	Message   string
	Read      bool
	ForAdmin  bool
	CreatedAt time.Time
}
