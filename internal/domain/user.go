package domain

import "time"

// User binds a chat to its reference timestamp.
type User struct {
	ChatID  int64
	BirthAt time.Time // fixed notification zone
}
