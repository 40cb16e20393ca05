package domain

import "time"

// User is a registered bot user, correlated 1:1 with a Telegram identity.
// Users are never hard-deleted; Active is flipped off instead.
type User struct {
	ID         string
	TelegramID int64
	Username   string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
