package users

import (
	"time"
)

// User is an account tracked in the Fritter database. The friend list is
// stored as usernames and resolved to ids per query; how friendships are
// formed or removed is outside this service.
type User struct {
	ID        int64     `json:"id" db:"id"`
	Username  string    `json:"username" db:"username"`
	Friends   []string  `json:"friends" db:"friends"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
