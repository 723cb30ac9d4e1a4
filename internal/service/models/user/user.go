package user

import (
	"errors"
	"time"
)

// ErrUserNotFound is returned when a user does not exist in the store.
var ErrUserNotFound = errors.New("user not found")

// User represents a customer account.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}
