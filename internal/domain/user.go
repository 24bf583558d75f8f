package domain

import "time"

type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Tasks     []*Task   `json:"tasks"`
}

// UserRef is the reduced owner projection embedded in tasks. It is a
// separate read-only type so new User fields never leak through task
// responses by accident.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserPatch carries the optional fields of a partial user update.
// A nil field leaves the stored value untouched.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}
