package domain

import "time"

type Task struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Completed   bool      `json:"completed" db:"completed"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	OwnerID     int64     `json:"ownerId" db:"user_id"`
	Owner       *UserRef  `json:"owner,omitempty"`
}

// TaskPatch carries the optional fields of a partial task update.
// The owner is not part of it: a task never changes hands.
type TaskPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// TaskFilter describes an optional conjunctive filter for task listings.
// A nil field means no constraint on that column.
type TaskFilter struct {
	OwnerID   *int64
	Completed *bool
}
