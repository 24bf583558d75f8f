package domain

import "math"

// Summary is the derived report over users and tasks, computed fresh on
// every request.
type Summary struct {
	TotalUsers     int64 `json:"totalUsers"`
	TotalTasks     int64 `json:"totalTasks"`
	CompletedTasks int64 `json:"completedTasks"`
	PendingTasks   int64 `json:"pendingTasks"`
	CompletionRate int   `json:"completionRate"`
}

// NewSummary derives the pending count and completion rate from the raw
// counts. The rate is a rounded integer percentage, 0 when there are no
// tasks at all.
func NewSummary(users, tasks, completed int64) Summary {
	s := Summary{
		TotalUsers:     users,
		TotalTasks:     tasks,
		CompletedTasks: completed,
		PendingTasks:   tasks - completed,
	}
	if tasks > 0 {
		s.CompletionRate = int(math.Round(float64(completed) / float64(tasks) * 100))
	}
	return s
}
