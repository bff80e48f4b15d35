package models

type TaskStats struct {
	TotalTasks     int
	CompletedTasks int
	CompletionRate float64
}

type SessionStats struct {
	CompletedSessions int
	FocusSeconds      int64
}

// Stats is what the status line shows. It lives only in memory.
type Stats struct {
	Tasks    TaskStats
	Sessions SessionStats
}
