package models

// Task is a checklist item. EstimatedTime is in minutes and nil when the user
// gave no estimate.
type Task struct {
	ID            string
	Text          string
	Completed     bool
	EstimatedTime *int
}

// HasEstimate reports whether the task carries a positive estimate.
func (t Task) HasEstimate() bool {
	return t.EstimatedTime != nil && *t.EstimatedTime > 0
}

// Clone returns a copy that shares no pointers with t.
func (t Task) Clone() Task {
	if t.EstimatedTime != nil {
		est := *t.EstimatedTime
		t.EstimatedTime = &est
	}
	return t
}

// Equal compares tasks field by field, following the estimate pointer.
func (t Task) Equal(o Task) bool {
	if t.ID != o.ID || t.Text != o.Text || t.Completed != o.Completed {
		return false
	}
	if t.EstimatedTime == nil || o.EstimatedTime == nil {
		return t.EstimatedTime == nil && o.EstimatedTime == nil
	}
	return *t.EstimatedTime == *o.EstimatedTime
}
