package domain

// Status is the progress state of a task.
type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// ParseStatus maps a raw string onto a Status. Unknown values report ok=false;
// callers treat those as "no status supplied" rather than an error.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusTodo, StatusInProgress, StatusDone:
		return Status(s), true
	}
	return "", false
}

// Project is a permanent grouping container for tasks. Projects are only ever
// created, never updated or deleted.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Task is a unit of work inside a project. Any status can move to any other
// status; there is no enforced workflow and no terminal state.
//
// AssigneeID and DueDate are nullable and stored verbatim: neither is checked
// against the users table, and the due date is an opaque YYYY-MM-DD string.
// Seq is the store-assigned insertion counter used to break ordering ties.
type Task struct {
	ID         string  `json:"id"`
	ProjectID  string  `json:"project_id"`
	Title      string  `json:"title"`
	Status     Status  `json:"status"`
	AssigneeID *string `json:"assignee_id"`
	DueDate    *string `json:"due_date"`
	Seq        int64   `json:"-"`
}
