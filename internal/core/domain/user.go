package domain

// Role is the permission tier of a user, ascending WORKER < MANAGER < ADMIN.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleWorker  Role = "WORKER"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleWorker
}

// CanCreateProject reports whether the role may create projects.
func (r Role) CanCreateProject() bool {
	return r == RoleAdmin
}

// CanManageTasks reports whether the role may create and delete tasks.
func (r Role) CanManageTasks() bool {
	return r == RoleAdmin || r == RoleManager
}

// User models an authenticated actor in the system. Users are provisioned
// externally; the API never creates or mutates them.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
}

// Caller is the authenticated identity a request acts as, resolved from the
// session token once per request and passed explicitly to every operation.
type Caller struct {
	ID   string
	Role Role
}

// CanUpdateTask reports whether the caller may update t. Admins and managers
// may update any task; a worker only the task currently assigned to them.
// The check uses the assignee as it stands before any patch is applied.
func (c Caller) CanUpdateTask(t *Task) bool {
	if c.Role.CanManageTasks() {
		return true
	}
	return t.AssigneeID != nil && *t.AssigneeID == c.ID
}
