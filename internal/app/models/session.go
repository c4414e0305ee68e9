package models

// Session is the actor identity stored in Redis, keyed by the session ID
// carried inside the bearer JWT. EmployeeID is empty for back-office accounts
// that are not tied to a working employee.
type Session struct {
	SessionID  string `json:"session_id"`
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id,omitempty"`
	Role       string `json:"role"`
	BranchID   string `json:"branch_id,omitempty"`
}
