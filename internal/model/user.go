package model

// Role is an employee role as reported by the gateway.
type Role string

const (
	RoleManager Role = "MANAGER"
	RoleWaiter  Role = "WAITER"
	RoleKitchen Role = "KITCHEN"
)

// User is the authenticated employee record kept in the session cache.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    Role   `json:"role"`
	Picture string `json:"picture,omitempty"`
}

// Session pairs the gateway JWT with the current user record.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
