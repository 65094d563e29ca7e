// Package auth describes the caller of an API request. Credentials are
// issued elsewhere; this service only verifies bearer tokens.
package auth

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

// Principal is the verified identity behind a request.
type Principal struct {
	Subject    string
	Role       Role
	EmployeeID string
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// CanActFor reports whether p may read or write employeeID's records.
func (p Principal) CanActFor(employeeID string) bool {
	return p.IsAdmin() || (p.EmployeeID != "" && p.EmployeeID == employeeID)
}
