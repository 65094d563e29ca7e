package employee

import "time"

// Employee is immutable apart from deactivation.
type Employee struct {
	ID         string
	Name       string
	MemberCode string
	UserID     *string
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
