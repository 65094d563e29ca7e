package holiday

import "time"

// Holiday is a declared public holiday. Rows are deactivated rather than
// deleted so historical timesheets can be rebuilt.
type Holiday struct {
	ID        string
	Date      time.Time // civil date, midnight UTC
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
