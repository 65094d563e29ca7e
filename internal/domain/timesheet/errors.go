package timesheet

import "errors"

// ErrIncompleteReport wraps any failure of the report's underlying fetches.
// A report is either complete or not returned at all.
var ErrIncompleteReport = errors.New("timesheet data could not be loaded")
