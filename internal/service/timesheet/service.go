package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeentry"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/overtime"
	"golang.org/x/sync/errgroup"
)

type TimesheetServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	holidays     holiday.HolidayCalendar
	timeOff      timeoff.TimeOffRegistry
	entryRepo    timeentry.TimeEntryRepository

	location *time.Location
	now      func() time.Time
}

func NewTimesheetService(
	employeeRepo employee.EmployeeRepository,
	holidays holiday.HolidayCalendar,
	timeOff timeoff.TimeOffRegistry,
	entryRepo timeentry.TimeEntryRepository,
) *TimesheetServiceImpl {
	return &TimesheetServiceImpl{
		employeeRepo: employeeRepo,
		holidays:     holidays,
		timeOff:      timeOff,
		entryRepo:    entryRepo,
		location:     time.UTC,
		now:          time.Now,
	}
}

// WithLocation sets the calendar that decides the current month when a
// request names none.
func (s *TimesheetServiceImpl) WithLocation(loc *time.Location) *TimesheetServiceImpl {
	if loc != nil {
		s.location = loc
	}
	return s
}

var _ timesheet.TimesheetService = (*TimesheetServiceImpl)(nil)

// monthData is the raw material of one report, fetched concurrently.
type monthData struct {
	employees []employee.Employee
	holidays  []holiday.Holiday
	timeOff   []timeoff.TimeOffRequest
	entries   []timeentry.TimeEntry
}

func (s *TimesheetServiceImpl) fetch(ctx context.Context, year int, month time.Month) (monthData, error) {
	var data monthData
	first, last := calendar.MonthBounds(year, month)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.employees, err = s.employeeRepo.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.holidays, err = s.holidays.ListActiveInMonth(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		data.timeOff, err = s.timeOff.ListApprovedOverlapping(gctx, year, month)
		return err
	})
	g.Go(func() error {
		var err error
		data.entries, err = s.entryRepo.ListByDateRange(gctx, first, last)
		return err
	})

	if err := g.Wait(); err != nil {
		return monthData{}, fmt.Errorf("%w: %w", timesheet.ErrIncompleteReport, err)
	}
	return data, nil
}

// GetTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) GetTimesheet(ctx context.Context, req timesheet.TimesheetRequest) (timesheet.TimesheetReport, error) {
	req.ApplyDefaults(s.now().In(s.location))
	if err := req.Validate(); err != nil {
		return timesheet.TimesheetReport{}, err
	}

	year, month := req.Period()
	data, err := s.fetch(ctx, year, month)
	if err != nil {
		return timesheet.TimesheetReport{}, err
	}

	return s.build(year, month, data)
}

// build joins the month's data into the employee by day grid. Stored
// categories are ignored: each entry is classified again against the
// current holidays so a holiday declared later shows in old months.
func (s *TimesheetServiceImpl) build(year int, month time.Month, data monthData) (timesheet.TimesheetReport, error) {
	holidaySet := make(map[string]bool, len(data.holidays))
	holidays := make([]holiday.HolidayResponse, 0, len(data.holidays))
	for _, h := range data.holidays {
		holidaySet[calendar.Key(h.Date)] = true
		holidays = append(holidays, holiday.ToResponse(h))
	}

	grid := calendar.MonthGrid(year, month, holidaySet)
	days := make([]timesheet.DayResponse, 0, len(grid))
	for _, d := range grid {
		days = append(days, timesheet.DayResponse{
			Date:      calendar.Key(d.Date),
			DayNumber: fmt.Sprintf("%02d", d.DayNumber),
			DayName:   d.DayName(),
			IsWeekend: d.IsWeekend,
			IsHoliday: d.IsHoliday,
		})
	}

	timeOffByEmployee := make(map[string][]timeoff.TimeOffRequest)
	timeOff := make([]timeoff.TimeOffResponse, 0, len(data.timeOff))
	for _, r := range data.timeOff {
		timeOffByEmployee[r.EmployeeID] = append(timeOffByEmployee[r.EmployeeID], r)
		timeOff = append(timeOff, timeoff.ToResponse(r))
	}

	type cellKey struct {
		employeeID string
		date       string
	}
	cellEntries := make(map[cellKey]timeentry.TimeEntryResponse)
	breakdowns := make(map[string]overtime.Breakdown)
	closedCount := make(map[string]int)

	// Month-wide totals cover every closed entry of the month, including
	// those of employees deactivated since, so they match TimeEntries.
	var grand overtime.Breakdown
	grandClosed := 0

	entries := make([]timeentry.TimeEntryResponse, 0, len(data.entries))
	for _, e := range data.entries {
		e, err := reclassify(e, holidaySet)
		if err != nil {
			return timesheet.TimesheetReport{}, err
		}
		resp := timeentry.ToResponse(e)
		entries = append(entries, resp)

		// entries arrive ordered by clock-in, so the first one wins the cell
		key := cellKey{e.EmployeeID, calendar.Key(e.EntryDate)}
		if _, taken := cellEntries[key]; !taken {
			cellEntries[key] = resp
		}

		if !e.IsOpen() {
			breakdowns[e.EmployeeID] = breakdowns[e.EmployeeID].Add(e.Breakdown())
			closedCount[e.EmployeeID]++
			grand = grand.Add(e.Breakdown())
			grandClosed++
		}
	}

	employees := make([]employee.EmployeeResponse, 0, len(data.employees))
	rows := make([]timesheet.EmployeeRow, 0, len(data.employees))

	for _, emp := range data.employees {
		empResp := employee.ToResponse(emp)
		employees = append(employees, empResp)

		cells := make([]timesheet.Cell, 0, len(grid))
		for _, d := range grid {
			cell := timesheet.Cell{
				Date:      calendar.Key(d.Date),
				IsWeekend: d.IsWeekend,
				IsHoliday: d.IsHoliday,
				IsTimeOff: onTimeOff(timeOffByEmployee[emp.ID], d.Date),
			}
			if entry, ok := cellEntries[cellKey{emp.ID, cell.Date}]; ok {
				entry := entry
				cell.Entry = &entry
			}
			cells = append(cells, cell)
		}

		b := breakdowns[emp.ID]

		rows = append(rows, timesheet.EmployeeRow{
			Employee: empResp,
			Cells:    cells,
			Totals:   toTotals(b, closedCount[emp.ID]),
		})
	}

	return timesheet.TimesheetReport{
		Year:            year,
		Month:           int(month),
		MonthName:       month.String(),
		DaysInMonth:     len(grid),
		GeneratedAt:     s.now().UTC().Format(time.RFC3339),
		Employees:       employees,
		Days:            days,
		TimeEntries:     entries,
		Holidays:        holidays,
		TimeOffRequests: timeOff,
		Rows:            rows,
		Summary: timesheet.Summary{
			EmployeeCount: len(rows),
			Totals:        toTotals(grand, grandClosed),
		},
	}, nil
}

// reclassify derives the day flags from the entry date and the current
// holidays, and the categories of a closed entry from its stored total.
// Open entries carry no hours.
func reclassify(e timeentry.TimeEntry, holidaySet map[string]bool) (timeentry.TimeEntry, error) {
	day := overtime.DayContext{
		IsRestDay:       overtime.IsRestDay(e.EntryDate.Weekday()),
		IsPublicHoliday: holidaySet[calendar.Key(e.EntryDate)],
	}

	var b overtime.Breakdown
	if !e.IsOpen() && e.TotalHours.Valid {
		var err error
		b, err = overtime.Classify(e.TotalHours.Decimal, day)
		if err != nil {
			return timeentry.TimeEntry{}, fmt.Errorf("classify entry %s: %w", e.ID, err)
		}
	}

	e.ApplyBreakdown(b, day)
	return e, nil
}

func onTimeOff(requests []timeoff.TimeOffRequest, date time.Time) bool {
	for _, r := range requests {
		if r.Covers(date) {
			return true
		}
	}
	return false
}

func toTotals(b overtime.Breakdown, closed int) timesheet.HoursTotals {
	return timesheet.HoursTotals{
		TotalHours:           b.Total().InexactFloat64(),
		RegularHours:         b.RegularHours.InexactFloat64(),
		DailyOTHours:         b.DailyOTHours.InexactFloat64(),
		RestDayOTHours:       b.RestDayOTHours.InexactFloat64(),
		PublicHolidayOTHours: b.PublicHolidayOTHours.InexactFloat64(),
		ClosedEntries:        closed,
	}
}
