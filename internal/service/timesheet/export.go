package timesheet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timesheet"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/export"
)

// Cell markers for days without a closed entry.
const (
	markOpen    = "IN"
	markTimeOff = "OFF"
	markHoliday = "HOL"
)

// ExportTimesheet implements timesheet.TimesheetService.
func (s *TimesheetServiceImpl) ExportTimesheet(ctx context.Context, req timesheet.ExportRequest) (timesheet.ExportFile, error) {
	req.ApplyDefaults(s.now().In(s.location))
	if err := req.Validate(); err != nil {
		return timesheet.ExportFile{}, err
	}

	report, err := s.GetTimesheet(ctx, req.TimesheetRequest)
	if err != nil {
		return timesheet.ExportFile{}, err
	}

	sheet := toSheet(report)
	base := fmt.Sprintf("timesheet-%04d-%02d", report.Year, report.Month)

	switch req.Format {
	case timesheet.ExportFormatXLSX:
		data, err := export.XLSX(sheet)
		if err != nil {
			return timesheet.ExportFile{}, err
		}
		return timesheet.ExportFile{Filename: base + ".xlsx", ContentType: export.ContentTypeXLSX, Data: data}, nil
	default:
		data, err := export.CSV(sheet)
		if err != nil {
			return timesheet.ExportFile{}, err
		}
		return timesheet.ExportFile{Filename: base + ".csv", ContentType: export.ContentTypeCSV, Data: data}, nil
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

func toSheet(report timesheet.TimesheetReport) export.Sheet {
	header := []string{"Employee", "Member Code"}
	for _, d := range report.Days {
		header = append(header, d.DayNumber+" "+d.DayName)
	}
	header = append(header, "Total", "Regular", "Daily OT", "Rest Day OT", "Holiday OT")

	rows := make([][]string, 0, len(report.Rows)+1)
	for _, r := range report.Rows {
		row := []string{r.Employee.Name, r.Employee.MemberCode}
		for _, c := range r.Cells {
			row = append(row, cellText(c))
		}
		row = append(row, totalsText(r.Totals)...)
		rows = append(rows, row)
	}

	summary := []string{"Total", ""}
	for range report.Days {
		summary = append(summary, "")
	}
	summary = append(summary, totalsText(report.Summary.Totals)...)
	rows = append(rows, summary)

	return export.Sheet{
		Title:  fmt.Sprintf("%s %d", report.MonthName, report.Year),
		Header: header,
		Rows:   rows,
	}
}

func cellText(c timesheet.Cell) string {
	switch {
	case c.Entry != nil && c.Entry.TotalHours != nil:
		return formatHours(*c.Entry.TotalHours)
	case c.Entry != nil:
		return markOpen
	case c.IsTimeOff:
		return markTimeOff
	case c.IsHoliday:
		return markHoliday
	default:
		return ""
	}
}

func totalsText(t timesheet.HoursTotals) []string {
	return []string{
		formatHours(t.TotalHours),
		formatHours(t.RegularHours),
		formatHours(t.DailyOTHours),
		formatHours(t.RestDayOTHours),
		formatHours(t.PublicHolidayOTHours),
	}
}
