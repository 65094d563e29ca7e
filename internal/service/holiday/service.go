package holiday

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/holiday"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
	now         func() time.Time
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo, now: time.Now}
}

// ListHolidays implements holiday.HolidayService.
func (s *HolidayServiceImpl) ListHolidays(ctx context.Context, filter holiday.HolidayFilter) ([]holiday.HolidayResponse, error) {
	filter.ApplyDefaults(s.now())
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.ListActiveInYear(ctx, *filter.Year)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}
	return responses, nil
}

// CreateHoliday implements holiday.HolidayService.
func (s *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date: req.ParsedDate(),
		Name: req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	slog.Info("holiday declared", "holiday_id", created.ID, "date", req.Date)
	return holiday.ToResponse(created), nil
}

// DeleteHoliday implements holiday.HolidayService. The row is kept inactive;
// closed entries keep the categories they were classified with.
func (s *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(id) {
		errs.Add("id", "id must be a valid UUID")
	}
	if err := errs.Err(); err != nil {
		return err
	}

	if err := s.holidayRepo.Deactivate(ctx, id); err != nil {
		return err
	}

	slog.Info("holiday removed", "holiday_id", id)
	return nil
}
