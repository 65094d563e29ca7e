package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cmlabs-hris/timesheet-backend-go/internal/domain/timeoff"
	"github.com/cmlabs-hris/timesheet-backend-go/internal/pkg/calendar"
	"github.com/google/uuid"
)

type timeOffRepository struct {
	mu   sync.RWMutex
	rows map[string]timeoff.TimeOffRequest
	now  func() time.Time
}

func NewTimeOffRepository() timeoff.TimeOffRepository {
	return &timeOffRepository{rows: make(map[string]timeoff.TimeOffRequest), now: time.Now}
}

// ListApprovedOverlapping implements timeoff.TimeOffRegistry.
func (r *timeOffRepository) ListApprovedOverlapping(ctx context.Context, year int, month time.Month) ([]timeoff.TimeOffRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	first, last := calendar.MonthBounds(year, month)

	requests := make([]timeoff.TimeOffRequest, 0)
	for _, req := range r.rows {
		if req.Status == timeoff.StatusApproved && calendar.Overlaps(req.StartDate, req.EndDate, first, last) {
			requests = append(requests, req)
		}
	}
	sort.Slice(requests, func(i, j int) bool {
		if !requests[i].StartDate.Equal(requests[j].StartDate) {
			return requests[i].StartDate.Before(requests[j].StartDate)
		}
		return requests[i].ID < requests[j].ID
	})

	return requests, nil
}

// Create implements timeoff.TimeOffRepository.
func (r *timeOffRepository) Create(ctx context.Context, req timeoff.TimeOffRequest) (timeoff.TimeOffRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Status == "" {
		req.Status = timeoff.StatusPending
	}
	req.StartDate = calendar.Normalize(req.StartDate)
	req.EndDate = calendar.Normalize(req.EndDate)
	req.CreatedAt = now
	req.UpdatedAt = now
	r.rows[req.ID] = req

	return req, nil
}

// GetByID implements timeoff.TimeOffRepository.
func (r *timeOffRepository) GetByID(ctx context.Context, id string) (timeoff.TimeOffRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.rows[id]
	if !ok {
		return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffNotFound
	}
	return req, nil
}

// UpdateStatus implements timeoff.TimeOffRepository.
func (r *timeOffRepository) UpdateStatus(ctx context.Context, id string, status timeoff.Status) (timeoff.TimeOffRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.rows[id]
	if !ok {
		return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffNotFound
	}
	if req.Status != timeoff.StatusPending {
		return timeoff.TimeOffRequest{}, timeoff.ErrTimeOffAlreadyProcessed
	}

	req.Status = status
	req.UpdatedAt = r.now()
	r.rows[id] = req

	return req, nil
}
