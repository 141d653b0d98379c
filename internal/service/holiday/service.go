package holiday

import (
	"context"
	"fmt"
	"time"

	"github.com/workline-hr/workline-backend-go/internal/domain/holiday"
	"github.com/workline-hr/workline-backend-go/internal/pkg/dateutil"
)

type HolidayServiceImpl struct {
	holiday.EventRepository
	loc *time.Location
}

func NewHolidayService(repo holiday.EventRepository, loc *time.Location) holiday.Service {
	if loc == nil {
		loc = time.Local
	}
	return &HolidayServiceImpl{EventRepository: repo, loc: loc}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateRequest) (holiday.Event, error) {
	if err := req.Validate(); err != nil {
		return holiday.Event{}, err
	}
	date, _ := dateutil.ParseDay(req.EventDate, s.loc)

	event, err := s.EventRepository.Create(ctx, holiday.Event{
		EventDate: date,
		Title:     req.Title,
	})
	if err != nil {
		return holiday.Event{}, fmt.Errorf("failed to create holiday event: %w", err)
	}
	return event, nil
}

// ListForRange lists events between two YYYY-MM-DD days inclusive.
// Empty bounds default to the current month.
func (s *HolidayServiceImpl) ListForRange(ctx context.Context, start, end string) ([]holiday.Event, error) {
	now := time.Now().In(s.loc)
	first, last := dateutil.MonthBounds(now.Year(), now.Month(), s.loc)

	if start != "" {
		parsed, err := dateutil.ParseDay(start, s.loc)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		first = parsed
	}
	if end != "" {
		parsed, err := dateutil.ParseDay(end, s.loc)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		last = parsed
	}

	return s.EventRepository.ListForRange(ctx, first, last)
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.EventRepository.Delete(ctx, id)
}
