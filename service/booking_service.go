package service

import (
	"context"
	"math"
	"time"
	"wedding-api/model"
	"wedding-api/repository"
)

const upcomingEventsLimit = 3

// BookingService manages booked events and the public calendar.
type BookingService struct {
	repo  repository.IBookingRepository
	cache *ContentCache
	now   func() time.Time
}

func NewBookingService(repo repository.IBookingRepository, cache *ContentCache) *BookingService {
	return &BookingService{repo: repo, cache: cache, now: time.Now}
}

func (s *BookingService) ListBookings(ctx context.Context) ([]model.Booking, error) {
	return s.repo.ListBookings(ctx)
}

func (s *BookingService) GetBooking(ctx context.Context, id int64) (*model.Booking, error) {
	return s.repo.GetBooking(ctx, id)
}

func (s *BookingService) CreateBooking(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	b := req.Booking()
	if err := s.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyCalendar)
	// Reload to pick up the category name.
	return s.repo.GetBooking(ctx, b.ID)
}

func (s *BookingService) UpdateBooking(ctx context.Context, id int64, patch model.BookingPatch) (*model.Booking, error) {
	b, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(b)
	if err := s.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyCalendar)
	return s.repo.GetBooking(ctx, id)
}

func (s *BookingService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, keyCalendar)
	return nil
}

func (s *BookingService) Calendar(ctx context.Context) ([]model.CalendarEntry, error) {
	return Remember(ctx, s.cache, keyCalendar, s.repo.ListCalendar)
}

func (s *BookingService) CalendarInfo(ctx context.Context, day model.Date) ([]model.CalendarInfo, error) {
	return s.repo.ListCalendarInfo(ctx, day.Time)
}

// UpcomingEvents returns the next bookings from today on, soonest first.
func (s *BookingService) UpcomingEvents(ctx context.Context) ([]model.UpcomingEvent, error) {
	return s.repo.ListUpcoming(ctx, s.now(), upcomingEventsLimit)
}

// EventStats reports each category's share of all bookings, rounded to one
// decimal place.
func (s *BookingService) EventStats(ctx context.Context) ([]model.EventStat, error) {
	counts, err := s.repo.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}
	return eventStats(counts), nil
}

func eventStats(counts []model.CategoryCount) []model.EventStat {
	total := 0
	for _, c := range counts {
		total += c.Count
	}

	stats := make([]model.EventStat, 0, len(counts))
	for _, c := range counts {
		var percent float64
		if total > 0 {
			percent = math.Round(float64(c.Count)/float64(total)*1000) / 10
		}
		stats = append(stats, model.EventStat{Category: c.Category, Count: c.Count, Percent: percent})
	}
	return stats
}
