package service

import (
	"context"
	"wedding-api/model"
	"wedding-api/repository"

	"golang.org/x/sync/errgroup"
)

// StatsService assembles the dashboard counters.
type StatsService struct {
	stats    repository.IStatsRepository
	team     repository.ITeamRepository
	bookings repository.IBookingRepository
	messages repository.IMessageRepository
}

func NewStatsService(stats repository.IStatsRepository, team repository.ITeamRepository,
	bookings repository.IBookingRepository, messages repository.IMessageRepository) *StatsService {
	return &StatsService{stats: stats, team: team, bookings: bookings, messages: messages}
}

// Dashboard runs the independent counts concurrently. Events is the stored
// baseline plus the bookings on record.
func (s *StatsService) Dashboard(ctx context.Context) (*model.DashboardStats, error) {
	var (
		baseline   *model.DashboardStats
		employees  int
		bookings   int
		unanswered int
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		baseline, err = s.stats.GetOrCreateBaseline(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		employees, err = s.team.CountMembers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = s.bookings.CountBookings(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		unanswered, err = s.messages.CountUnanswered(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.DashboardStats{
		ID:                 baseline.ID,
		Employees:          employees,
		Events:             baseline.Events + bookings,
		AnnualIncome:       baseline.AnnualIncome,
		UnansweredMessages: unanswered,
	}, nil
}
