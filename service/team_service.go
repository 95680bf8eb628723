package service

import (
	"context"
	"wedding-api/model"
	"wedding-api/repository"
)

// TeamService manages positions and team members.
type TeamService struct {
	repo  repository.ITeamRepository
	cache *ContentCache
}

func NewTeamService(repo repository.ITeamRepository, cache *ContentCache) *TeamService {
	return &TeamService{repo: repo, cache: cache}
}

func (s *TeamService) ListPositions(ctx context.Context) ([]model.Position, error) {
	return s.repo.ListPositions(ctx)
}

func (s *TeamService) CreatePosition(ctx context.Context, req model.PositionRequest) (*model.Position, error) {
	p := &model.Position{Name: req.Name}
	if err := s.repo.CreatePosition(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *TeamService) UpdatePosition(ctx context.Context, id int64, req model.PositionRequest) (*model.Position, error) {
	p := &model.Position{ID: id, Name: req.Name}
	if err := s.repo.UpdatePosition(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyTeam)
	return p, nil
}

func (s *TeamService) DeletePosition(ctx context.Context, id int64) error {
	if err := s.repo.DeletePosition(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, keyTeam)
	return nil
}

func (s *TeamService) ListMembers(ctx context.Context) ([]model.TeamMember, error) {
	return s.repo.ListMembers(ctx)
}

// PublicTeam is the cached public projection of the team.
func (s *TeamService) PublicTeam(ctx context.Context) ([]model.TeamMemberPublic, error) {
	return Remember(ctx, s.cache, keyTeam, func(ctx context.Context) ([]model.TeamMemberPublic, error) {
		members, err := s.repo.ListMembers(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]model.TeamMemberPublic, 0, len(members))
		for _, m := range members {
			out = append(out, model.TeamMemberPublic{
				ID:        m.ID,
				Image:     m.Image,
				FirstName: m.FirstName,
				LastName:  m.LastName,
				Position:  m.Position,
			})
		}
		return out, nil
	})
}

func (s *TeamService) GetMember(ctx context.Context, id int64) (*model.TeamMember, error) {
	return s.repo.GetMember(ctx, id)
}

func (s *TeamService) CreateMember(ctx context.Context, req model.TeamMemberRequest) (*model.TeamMember, error) {
	m := req.TeamMember()
	if err := s.repo.CreateMember(ctx, m); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyTeam)
	return s.repo.GetMember(ctx, m.ID)
}

func (s *TeamService) UpdateMember(ctx context.Context, id int64, patch model.TeamMemberPatch) (*model.TeamMember, error) {
	m, err := s.repo.GetMember(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(m)
	if err := s.repo.UpdateMember(ctx, m); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyTeam)
	return s.repo.GetMember(ctx, id)
}

func (s *TeamService) DeleteMember(ctx context.Context, id int64) error {
	if err := s.repo.DeleteMember(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, keyTeam)
	return nil
}
