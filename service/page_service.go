package service

import (
	"context"
	"wedding-api/model"
	"wedding-api/repository"
)

// PageService serves the single-row home and about-us pages.
type PageService struct {
	repo  repository.IPageRepository
	cache *ContentCache
}

func NewPageService(repo repository.IPageRepository, cache *ContentCache) *PageService {
	return &PageService{repo: repo, cache: cache}
}

func (s *PageService) HomePage(ctx context.Context) (*model.HomePage, error) {
	return Remember(ctx, s.cache, keyMainPage, s.repo.GetHomePage)
}

func (s *PageService) SaveHomePage(ctx context.Context, req model.HomePageRequest) (*model.HomePage, error) {
	p := &model.HomePage{Title: req.Title, Description: req.Description, Image: req.Image}
	if err := s.repo.SaveHomePage(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyMainPage)
	return p, nil
}

func (s *PageService) AboutUs(ctx context.Context) (*model.AboutUs, error) {
	return Remember(ctx, s.cache, keyAboutUs, s.repo.GetAboutUs)
}

func (s *PageService) AboutUsDetails(ctx context.Context) (*model.AboutUsDetails, error) {
	a, err := s.AboutUs(ctx)
	if err != nil {
		return nil, err
	}
	return &model.AboutUsDetails{
		ID:               a.ID,
		MainDescription:  a.MainDescription,
		SuccessfulEvents: a.SuccessfulEvents,
		WorkExperience:   a.WorkExperience,
		Image:            a.Image,
	}, nil
}

func (s *PageService) SaveAboutUs(ctx context.Context, req model.AboutUsRequest) (*model.AboutUs, error) {
	a := req.AboutUs()
	if a.Highlights == nil {
		a.Highlights = []model.AboutUsHighlight{}
	}
	if err := s.repo.SaveAboutUs(ctx, a); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyAboutUs)
	return a, nil
}
