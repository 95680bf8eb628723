package service

import (
	"context"
	"wedding-api/model"
	"wedding-api/repository"
)

type NewsService struct {
	repo  repository.INewsRepository
	cache *ContentCache
}

func NewNewsService(repo repository.INewsRepository, cache *ContentCache) *NewsService {
	return &NewsService{repo: repo, cache: cache}
}

func (s *NewsService) List(ctx context.Context) ([]model.News, error) {
	return s.repo.ListNews(ctx)
}

func (s *NewsService) PublicList(ctx context.Context) ([]model.News, error) {
	return Remember(ctx, s.cache, keyNews, s.repo.ListNews)
}

func (s *NewsService) Get(ctx context.Context, id int64) (*model.News, error) {
	return s.repo.GetNews(ctx, id)
}

func (s *NewsService) Create(ctx context.Context, req model.NewsRequest) (*model.News, error) {
	n := &model.News{Title: req.Title, Description: req.Description, Image: req.Image}
	if err := s.repo.CreateNews(ctx, n); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyNews)
	return n, nil
}

func (s *NewsService) Update(ctx context.Context, id int64, patch model.NewsPatch) (*model.News, error) {
	n, err := s.repo.GetNews(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(n)
	if err := s.repo.UpdateNews(ctx, n); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyNews)
	return n, nil
}

func (s *NewsService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteNews(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, keyNews)
	return nil
}
