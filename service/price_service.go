package service

import (
	"context"
	"wedding-api/model"
	"wedding-api/repository"
)

type PriceService struct {
	repo  repository.IPriceRepository
	cache *ContentCache
}

func NewPriceService(repo repository.IPriceRepository, cache *ContentCache) *PriceService {
	return &PriceService{repo: repo, cache: cache}
}

func (s *PriceService) List(ctx context.Context) ([]model.Price, error) {
	return s.repo.ListPrices(ctx)
}

func (s *PriceService) PublicList(ctx context.Context) ([]model.Price, error) {
	return Remember(ctx, s.cache, keyPrices, s.repo.ListPrices)
}

func (s *PriceService) Get(ctx context.Context, id int64) (*model.Price, error) {
	return s.repo.GetPrice(ctx, id)
}

func (s *PriceService) Create(ctx context.Context, req model.PriceRequest) (*model.Price, error) {
	p := &model.Price{
		Type:        req.Type,
		Price:       req.Price,
		Description: req.Description,
		Highlights:  model.HighlightsFromStrings(req.Highlights),
	}
	if err := s.repo.CreatePrice(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyPrices)
	return p, nil
}

func (s *PriceService) Update(ctx context.Context, id int64, patch model.PricePatch) (*model.Price, error) {
	p, err := s.repo.GetPrice(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	replace := patch.Highlights != nil
	if replace {
		p.Highlights = model.HighlightsFromStrings(*patch.Highlights)
	}
	if err := s.repo.UpdatePrice(ctx, p, replace); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyPrices)
	return p, nil
}

func (s *PriceService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeletePrice(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, keyPrices)
	return nil
}
