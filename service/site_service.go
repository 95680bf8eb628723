package service

import (
	"context"
	"wedding-api/model"
	"wedding-api/repository"
)

// SiteService manages social media links and the venue contact settings.
type SiteService struct {
	repo  repository.ISiteRepository
	cache *ContentCache
}

func NewSiteService(repo repository.ISiteRepository, cache *ContentCache) *SiteService {
	return &SiteService{repo: repo, cache: cache}
}

func (s *SiteService) ListSocialMedia(ctx context.Context) ([]model.SocialMedia, error) {
	return s.repo.ListSocialMedia(ctx)
}

func (s *SiteService) PublicSocialMedia(ctx context.Context) ([]model.SocialMedia, error) {
	return Remember(ctx, s.cache, keySocialMedia, s.repo.ListSocialMedia)
}

func (s *SiteService) CreateSocialMedia(ctx context.Context, req model.SocialMediaRequest) (*model.SocialMedia, error) {
	sm := &model.SocialMedia{Name: req.Name, URL: req.URL, Image: req.Image}
	if err := s.repo.CreateSocialMedia(ctx, sm); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keySocialMedia)
	return sm, nil
}

func (s *SiteService) UpdateSocialMedia(ctx context.Context, id int64, patch model.SocialMediaPatch) (*model.SocialMedia, error) {
	sm, err := s.repo.GetSocialMedia(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(sm)
	if err := s.repo.UpdateSocialMedia(ctx, sm); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keySocialMedia)
	return sm, nil
}

func (s *SiteService) DeleteSocialMedia(ctx context.Context, id int64) error {
	if err := s.repo.DeleteSocialMedia(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, keySocialMedia)
	return nil
}

func (s *SiteService) ListWebSettings(ctx context.Context) ([]model.WebSettings, error) {
	return s.repo.ListWebSettings(ctx)
}

func (s *SiteService) publicWebSettings(ctx context.Context) ([]model.WebSettings, error) {
	return Remember(ctx, s.cache, keyContactInfo, s.repo.ListWebSettings)
}

func (s *SiteService) ContactInfo(ctx context.Context) ([]model.ContactInfo, error) {
	settings, err := s.publicWebSettings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ContactInfo, 0, len(settings))
	for _, ws := range settings {
		out = append(out, model.ContactInfo{
			ID:          ws.ID,
			PhoneNumber: ws.PhoneNumber,
			Email:       ws.Email,
			Location:    ws.Location,
			LocationURL: ws.LocationURL,
		})
	}
	return out, nil
}

func (s *SiteService) ContactInfoFooter(ctx context.Context) ([]model.ContactInfoFooter, error) {
	settings, err := s.publicWebSettings(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.ContactInfoFooter, 0, len(settings))
	for _, ws := range settings {
		out = append(out, model.ContactInfoFooter{
			ID:          ws.ID,
			PhoneNumber: ws.PhoneNumber,
			Email:       ws.Email,
			Location:    ws.Location,
			OpenFrom:    ws.OpenFrom,
			CloseTo:     ws.CloseTo,
		})
	}
	return out, nil
}

func (s *SiteService) CreateWebSettings(ctx context.Context, req model.WebSettingsRequest) (*model.WebSettings, error) {
	ws := req.WebSettings()
	if err := s.repo.CreateWebSettings(ctx, ws); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyContactInfo)
	return ws, nil
}

func (s *SiteService) UpdateWebSettings(ctx context.Context, id int64, patch model.WebSettingsPatch) (*model.WebSettings, error) {
	ws, err := s.repo.GetWebSettings(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(ws)
	if err := s.repo.UpdateWebSettings(ctx, ws); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyContactInfo)
	return ws, nil
}

func (s *SiteService) DeleteWebSettings(ctx context.Context, id int64) error {
	if err := s.repo.DeleteWebSettings(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, keyContactInfo)
	return nil
}
