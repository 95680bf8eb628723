package service

import (
	"context"
	"fmt"
	"wedding-api/model"
	"wedding-api/repository"
)

// CategoryService manages service categories and their gallery.
type CategoryService struct {
	repo  repository.ICategoryRepository
	cache *ContentCache
}

func NewCategoryService(repo repository.ICategoryRepository, cache *ContentCache) *CategoryService {
	return &CategoryService{repo: repo, cache: cache}
}

func galleryKey(categoryID int64) string {
	return fmt.Sprintf("%s%d", keyGalleryPrefix, categoryID)
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.repo.ListCategories(ctx)
}

// PublicCategories is the cached category list shown on the site.
func (s *CategoryService) PublicCategories(ctx context.Context) ([]model.Category, error) {
	return Remember(ctx, s.cache, keyCategories, s.repo.ListCategories)
}

// CategoryFooter is the id/name projection of PublicCategories.
func (s *CategoryService) CategoryFooter(ctx context.Context) ([]model.CategoryRef, error) {
	categories, err := s.PublicCategories(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]model.CategoryRef, 0, len(categories))
	for _, c := range categories {
		refs = append(refs, model.CategoryRef{ID: c.ID, Name: c.Name})
	}
	return refs, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *CategoryService) CreateCategory(ctx context.Context, req model.CategoryRequest) (*model.Category, error) {
	c := &model.Category{Name: req.Name, Description: req.Description, Image: req.Image}
	if err := s.repo.CreateCategory(ctx, c); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyCategories)
	return c, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, patch model.CategoryPatch) (*model.Category, error) {
	c, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(c)
	if err := s.repo.UpdateCategory(ctx, c); err != nil {
		return nil, err
	}
	// Category names are embedded in gallery and calendar projections.
	s.cache.Invalidate(ctx, keyCategories, keyGallery, galleryKey(id), keyCalendar)
	return c, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, keyCategories, keyGallery, galleryKey(id), keyCalendar)
	return nil
}

func (s *CategoryService) ListGallery(ctx context.Context) ([]model.GalleryItem, error) {
	return s.repo.ListGallery(ctx)
}

func (s *CategoryService) PublicGallery(ctx context.Context) ([]model.GalleryItem, error) {
	return Remember(ctx, s.cache, keyGallery, s.repo.ListGallery)
}

func (s *CategoryService) PublicGalleryByCategory(ctx context.Context, categoryID int64) ([]model.GalleryItem, error) {
	return Remember(ctx, s.cache, galleryKey(categoryID), func(ctx context.Context) ([]model.GalleryItem, error) {
		return s.repo.ListGalleryByCategory(ctx, categoryID)
	})
}

func (s *CategoryService) AddGalleryItem(ctx context.Context, req model.GalleryRequest) (*model.GalleryItem, error) {
	item, err := s.repo.CreateGalleryItem(ctx, req.CategoryID, req.Image)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, keyGallery, galleryKey(req.CategoryID))
	return item, nil
}

func (s *CategoryService) DeleteGalleryItem(ctx context.Context, id int64) error {
	categoryID, err := s.repo.DeleteGalleryItem(ctx, id)
	if err != nil {
		return err
	}
	s.cache.Invalidate(ctx, keyGallery, galleryKey(categoryID))
	return nil
}
