package model

import "time"

// Category is a wedding service offered by the venue.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=250"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"omitempty,url"`
}

type CategoryPatch struct {
	Name        *string `json:"name" validate:"omitempty,max=250"`
	Description *string `json:"description"`
	Image       *string `json:"image" validate:"omitempty,url"`
}

func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
}

// CategoryRef is the short id/name projection used by footers and nested
// objects.
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GalleryItem is an image attached to a category.
type GalleryItem struct {
	ID        int64       `json:"id"`
	Image     string      `json:"image"`
	Category  CategoryRef `json:"category"`
	CreatedAt time.Time   `json:"created_at"`
}

type GalleryRequest struct {
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	Image      string `json:"image" validate:"required,url"`
}
