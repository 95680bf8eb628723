package model

import "time"

type News struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewsRequest struct {
	Title       string `json:"title" validate:"required,max=300"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"omitempty,url"`
}

type NewsPatch struct {
	Title       *string `json:"title" validate:"omitempty,max=300"`
	Description *string `json:"description"`
	Image       *string `json:"image" validate:"omitempty,url"`
}

func (p NewsPatch) Apply(n *News) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Description != nil {
		n.Description = *p.Description
	}
	if p.Image != nil {
		n.Image = *p.Image
	}
}
