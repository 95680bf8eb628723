package model

import "time"

// HomePage is the single hero block of the landing page.
type HomePage struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type HomePageRequest struct {
	Title       string `json:"title" validate:"required,max=300"`
	Description string `json:"description" validate:"required"`
	Image       string `json:"image" validate:"omitempty,url"`
}

type AboutUsHighlight struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AboutUs is the single about-us page with its highlight cards.
type AboutUs struct {
	ID               int64              `json:"id"`
	Title            string             `json:"title"`
	Description      string             `json:"description"`
	Image            string             `json:"image"`
	MainDescription  string             `json:"main_description"`
	SuccessfulEvents int                `json:"successful_events"`
	WorkExperience   int                `json:"work_experience"`
	Highlights       []AboutUsHighlight `json:"highlight"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// AboutUsDetails is the secondary about-us projection.
type AboutUsDetails struct {
	ID               int64  `json:"id"`
	MainDescription  string `json:"main_description"`
	SuccessfulEvents int    `json:"successful_events"`
	WorkExperience   int    `json:"work_experience"`
	Image            string `json:"image"`
}

type AboutUsHighlightRequest struct {
	Title       string `json:"title" validate:"required,max=300"`
	Description string `json:"description" validate:"required"`
}

type AboutUsRequest struct {
	Title            string                    `json:"title" validate:"required,max=300"`
	Description      string                    `json:"description" validate:"required"`
	Image            string                    `json:"image" validate:"omitempty,url"`
	MainDescription  string                    `json:"main_description" validate:"required"`
	SuccessfulEvents int                       `json:"successful_events" validate:"gte=0"`
	WorkExperience   int                       `json:"work_experience" validate:"gte=0"`
	Highlights       []AboutUsHighlightRequest `json:"highlight" validate:"dive"`
}

func (r AboutUsRequest) AboutUs() *AboutUs {
	a := &AboutUs{
		Title:            r.Title,
		Description:      r.Description,
		Image:            r.Image,
		MainDescription:  r.MainDescription,
		SuccessfulEvents: r.SuccessfulEvents,
		WorkExperience:   r.WorkExperience,
	}
	for _, h := range r.Highlights {
		a.Highlights = append(a.Highlights, AboutUsHighlight{Title: h.Title, Description: h.Description})
	}
	return a
}
