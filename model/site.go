package model

import "time"

type SocialMedia struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	Image     string    `json:"social_media_image"`
	CreatedAt time.Time `json:"created_at"`
}

type SocialMediaRequest struct {
	Name  string `json:"name" validate:"required,max=250"`
	URL   string `json:"url" validate:"required,url"`
	Image string `json:"social_media_image" validate:"omitempty,url"`
}

type SocialMediaPatch struct {
	Name  *string `json:"name" validate:"omitempty,max=250"`
	URL   *string `json:"url" validate:"omitempty,url"`
	Image *string `json:"social_media_image" validate:"omitempty,url"`
}

func (p SocialMediaPatch) Apply(s *SocialMedia) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.URL != nil {
		s.URL = *p.URL
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
}

// WebSettings holds the venue's contact information.
type WebSettings struct {
	ID              int64     `json:"id"`
	WeddingHallName string    `json:"wedding_hall_name"`
	PhoneNumber     string    `json:"phone_number"`
	Email           string    `json:"email"`
	OpenFrom        string    `json:"open_from"`
	CloseTo         string    `json:"close_to"`
	Location        string    `json:"location"`
	LocationURL     string    `json:"location_url"`
	CreatedAt       time.Time `json:"created_at"`
}

// ContactInfo is the public contact-page projection.
type ContactInfo struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	LocationURL string `json:"location_url"`
}

// ContactInfoFooter is the footer projection.
type ContactInfoFooter struct {
	ID          int64  `json:"id"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	Location    string `json:"location"`
	OpenFrom    string `json:"open_from"`
	CloseTo     string `json:"close_to"`
}

type WebSettingsRequest struct {
	WeddingHallName string `json:"wedding_hall_name" validate:"required,max=300"`
	PhoneNumber     string `json:"phone_number" validate:"required,uzphone"`
	Email           string `json:"email" validate:"required,email"`
	OpenFrom        string `json:"open_from" validate:"required,clock"`
	CloseTo         string `json:"close_to" validate:"required,clock"`
	Location        string `json:"location" validate:"required,max=300"`
	LocationURL     string `json:"location_url" validate:"required,url,max=300"`
}

func (r WebSettingsRequest) WebSettings() *WebSettings {
	return &WebSettings{
		WeddingHallName: r.WeddingHallName,
		PhoneNumber:     r.PhoneNumber,
		Email:           r.Email,
		OpenFrom:        r.OpenFrom,
		CloseTo:         r.CloseTo,
		Location:        r.Location,
		LocationURL:     r.LocationURL,
	}
}

type WebSettingsPatch struct {
	WeddingHallName *string `json:"wedding_hall_name" validate:"omitempty,max=300"`
	PhoneNumber     *string `json:"phone_number" validate:"omitempty,uzphone"`
	Email           *string `json:"email" validate:"omitempty,email"`
	OpenFrom        *string `json:"open_from" validate:"omitempty,clock"`
	CloseTo         *string `json:"close_to" validate:"omitempty,clock"`
	Location        *string `json:"location" validate:"omitempty,max=300"`
	LocationURL     *string `json:"location_url" validate:"omitempty,url,max=300"`
}

func (p WebSettingsPatch) Apply(s *WebSettings) {
	if p.WeddingHallName != nil {
		s.WeddingHallName = *p.WeddingHallName
	}
	if p.PhoneNumber != nil {
		s.PhoneNumber = *p.PhoneNumber
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.OpenFrom != nil {
		s.OpenFrom = *p.OpenFrom
	}
	if p.CloseTo != nil {
		s.CloseTo = *p.CloseTo
	}
	if p.Location != nil {
		s.Location = *p.Location
	}
	if p.LocationURL != nil {
		s.LocationURL = *p.LocationURL
	}
}

// QRCode points at a URL that is rendered as a PNG on request.
type QRCode struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	ImageURL  string    `json:"qr_code_image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QRCodeRequest struct {
	URL string `json:"url" validate:"required,url,max=2000"`
}

// DashboardStats is the headline counter block of the dashboard.
type DashboardStats struct {
	ID                 int64 `json:"id"`
	Employees          int   `json:"employees"`
	Events             int   `json:"events"`
	AnnualIncome       int64 `json:"annual_income"`
	UnansweredMessages int   `json:"unanswered_messages"`
}
