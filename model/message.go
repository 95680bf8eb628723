package model

import "time"

// Message is a contact form submission.
type Message struct {
	ID          int64     `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number"`
	Message     string    `json:"message"`
	Answered    bool      `json:"answered"`
	CreatedAt   time.Time `json:"created_at"`
}

type ContactRequest struct {
	FirstName   string `json:"first_name" validate:"required,personname,max=250"`
	LastName    string `json:"last_name" validate:"required,personname,max=250"`
	PhoneNumber string `json:"phone_number" validate:"required,uzphone"`
	Message     string `json:"message" validate:"required,max=5000"`
}

type MessagePatch struct {
	Answered *bool `json:"answered" validate:"required"`
}
