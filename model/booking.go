package model

import "time"

// Booking is a reserved event date for a category of service.
type Booking struct {
	ID              int64     `json:"id"`
	CategoryID      int64     `json:"category_id"`
	CategoryName    string    `json:"category"`
	BookDate        Date      `json:"book_date"`
	BookerFirstName string    `json:"booker_first_name"`
	BookerLastName  string    `json:"booker_last_name"`
	PhoneNumber     string    `json:"phone_number"`
	NumberOfGuests  int       `json:"number_of_guests"`
	Price           float64   `json:"price"`
	AdditionalInfo  string    `json:"additional_info"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingRequest struct {
	CategoryID      int64   `json:"category" validate:"required,gt=0"`
	BookDate        Date    `json:"book_date" validate:"required"`
	BookerFirstName string  `json:"booker_first_name" validate:"required,personname,max=250"`
	BookerLastName  string  `json:"booker_last_name" validate:"required,personname,max=250"`
	PhoneNumber     string  `json:"phone_number" validate:"required,uzphone"`
	NumberOfGuests  int     `json:"number_of_guests" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	AdditionalInfo  string  `json:"additional_info"`
}

func (r BookingRequest) Booking() *Booking {
	return &Booking{
		CategoryID:      r.CategoryID,
		BookDate:        r.BookDate,
		BookerFirstName: r.BookerFirstName,
		BookerLastName:  r.BookerLastName,
		PhoneNumber:     r.PhoneNumber,
		NumberOfGuests:  r.NumberOfGuests,
		Price:           r.Price,
		AdditionalInfo:  r.AdditionalInfo,
	}
}

type BookingPatch struct {
	CategoryID      *int64   `json:"category" validate:"omitempty,gt=0"`
	BookDate        *Date    `json:"book_date"`
	BookerFirstName *string  `json:"booker_first_name" validate:"omitempty,personname,max=250"`
	BookerLastName  *string  `json:"booker_last_name" validate:"omitempty,personname,max=250"`
	PhoneNumber     *string  `json:"phone_number" validate:"omitempty,uzphone"`
	NumberOfGuests  *int     `json:"number_of_guests" validate:"omitempty,gte=0"`
	Price           *float64 `json:"price" validate:"omitempty,gte=0"`
	AdditionalInfo  *string  `json:"additional_info"`
}

func (p BookingPatch) Apply(b *Booking) {
	if p.CategoryID != nil {
		b.CategoryID = *p.CategoryID
	}
	if p.BookDate != nil {
		b.BookDate = *p.BookDate
	}
	if p.BookerFirstName != nil {
		b.BookerFirstName = *p.BookerFirstName
	}
	if p.BookerLastName != nil {
		b.BookerLastName = *p.BookerLastName
	}
	if p.PhoneNumber != nil {
		b.PhoneNumber = *p.PhoneNumber
	}
	if p.NumberOfGuests != nil {
		b.NumberOfGuests = *p.NumberOfGuests
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.AdditionalInfo != nil {
		b.AdditionalInfo = *p.AdditionalInfo
	}
}

// CalendarEntry marks a booked day on the public calendar.
type CalendarEntry struct {
	ID       int64 `json:"id"`
	BookDate Date  `json:"book_date"`
}

// CalendarInfo describes the booking on a given day.
type CalendarInfo struct {
	ID             int64  `json:"id"`
	BookDate       Date   `json:"book_date"`
	AdditionalInfo string `json:"additional_info"`
	Category       struct {
		Name  string `json:"name"`
		Image string `json:"image"`
	} `json:"category"`
}

// UpcomingEvent is the dashboard projection of a future booking.
type UpcomingEvent struct {
	ID              int64  `json:"id"`
	Category        string `json:"category"`
	BookDate        Date   `json:"book_date"`
	BookerFirstName string `json:"booker_first_name"`
	BookerLastName  string `json:"booker_last_name"`
	NumberOfGuests  int    `json:"number_of_guests"`
}

// CategoryCount is one group of the bookings-per-category aggregate.
type CategoryCount struct {
	Category string
	Count    int
}

// EventStat is a category's share of all bookings.
type EventStat struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Percent  float64 `json:"percent"`
}
