package model

import "time"

type PriceHighlight struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// Price is a package offer with its bullet-point highlights.
type Price struct {
	ID          int64            `json:"id"`
	Type        string           `json:"type"`
	Price       float64          `json:"price"`
	Description string           `json:"description"`
	Highlights  []PriceHighlight `json:"highlights"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type PriceRequest struct {
	Type        string   `json:"type" validate:"required,max=250"`
	Price       float64  `json:"price" validate:"gte=0"`
	Description string   `json:"description" validate:"required"`
	Highlights  []string `json:"highlights" validate:"dive,required,max=500"`
}

// PricePatch replaces the highlight list only when Highlights is present.
type PricePatch struct {
	Type        *string   `json:"type" validate:"omitempty,max=250"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Description *string   `json:"description"`
	Highlights  *[]string `json:"highlights" validate:"omitempty,dive,required,max=500"`
}

func (p PricePatch) Apply(pr *Price) {
	if p.Type != nil {
		pr.Type = *p.Type
	}
	if p.Price != nil {
		pr.Price = *p.Price
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
}

func HighlightsFromStrings(items []string) []PriceHighlight {
	out := make([]PriceHighlight, 0, len(items))
	for _, d := range items {
		out = append(out, PriceHighlight{Description: d})
	}
	return out
}
