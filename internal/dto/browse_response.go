package dto

import "time"

type RatingDTO struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type ProductDTO struct {
	ID         int       `json:"id"`
	Title      string    `json:"title"`
	Price      float64   `json:"price"`
	PriceLabel string    `json:"priceLabel"`
	Image      string    `json:"image"`
	Category   string    `json:"category,omitempty"`
	Rating     RatingDTO `json:"rating"`
}

type BrowseResponse struct {
	Status       string       `json:"status"`
	SearchTerm   string       `json:"searchTerm"`
	Sort         string       `json:"sort"`
	Page         int          `json:"page"`
	PageSize     int          `json:"pageSize"`
	TotalPages   int          `json:"totalPages"`
	TotalResults int          `json:"totalResults"`
	Products     []ProductDTO `json:"products"`
}

type ErrorResponse struct {
	TraceID   string    `json:"traceId"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Products int    `json:"products"`
}
