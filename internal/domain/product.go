package domain

import "fmt"

type Rating struct {
	Rate  float64 `json:"rate" yaml:"rate"`
	Count int     `json:"count" yaml:"count"`
}

type Product struct {
	ID          int     `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Price       float64 `json:"price" yaml:"price"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string  `json:"category,omitempty" yaml:"category,omitempty"`
	Image       string  `json:"image" yaml:"image"`
	Rating      Rating  `json:"rating" yaml:"rating"`
}

// PriceLabel renders the price the way product cards display it.
func (p Product) PriceLabel() string {
	return fmt.Sprintf("$%.2f", p.Price)
}
