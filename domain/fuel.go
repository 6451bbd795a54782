package domain

import "time"

// FuelQuote is a gasoline price observation.
type FuelQuote struct {
	PricePerLiter float64   `json:"pricePerLiter"`
	Source        string    `json:"source"`
	AsOf          time.Time `json:"asOf"`
}
