package service

import "io"

type Skipped struct {
	Line   int    `json:"line"`
	Crop   string `json:"crop"`
	Reason string `json:"reason"`
}

type Report struct {
	Accepted int       `json:"accepted"`
	Skipped  []Skipped `json:"skipped"`
	Source   string    `json:"source,omitempty"`
}

type PricingService interface {
	// Import upserts every valid row of the first HTML table in r. source is
	// recorded in the quote notes.
	Import(r io.Reader, source string) (*Report, error)
}
