// Package generator produces business idea content from keywords and an
// industry.
package generator

//go:generate mockgen -source=generator.go -destination=generator_mock.go -package=generator

import "context"

// Idea is the content of one generated idea. A non-empty Error marks an entry
// the provider failed to produce; callers must not persist it.
type Idea struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	BusinessModel   string `json:"business_model"`
	TargetAudience  string `json:"target_audience"`
	SwotAnalysis    string `json:"swot_analysis"`
	MarketPotential string `json:"market_potential"`
	Keywords        string `json:"keywords"`
	Error           string `json:"error,omitempty"`
}

// Generator returns at most count ideas for the given keywords and industry.
type Generator interface {
	Generate(ctx context.Context, keywords, industry string, count int) ([]Idea, error)
}
