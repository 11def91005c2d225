// Package export renders ideas into downloadable business plan documents.
package export

import (
	"fmt"
	"strings"

	"github.com/rohits-web03/ideaforge/internal/models"
)

const placeholder = "N/A"

// Document is the fixed shape every exporter renders.
type Document struct {
	Title           string
	Industry        string
	Description     string
	BusinessModel   string
	TargetAudience  string
	SwotAnalysis    string
	MarketPotential string
	Keywords        string
}

// Renderer turns a Document into file bytes.
type Renderer interface {
	Render(doc Document) ([]byte, error)
	ContentType() string
}

type section struct {
	Heading string
	Body    string
}

// sections lists the labeled body sections in render order.
func (d Document) sections() []section {
	return []section{
		{"Business Description", orPlaceholder(d.Description)},
		{"Business Model", orPlaceholder(d.BusinessModel)},
		{"Target Audience", orPlaceholder(d.TargetAudience)},
		{"SWOT Analysis", orPlaceholder(d.SwotAnalysis)},
		{"Market Potential", orPlaceholder(d.MarketPotential)},
		{"Keywords", orPlaceholder(d.Keywords)},
	}
}

func orPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FromIdea maps a stored idea onto a Document.
func FromIdea(idea models.Idea) Document {
	return Document{
		Title:           idea.Title,
		Industry:        deref(idea.Industry),
		Description:     deref(idea.Description),
		BusinessModel:   deref(idea.BusinessModel),
		TargetAudience:  deref(idea.TargetAudience),
		SwotAnalysis:    deref(idea.SwotAnalysis),
		MarketPotential: deref(idea.MarketPotential),
		Keywords:        deref(idea.Keywords),
	}
}

// Combined builds one summary Document for several ideas. Only industries and
// keywords are carried over; narrative fields point the reader to the ideas
// themselves.
func Combined(ideas []models.Idea) Document {
	const seeIdeas = "See individual ideas below"

	var industries, keywords []string
	for _, idea := range ideas {
		if s := deref(idea.Industry); s != "" {
			industries = append(industries, s)
		}
		if s := deref(idea.Keywords); s != "" {
			keywords = append(keywords, s)
		}
	}

	return Document{
		Title:           fmt.Sprintf("Business Plans - %d Ideas", len(ideas)),
		Industry:        strings.Join(industries, ", "),
		Description:     fmt.Sprintf("Combined business plan document with %d startup ideas", len(ideas)),
		BusinessModel:   seeIdeas,
		TargetAudience:  seeIdeas,
		SwotAnalysis:    seeIdeas,
		MarketPotential: seeIdeas,
		Keywords:        strings.Join(keywords, ", "),
	}
}

// IdeaFilename is the attachment name for a single idea export.
func IdeaFilename(idea models.Idea) string {
	return fmt.Sprintf("business_plan_%s_%s.pdf", idea.ID, strings.ReplaceAll(idea.Title, " ", "_"))
}

// CombinedFilename is the attachment name for a multi idea export.
func CombinedFilename(n int) string {
	return fmt.Sprintf("business_plans_combined_%d_ideas.pdf", n)
}
