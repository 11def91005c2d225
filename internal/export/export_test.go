package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rohits-web03/ideaforge/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDocument_SectionsOrderAndPlaceholder(t *testing.T) {
	doc := Document{Title: "T", Description: "d", Keywords: "  "}

	var headings []string
	for _, s := range doc.sections() {
		headings = append(headings, s.Heading)
	}
	assert.Equal(t, []string{
		"Business Description",
		"Business Model",
		"Target Audience",
		"SWOT Analysis",
		"Market Potential",
		"Keywords",
	}, headings)

	sections := doc.sections()
	assert.Equal(t, "d", sections[0].Body)
	assert.Equal(t, "N/A", sections[1].Body)
	assert.Equal(t, "N/A", sections[5].Body)
}

func TestFromIdea(t *testing.T) {
	idea := models.Idea{
		Title:        "AI-Powered health Platform",
		Industry:     strPtr("health"),
		Description:  strPtr("desc"),
		SwotAnalysis: nil,
		Keywords:     strPtr("fitness"),
	}
	doc := FromIdea(idea)
	assert.Equal(t, "AI-Powered health Platform", doc.Title)
	assert.Equal(t, "health", doc.Industry)
	assert.Equal(t, "desc", doc.Description)
	assert.Empty(t, doc.SwotAnalysis)
	assert.Equal(t, "fitness", doc.Keywords)
}

func TestCombined(t *testing.T) {
	ideas := []models.Idea{
		{Title: "a", Industry: strPtr("health"), Keywords: strPtr("fitness")},
		{Title: "b", Industry: nil, Keywords: strPtr("ai")},
		{Title: "c", Industry: strPtr("fintech"), Keywords: strPtr("")},
	}
	doc := Combined(ideas)

	assert.Equal(t, "Business Plans - 3 Ideas", doc.Title)
	assert.Equal(t, "health, fintech", doc.Industry)
	assert.Equal(t, "fitness, ai", doc.Keywords)
	assert.Equal(t, "Combined business plan document with 3 startup ideas", doc.Description)
	assert.Equal(t, "See individual ideas below", doc.BusinessModel)
	assert.Equal(t, "See individual ideas below", doc.MarketPotential)
}

func TestFilenames(t *testing.T) {
	id := uuid.MustParse("7f1c0d52-8f0e-4a53-9a57-3d4f2a6c1b9e")
	idea := models.Idea{ID: id, Title: "Intelligent health Assistant"}
	assert.Equal(t, "business_plan_7f1c0d52-8f0e-4a53-9a57-3d4f2a6c1b9e_Intelligent_health_Assistant.pdf", IdeaFilename(idea))
	assert.Equal(t, "business_plans_combined_2_ideas.pdf", CombinedFilename(2))
}

func TestPDFRenderer_Render(t *testing.T) {
	r := NewPDFRenderer()
	r.now = func() time.Time { return time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC) }

	out, err := r.Render(Document{
		Title:       "AI-Powered health Platform",
		Industry:    "health",
		Description: "An innovative health solution using fitness.",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output is a PDF")
	assert.Equal(t, "application/pdf", r.ContentType())
}

func TestPDFRenderer_EmptyDocument(t *testing.T) {
	out, err := NewPDFRenderer().Render(Document{})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
