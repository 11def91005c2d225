package generator

import (
	"context"
	"fmt"
)

// TemplateGenerator expands a fixed pool of idea templates. It never calls
// out to a model and is fully deterministic.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

func (g *TemplateGenerator) Generate(ctx context.Context, keywords, industry string, count int) ([]Idea, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool := templates(keywords, industry)
	if count <= 0 {
		return []Idea{}, nil
	}
	if count > len(pool) {
		count = len(pool)
	}
	return pool[:count], nil
}

// PoolSize is the maximum number of ideas a single call can return.
func (g *TemplateGenerator) PoolSize() int {
	return len(templates("", ""))
}

func templates(keywords, industry string) []Idea {
	return []Idea{
		{
			Title:           fmt.Sprintf("AI-Powered %s Platform", industry),
			Description:     fmt.Sprintf("An innovative %s solution using %s. This platform leverages artificial intelligence to provide personalized solutions for professionals.", industry, keywords),
			BusinessModel:   "SaaS subscription model with tiered pricing starting at 99 USD per month for individuals",
			TargetAudience:  "Tech-savvy professionals, students, and organizations looking for advanced learning solutions",
			SwotAnalysis:    "Strengths: Advanced AI, user-friendly interface. Weaknesses: High development cost. Opportunities: Growing market demand. Threats: Competition from established players",
			MarketPotential: "The global AI market is projected to reach 1.8 trillion USD by 2030, with strong growth in education and enterprise sectors",
			Keywords:        keywords,
		},
		{
			Title:           fmt.Sprintf("Intelligent %s Assistant", industry),
			Description:     fmt.Sprintf("A smart virtual assistant powered by %s technology designed specifically for %s professionals. It automates routine tasks and provides intelligent recommendations.", keywords, industry),
			BusinessModel:   "Freemium model with free basic tier and premium features at 19.99 USD per month",
			TargetAudience:  fmt.Sprintf("Busy professionals in %s, academic institutions, and corporate training departments", industry),
			SwotAnalysis:    "Strengths: Automation, 24/7 availability. Weaknesses: Initial setup complexity. Opportunities: B2B partnerships. Threats: Alternative solutions",
			MarketPotential: "Expected market size of 500 billion USD or more by 2025 with 40 percent annual growth rate",
			Keywords:        keywords,
		},
		{
			Title:           fmt.Sprintf("Blockchain-Based %s Network", industry),
			Description:     fmt.Sprintf("A decentralized %s network using %s to ensure transparency and security. Connects learners, experts, and organizations in a trusted ecosystem.", industry, keywords),
			BusinessModel:   "Token-based economy with transaction fees and premium membership options",
			TargetAudience:  "Forward-thinking organizations, tech enthusiasts, and institutions seeking decentralized solutions",
			SwotAnalysis:    "Strengths: Decentralized, transparent. Weaknesses: Regulatory uncertainty. Opportunities: First-mover advantage. Threats: Blockchain adoption barriers",
			MarketPotential: fmt.Sprintf("Blockchain in %s sector estimated at 200 billion USD or more opportunity with emerging regulatory frameworks", industry),
			Keywords:        keywords,
		},
	}
}
