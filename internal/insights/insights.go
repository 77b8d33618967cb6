// Package insights turns a spending summary into a short natural
// language commentary using the Gemini API.
package insights

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/jbqneto/financial-flow/internal/logging"
	"github.com/jbqneto/financial-flow/internal/models"
	"github.com/jbqneto/financial-flow/internal/report"
)

// Generator wraps a Gemini model.
type Generator struct {
	client *genai.Client
	model  *genai.GenerativeModel
	logger logging.Logger
}

// NewGenerator creates a Gemini-backed generator. The caller owns the
// returned Generator and must Close it.
func NewGenerator(ctx context.Context, apiKey, modelName string, logger logging.Logger) (*Generator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("missing Gemini API key")
	}
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Generator{
		client: client,
		model:  client.GenerativeModel(modelName),
		logger: logger,
	}, nil
}

// Close releases the underlying client.
func (g *Generator) Close() error {
	return g.client.Close()
}

// Generate asks the model for a commentary on the summary.
func (g *Generator) Generate(ctx context.Context, summary report.Summary) (string, error) {
	prompt := BuildPrompt(summary)
	g.logger.WithField("prompt_length", len(prompt)).Debug("Requesting spending insights")

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("failed to generate insights: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	return strings.TrimSpace(text), nil
}

// BuildPrompt renders the summary as a compact plain-text briefing the
// model can comment on. Exported so the prompt shape is testable
// without a client.
func BuildPrompt(summary report.Summary) string {
	var b strings.Builder
	b.WriteString("You are a personal finance assistant. Given the totals below, ")
	b.WriteString("write a short commentary (3-5 sentences) on spending habits, ")
	b.WriteString("notable categories and simple saving suggestions.\n\n")

	fmt.Fprintf(&b, "Total income: %s\n", summary.Income)
	fmt.Fprintf(&b, "Total expenses: %s\n", summary.Expenses)
	fmt.Fprintf(&b, "Balance: %s\n\n", summary.Balance)

	b.WriteString("Expenses by category:\n")
	categories := make([]models.Category, 0, len(summary.ByCategory))
	for category := range summary.ByCategory {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })
	for _, category := range categories {
		fmt.Fprintf(&b, "- %s: %s\n", category, summary.ByCategory[category])
	}

	if len(summary.Monthly) > 0 {
		b.WriteString("\nMonthly totals (income / expenses / balance):\n")
		for _, month := range summary.Monthly {
			fmt.Fprintf(&b, "- %s: %s / %s / %s\n", month.Month, month.Income, month.Expenses, month.Balance)
		}
	}

	return b.String()
}
