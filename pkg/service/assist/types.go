package assist

import "context"

// Service defines the AI-assisted overlay enrichment. It is best-effort
// decoration: basic CRUD must never depend on it, and callers should treat
// failures as "feature unavailable" rather than as errors of their own.
type Service interface {
	// GenerateDescription writes a short description for an overlay from
	// its title and category.
	GenerateDescription(ctx context.Context, title, category string) (string, error)

	// SuggestTags proposes 3-5 tags for an overlay from its title and
	// description.
	SuggestTags(ctx context.Context, title, description string) ([]string, error)
}

// tagResponse is the structured output from the LLM
type tagResponse struct {
	Tags []string `json:"tags"`
}
