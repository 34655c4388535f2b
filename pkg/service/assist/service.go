package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
)

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// Option is a functional option for client configuration
type Option func(*client)

// New creates a new assist service with the provided LLM client
func New(llmClient gollem.LLMClient, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	c := &client{
		llmClient: llmClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

const descriptionSystemPrompt = "You are an assistant for a video production tool. " +
	"You write short, professional descriptions (2 sentences at most) for graphic overlays used in broadcasts. " +
	"Respond with the description only, no preamble, in the same language as the overlay title."

func (c *client) GenerateDescription(ctx context.Context, title, category string) (string, error) {
	if title == "" {
		return "", goerr.New("title is required")
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(descriptionSystemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Overlay title: %q\n", title)
	if category != "" {
		fmt.Fprintf(&sb, "Category: %q\n", category)
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(sb.String()))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate description", goerr.V("title", title))
	}
	if len(resp.Texts) == 0 {
		return "", goerr.New("empty response from LLM", goerr.V("title", title))
	}

	return strings.TrimSpace(resp.Texts[0]), nil
}

const tagSystemPrompt = "You are an assistant for a video production tool. " +
	"You analyze the title and description of a graphic overlay and propose 3 to 5 relevant tags. " +
	"Tags are short lowercase keywords in the same language as the input."

func (c *client) SuggestTags(ctx context.Context, title, description string) ([]string, error) {
	if title == "" {
		return nil, goerr.New("title is required")
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(buildTagSchema()),
		gollem.WithSessionSystemPrompt(tagSystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %q\n", title)
	if description != "" {
		fmt.Fprintf(&sb, "Description: %q\n", description)
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(sb.String()))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate tags", goerr.V("title", title))
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("empty response from LLM", goerr.V("title", title))
	}

	var parsed tagResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to parse LLM response", goerr.V("response", resp.Texts[0]))
	}

	// Deduplicate while preserving LLM ordering
	seen := make(map[string]struct{}, len(parsed.Tags))
	tags := make([]string, 0, len(parsed.Tags))
	for _, tag := range parsed.Tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags, nil
}

// buildTagSchema creates the JSON schema for structured tag output
func buildTagSchema() *gollem.Parameter {
	return &gollem.Parameter{
		Title:       "TagSuggestionResponse",
		Description: "Suggested tags for a graphic overlay",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"tags": {
				Type:        gollem.TypeArray,
				Description: "3 to 5 short lowercase keywords",
				Required:    true,
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
			},
		},
	}
}
