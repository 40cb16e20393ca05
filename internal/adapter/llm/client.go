package llm

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"

	"duitbot/internal/infrastructure/metrics"
)

// Client wraps the Gemini API for the classifier and extractor. Both
// share one underlying connection and model name.
type Client struct {
	genai   *genai.Client
	model   string
	metrics *metrics.Metrics
}

// NewClient creates a Gemini client for the given model.
func NewClient(ctx context.Context, apiKey, model string, metrics *metrics.Metrics) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &Client{genai: client, model: model, metrics: metrics}, nil
}

// generate runs one generation call and returns the raw response text.
// operation labels the call in metrics.
func (c *Client) generate(ctx context.Context, operation string, contents []*genai.Content) (string, error) {
	start := time.Now()

	resp, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ModelErrors.WithLabelValues(operation).Inc()
		}

		return "", fmt.Errorf("generate content: %w", err)
	}

	if c.metrics != nil {
		c.metrics.ModelDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}

func userText(text string) []*genai.Content {
	return []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: text}},
		},
	}
}
