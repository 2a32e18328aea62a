package inference

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"
)

type GeminiGenerator struct {
	client *genai.Client
	apiKey string
	model  string
}

// NewGeminiGenerator creates a generator backed by the Gemini API.
func NewGeminiGenerator(ctx context.Context, apiKey string, model string) (*GeminiGenerator, error) {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{
		client: client,
		apiKey: apiKey,
		model:  model,
	}, nil
}

func (g *GeminiGenerator) SetModel(model string) {
	g.model = model
}

// Generate sends the instruction as the sole conversational turn and returns
// the first candidate's text.
func (g *GeminiGenerator) Generate(ctx context.Context, instruction string, targetWords int) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		TopK:            genai.Ptr[float32](topK),
		TopP:            genai.Ptr[float32](topP),
		MaxOutputTokens: int32(MaxOutputTokens(targetWords)),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(instruction), config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return "", newGenerationError(apiErr.Message, err)
		}
		return "", newGenerationError("", err)
	}

	if len(result.Candidates) == 0 {
		return "", ErrMalformedResponse()
	}
	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrMalformedResponse()
	}
	return text, nil
}
