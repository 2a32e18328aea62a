package inference

import (
	"context"
	"errors"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
)

// OpenAIGenerator implements Generator against any OpenAI-compatible chat
// completion endpoint. TopK is not part of that API and is dropped.
type OpenAIGenerator struct {
	client *openai.Client
	apiKey string
	model  string
}

func NewOpenAIGenerator(apiKey string, model string) *OpenAIGenerator {
	if model == "" {
		model = "gpt-4o-mini"
	}
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIGenerator{
		client: &client,
		apiKey: apiKey,
		model:  model,
	}
}

func (o *OpenAIGenerator) ChangeBaseURL(baseURL string) {
	client := openai.NewClient(
		option.WithAPIKey(o.apiKey),
		option.WithBaseURL(baseURL),
	)
	o.client = &client
}

func (o *OpenAIGenerator) SetModel(model string) {
	o.model = model
}

func (o *OpenAIGenerator) Generate(ctx context.Context, instruction string, targetWords int) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model: o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Role: "user",
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: param.Opt[string]{Value: instruction},
					},
				},
			},
		},
		MaxCompletionTokens: openai.Int(int64(MaxOutputTokens(targetWords))),
		Temperature:         openai.Float(temperature),
		TopP:                openai.Float(topP),
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return "", newGenerationError(apiErr.Message, err)
		}
		return "", newGenerationError("", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", ErrMalformedResponse()
	}

	return resp.Choices[0].Message.Content, nil
}
