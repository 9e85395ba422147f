package classify

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"flyerhub/internal/model"
)

// Client is the external text classifier: one structured record per name.
type Client interface {
	Classify(ctx context.Context, names []string) ([]model.ClassificationEntry, error)
}

type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
	}
}

func (c *OpenAIClient) Classify(ctx context.Context, names []string) ([]model.ClassificationEntry, error) {
	payload, err := json.Marshal(names)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    "system",
					Content: SystemPrompt(),
				},
				{
					Role:    "user",
					Content: "Raw items:\n" + string(payload),
				},
			},
			Temperature: 0.1,
			ResponseFormat: &openai.ChatCompletionResponseFormat{
				Type: openai.ChatCompletionResponseFormatTypeJSONObject,
			},
		},
	)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Items []model.ClassificationEntry `json:"items"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode classifier response: %w", err)
	}

	// tudo fora do enum vira "Other"
	for i := range parsed.Items {
		if !model.ValidCategory(parsed.Items[i].Category) {
			parsed.Items[i].Category = "Other"
		}
	}

	return parsed.Items, nil
}
