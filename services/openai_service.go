package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/tmc/langchaingo/schema"
)

// Recognizer is the external vision model the image gateway delegates
// to. It takes raw image bytes and returns the model's textual reply.
type Recognizer interface {
	RecognizeMeal(ctx context.Context, image []byte) (string, error)
}

const mealPrompt = `You are a calorie and nutrition recognition model.
Analyze this image and estimate the calories, protein, carbs, and fat
of the food shown.

Respond with a single JSON object and nothing else:

{
	"label": string, // short name of the dish
	"calories": int, // estimated kcal
	"protein": int,  // grams
	"carbs": int,    // grams
	"fat": int       // grams
}`

type OpenAIService struct {
	llm *openai.LLM
}

// NewOpenAIService builds the gpt-4o client. The API key comes from
// OPENAI_API_KEY in the environment.
func NewOpenAIService() (*OpenAIService, error) {
	llm, err := openai.New(openai.WithModel("gpt-4o"))
	if err != nil {
		return nil, fmt.Errorf("creating openai client: %w", err)
	}
	return &OpenAIService{llm: llm}, nil
}

func (s *OpenAIService) RecognizeMeal(ctx context.Context, image []byte) (string, error) {
	resp, err := s.llm.GenerateContent(ctx, []llms.MessageContent{
		{
			Role: schema.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(mealPrompt),
				llms.BinaryPart("image/jpeg", image),
			},
		},
	}, llms.WithTemperature(0))
	if err != nil {
		return "", fmt.Errorf("calling vision model: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("vision model returned no choices")
	}
	return resp.Choices[0].Content, nil
}
