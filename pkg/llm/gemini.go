package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModel)
	model.SystemInstruction = genai.NewUserContent(genai.Text(scoringPrompt))
	model.ResponseMIMEType = "application/json"

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) ScoreBatch(ctx context.Context, texts []string) ([]float64, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(formatTextsForScoring(texts)))
	if err != nil {
		return nil, fmt.Errorf("gemini API error: %w", err)
	}

	content := responseText(resp)
	if content == "" {
		return nil, fmt.Errorf("no response from gemini")
	}

	return parseScores(content, len(texts))
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	return sb.String()
}
