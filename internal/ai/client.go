package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultModel = "gemini-1.5-flash"

var ErrEmptyResponse = errors.New("no text in model response")

// GeminiClient sends single-turn prompts to a Gemini model. The SDK client is
// built on the first Generate call, so a missing key only fails requests.
type GeminiClient struct {
	apiKey    string
	modelName string

	mu     sync.Mutex
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey, modelName string) *GeminiClient {
	if modelName == "" {
		modelName = DefaultModel
	}
	return &GeminiClient{apiKey: apiKey, modelName: modelName}
}

func (gc *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	model, err := gc.generativeModel(ctx)
	if err != nil {
		return "", err
	}

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return responseText(resp)
}

func (gc *GeminiClient) generativeModel(ctx context.Context) (*genai.GenerativeModel, error) {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if gc.model != nil {
		return gc.model, nil
	}

	// the client outlives this request
	client, err := genai.NewClient(context.WithoutCancel(ctx), option.WithAPIKey(gc.apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client create failed: %w", err)
	}

	gc.client = client
	gc.model = client.GenerativeModel(gc.modelName)
	return gc.model, nil
}

func (gc *GeminiClient) Close() error {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	if gc.client == nil {
		return nil
	}
	err := gc.client.Close()
	gc.client = nil
	gc.model = nil
	return err
}

// responseText joins the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response: %w", ErrEmptyResponse)
	}

	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", fmt.Errorf("candidate has no content (finish reason %v): %w", cand.FinishReason, ErrEmptyResponse)
	}

	var sb strings.Builder
	found := false
	for _, part := range cand.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
			found = true
		}
	}
	if !found {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}
