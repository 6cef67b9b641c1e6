package ai

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"
)

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{
				genai.Text("You're doing "),
				genai.Blob{MIMEType: "image/png"},
				genai.Text("great."),
			}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}

	text, err := responseText(resp)
	require.NoError(t, err)
	require.Equal(t, "You're doing great.", text)
}

func TestResponseTextEmpty(t *testing.T) {
	tests := map[string]*genai.GenerateContentResponse{
		"nil":           nil,
		"no candidates": {},
		"no content":    {Candidates: []*genai.Candidate{{FinishReason: genai.FinishReasonSafety}}},
		"no text parts": {Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{}}}}}},
	}

	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := responseText(resp)
			require.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestNewGeminiClientDefaultModel(t *testing.T) {
	gc := NewGeminiClient("", "")
	require.Equal(t, DefaultModel, gc.modelName)
	require.NoError(t, gc.Close())
}

func TestGenerateWithoutKeyFailsPerRequest(t *testing.T) {
	gc := NewGeminiClient("", "")

	for i := 0; i < 2; i++ {
		text, err := gc.Generate(context.Background(), "hi")
		require.Error(t, err)
		require.Contains(t, err.Error(), "gemini client create failed")
		require.Empty(t, text)

		// nothing cached, the next request tries again
		require.Nil(t, gc.client)
		require.Nil(t, gc.model)
	}

	require.NoError(t, gc.Close())
}
