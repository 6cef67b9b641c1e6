package usecases

import (
	"context"
	"errors"
	"sync"
	"testing"

	"asha_sphere/internal/logger"
	"asha_sphere/internal/models"

	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	mu      sync.Mutex
	prompts []string
	text    string
	err     error
	panicV  any
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()

	if s.panicV != nil {
		panic(s.panicV)
	}
	return s.text, s.err
}

func (s *stubGenerator) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.prompts)
}

func TestReflectEmptyTranscript(t *testing.T) {
	gen := &stubGenerator{text: "unused"}
	r := NewReflector(gen, logger.Nop())

	got := r.Reflect(context.Background(), "")

	require.True(t, got.Failed())
	require.Equal(t, map[string]string{"error": "No transcript provided"}, got.Body())
	require.Zero(t, gen.calls())
}

func TestReflectSuccess(t *testing.T) {
	gen := &stubGenerator{text: "  You're doing great.\n"}
	r := NewReflector(gen, logger.Nop())

	got := r.Reflect(context.Background(), "I had a hard shift today")

	require.Equal(t, map[string]string{"response": "You're doing great."}, got.Body())
	require.Equal(t, 1, gen.calls())
	require.Equal(t, BuildPrompt("I had a hard shift today"), gen.prompts[0])
}

func TestReflectGeneratorError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	r := NewReflector(gen, logger.Nop())

	got := r.Reflect(context.Background(), "long night")

	require.Equal(t, models.Reflection{Err: "quota exceeded"}, got)
	require.Equal(t, 1, gen.calls())
}

func TestReflectGeneratorPanic(t *testing.T) {
	gen := &stubGenerator{panicV: "malformed response"}
	r := NewReflector(gen, logger.Nop())

	var got models.Reflection
	require.NotPanics(t, func() {
		got = r.Reflect(context.Background(), "long night")
	})
	require.Equal(t, map[string]string{"error": "malformed response"}, got.Body())
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt("tired")
	require.Equal(t, SystemPrompt+"\n\nUser's thoughts: \"tired\"", prompt)
}

func TestPanicError(t *testing.T) {
	base := errors.New("boom")
	require.Same(t, base, panicError(base))
	require.EqualError(t, panicError("text"), "text")
	require.EqualError(t, panicError(42), "42")
}
