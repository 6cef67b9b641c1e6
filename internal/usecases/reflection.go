package usecases

import (
	"context"
	"errors"
	"strings"

	"asha_sphere/internal/logger"
	"asha_sphere/internal/models"
)

const SystemPrompt = "You are ASHA-Sphere, a compassionate AI companion for healthcare workers. " +
	"Your role is to listen to their spoken thoughts and provide a short, empathetic, and encouraging response in 2-3 sentences. " +
	"Acknowledge their feelings and offer gentle encouragement. Do not give medical advice."

var ErrNoTranscript = errors.New("No transcript provided")

// Generator turns a prompt into model text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Reflector struct {
	gen    Generator
	logger logger.Logger
}

func NewReflector(gen Generator, log logger.Logger) *Reflector {
	return &Reflector{gen: gen, logger: log}
}

func BuildPrompt(transcript string) string {
	return SystemPrompt + "\n\nUser's thoughts: \"" + transcript + "\""
}

// Reflect asks the generator once for a reply to transcript. Failures come
// back inside the Reflection, never as an error or panic.
func (r *Reflector) Reflect(ctx context.Context, transcript string) models.Reflection {
	op := "internal/usecases/reflection.go Reflect"

	if transcript == "" {
		return models.Reflection{Err: ErrNoTranscript.Error()}
	}

	text, err := r.generate(ctx, BuildPrompt(transcript))
	if err != nil {
		r.logger.Errorf("%s: AI error: %v", op, err)
		return models.Reflection{Err: err.Error()}
	}

	return models.Reflection{Text: strings.TrimSpace(text)}
}

func (r *Reflector) generate(ctx context.Context, prompt string) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = panicError(p)
		}
	}()
	return r.gen.Generate(ctx, prompt)
}
