package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"asha_sphere/internal/logger"
	"asha_sphere/internal/models"
)

type Reflector interface {
	Reflect(ctx context.Context, transcript string) models.Reflection
}

type ReflectionHandler struct {
	reflector Reflector
	logger    logger.Logger
}

func NewReflectionHandler(reflector Reflector, log logger.Logger) *ReflectionHandler {
	return &ReflectionHandler{reflector: reflector, logger: log}
}

// HandleGetResponse always answers 200 once the body parses; callers look for
// the "error" key.
func (rh *ReflectionHandler) HandleGetResponse(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/reflection.go HandleGetResponse"
	log := requestLogger(r, rh.logger)

	var req models.ReflectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnf("%s: decode error: %v", op, err)
		writeJSON(w, log, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	transcript := ""
	if req.Transcript != nil {
		transcript = *req.Transcript
	}

	reflection := rh.reflector.Reflect(r.Context(), transcript)
	writeJSON(w, log, http.StatusOK, reflection.Body())
}
