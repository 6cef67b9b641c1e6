package handlers

import (
	"net/http"

	"asha_sphere/internal/logger"
)

func NewRouter(journal *JournalHandler, reflection *ReflectionHandler, corsOrigin string, log logger.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/journal", journal.HandleGetEntries)
	mux.HandleFunc("POST /api/journal", journal.HandleCreateEntry)
	mux.HandleFunc("POST /api/get-response", reflection.HandleGetResponse)
	mux.HandleFunc("GET /healthz", HandleHealth)

	return Chain(mux,
		RequestID(),
		AccessLog(log),
		Recover(log),
		CORS(corsOrigin),
	)
}
