package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"asha_sphere/internal/logger"
	"asha_sphere/internal/models"
	"asha_sphere/internal/storage"
)

type JournalHandler struct {
	storage storage.JournalRepository
	logger  logger.Logger
}

func NewJournalHandler(s storage.JournalRepository, log logger.Logger) *JournalHandler {
	return &JournalHandler{storage: s, logger: log}
}

// journalEntryRequest mirrors models.JournalEntry with pointers so absent
// fields can be told apart from zero values.
type journalEntryRequest struct {
	ID         *string        `json:"id"`
	Date       *string        `json:"date"`
	Time       *string        `json:"time"`
	Transcript *string        `json:"transcript"`
	Response   *string        `json:"response"`
	Sentiment  *string        `json:"sentiment"`
	Mood       *json.Number   `json:"mood"`
	Feedback   map[string]any `json:"feedback"`
}

func (req *journalEntryRequest) entry() (*models.JournalEntry, error) {
	var missing []string
	str := func(name string, v *string) string {
		if v == nil {
			missing = append(missing, name)
			return ""
		}
		return *v
	}

	entry := &models.JournalEntry{
		ID:         str("id", req.ID),
		Date:       str("date", req.Date),
		Time:       str("time", req.Time),
		Transcript: str("transcript", req.Transcript),
		Response:   str("response", req.Response),
		Sentiment:  str("sentiment", req.Sentiment),
		Feedback:   req.Feedback,
	}
	if req.Mood == nil {
		missing = append(missing, "mood")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	mood, err := intValue(*req.Mood)
	if err != nil {
		return nil, fmt.Errorf("mood: %w", err)
	}
	entry.Mood = mood
	return entry, nil
}

// intValue accepts integers and floats with no fractional part, so 4 and 4.0
// both give 4.
func intValue(n json.Number) (int, error) {
	if i, err := n.Int64(); err == nil {
		return int(i), nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", n.String())
	}
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%s is not a valid integer", n.String())
	}
	return int(f), nil
}

func (jh *JournalHandler) HandleCreateEntry(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleCreateEntry"
	log := requestLogger(r, jh.logger)

	var req journalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warnf("%s: couldnt decode json: %v", op, err)
		writeJSON(w, log, http.StatusUnprocessableEntity, map[string]string{"error": "invalid journal entry: " + err.Error()})
		return
	}

	entry, err := req.entry()
	if err != nil {
		log.Warnf("%s: %v", op, err)
		writeJSON(w, log, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	if err := jh.storage.SaveEntry(r.Context(), entry); err != nil {
		log.Errorf("%s: couldnt save entry %q: %v", op, entry.ID, err)
		writeJSON(w, log, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}

	log.Infof("%s: saved entry %q", op, entry.ID)
	writeJSON(w, log, http.StatusOK, map[string]string{
		"message": "Entry saved successfully",
	})
}

func (jh *JournalHandler) HandleGetEntries(w http.ResponseWriter, r *http.Request) {
	op := "internal/handlers/journal.go HandleGetEntries"
	log := requestLogger(r, jh.logger)

	entries, err := jh.storage.ListEntries(r.Context())
	if err != nil {
		log.Errorf("%s: couldnt get entries: %v", op, err)
		writeJSON(w, log, http.StatusInternalServerError, map[string]string{"error": "internal server error"})
		return
	}
	if entries == nil {
		entries = []models.JournalEntry{}
	}

	writeJSON(w, log, http.StatusOK, entries)
}
