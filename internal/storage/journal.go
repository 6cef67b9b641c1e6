package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"asha_sphere/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// JournalStorage is the Postgres flavour of the journal. Insertion order is
// kept by the seq column.
type JournalStorage struct {
	pool *pgxpool.Pool
}

func NewJournalStorage(pool *pgxpool.Pool) *JournalStorage {
	return &JournalStorage{
		pool: pool,
	}
}

func (db_js *JournalStorage) EnsureSchema(ctx context.Context) error {
	op := "internal/storage/journal.go EnsureSchema"

	sql_query := `
	CREATE TABLE IF NOT EXISTS journal_entries (
		seq        BIGSERIAL PRIMARY KEY,
		id         TEXT NOT NULL,
		"date"     TEXT NOT NULL,
		"time"     TEXT NOT NULL,
		transcript TEXT NOT NULL,
		response   TEXT NOT NULL,
		sentiment  TEXT NOT NULL,
		mood       INTEGER NOT NULL,
		feedback   JSONB
	);
	`

	if _, err := db_js.pool.Exec(ctx, sql_query); err != nil {
		return fmt.Errorf("Failure to create journal table in %s: %w", op, err)
	}
	return nil
}

func (db_js *JournalStorage) SaveEntry(ctx context.Context, entry *models.JournalEntry) error {
	op := "internal/storage/journal.go SaveEntry"

	if entry == nil {
		return fmt.Errorf("%s: nil entry", op)
	}

	// nil stays SQL NULL
	var feedbackJSON []byte
	if entry.Feedback != nil {
		var err error
		feedbackJSON, err = json.Marshal(entry.Feedback)
		if err != nil {
			return fmt.Errorf("%s: failed to marshal feedback: %w", op, err)
		}
	}

	sql_query := `
	INSERT INTO journal_entries
	(id, "date", "time", transcript, response, sentiment, mood, feedback)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := db_js.pool.Exec(
		ctx,
		sql_query,
		entry.ID,
		entry.Date,
		entry.Time,
		entry.Transcript,
		entry.Response,
		entry.Sentiment,
		entry.Mood,
		feedbackJSON,
	)

	if err != nil {
		return fmt.Errorf("Failure to create entry in %s: %w", op, err)
	}

	return nil
}

func (db_js *JournalStorage) ListEntries(ctx context.Context) ([]models.JournalEntry, error) {
	op := "internal/storage/journal.go ListEntries"

	sql_query := `
	SELECT id, "date", "time", transcript, response, sentiment, mood, feedback
	FROM journal_entries
	ORDER BY seq DESC;
	`

	rows, err := db_js.pool.Query(ctx, sql_query)

	if err != nil {
		return nil, fmt.Errorf("Failure to get entries in %s: %w", op, err)
	}
	defer rows.Close()
	entries := []models.JournalEntry{}

	for rows.Next() {
		entry := models.JournalEntry{}
		var feedbackJSON []byte

		err := rows.Scan(
			&entry.ID,
			&entry.Date,
			&entry.Time,
			&entry.Transcript,
			&entry.Response,
			&entry.Sentiment,
			&entry.Mood,
			&feedbackJSON,
		)

		if err != nil {
			return nil, fmt.Errorf("Failure to Scan entries in %s: %w", op, err)
		}

		if len(feedbackJSON) > 0 && string(feedbackJSON) != "null" {
			if err := json.Unmarshal(feedbackJSON, &entry.Feedback); err != nil {
				return nil, fmt.Errorf("%s: failed to unmarshal feedback: %w", op, err)
			}
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failure to read entries in %s: %w", op, err)
	}

	return entries, nil
}
