package main

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"

	"github.com/lendaria/calculadoria/internal/catalog"
	"github.com/lendaria/calculadoria/internal/pricing"
	"github.com/lendaria/calculadoria/internal/wizard"
)

var errDraftNotFound = errors.New("draft not found")

// loadDraft reads and decodes a wizard draft.
func (s *server) loadDraft(id string) (wizard.Draft, error) {
	var (
		draft        wizard.Draft
		step         int
		configJSON   string
		itemsJSON    string
		personalJSON string
		submittedAt  sql.NullString
	)

	err := s.db.QueryRow(`
		SELECT step, config_json, items_json, personal_json, submitted_at
		FROM drafts
		WHERE id = ?
	`, id).Scan(&step, &configJSON, &itemsJSON, &personalJSON, &submittedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return wizard.Draft{}, errDraftNotFound
	}
	if err != nil {
		return wizard.Draft{}, fmt.Errorf("query draft: %w", err)
	}

	draft.Step = wizard.Step(step)
	if err := json.Unmarshal([]byte(configJSON), &draft.Config); err != nil {
		return wizard.Draft{}, fmt.Errorf("decode draft config: %w", err)
	}
	if err := json.Unmarshal([]byte(itemsJSON), &draft.Items); err != nil {
		return wizard.Draft{}, fmt.Errorf("decode draft items: %w", err)
	}
	if err := json.Unmarshal([]byte(personalJSON), &draft.Personal); err != nil {
		return wizard.Draft{}, fmt.Errorf("decode draft personal data: %w", err)
	}
	if submittedAt.Valid && submittedAt.String != "" {
		if ts, err := time.Parse(time.RFC3339, submittedAt.String); err == nil {
			draft.SubmittedAt = ts
		}
	}

	return draft, nil
}

// saveDraft encodes and upserts a wizard draft.
func (s *server) saveDraft(id string, draft wizard.Draft) error {
	configJSON, err := json.Marshal(draft.Config)
	if err != nil {
		return fmt.Errorf("encode draft config: %w", err)
	}
	itemsJSON, err := json.Marshal(draft.Items)
	if err != nil {
		return fmt.Errorf("encode draft items: %w", err)
	}
	personalJSON, err := json.Marshal(draft.Personal)
	if err != nil {
		return fmt.Errorf("encode draft personal data: %w", err)
	}

	var submittedAt any
	if !draft.SubmittedAt.IsZero() {
		submittedAt = draft.SubmittedAt.Format(time.RFC3339)
	}

	_, err = s.db.Exec(`
		INSERT INTO drafts (id, step, config_json, items_json, personal_json, submitted_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			step = excluded.step,
			config_json = excluded.config_json,
			items_json = excluded.items_json,
			personal_json = excluded.personal_json,
			submitted_at = excluded.submitted_at,
			updated_at = CURRENT_TIMESTAMP
	`, id, int(draft.Step), string(configJSON), string(itemsJSON), string(personalJSON), submittedAt)
	if err != nil {
		return fmt.Errorf("upsert draft: %w", err)
	}

	return nil
}

// insertQuote appends a submitted proposal to the generated-quote log shown
// on /quotes.
func (s *server) insertQuote(draft wizard.Draft, result pricing.Result) error {
	totals := map[string]float64{
		"total":           result.TotalValue,
		"project_total":   result.ProjectTotal,
		"recurring_total": result.RecurringTotal,
	}
	totalsJSON, err := json.Marshal(totals)
	if err != nil {
		return fmt.Errorf("encode quote totals: %w", err)
	}

	title := draft.Personal.AgencyName
	if title == "" {
		title = draft.Personal.Name
	}

	_, err = s.db.Exec(`
		INSERT INTO quotes (created_at, title, service, notes, totals_json)
		VALUES (?, ?, ?, ?, ?)
	`, draft.SubmittedAt.Format("2006-01-02 15:04:05"), title, string(draft.Config.Service), draft.Personal.Email, string(totalsJSON))
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}

	return nil
}

type quoteListItem struct {
	CreatedAt string
	Title     string
	Service   catalog.Service
	Total     float64
}

// listQuotes returns generated quotes, newest first, filtered by a free
// text query over title and notes.
func (s *server) listQuotes(query string) ([]quoteListItem, error) {
	search := "%" + query + "%"
	rows, err := s.db.Query(`
		SELECT
			created_at,
			COALESCE(title, ''),
			service,
			totals_json
		FROM quotes
		WHERE (? = '' OR COALESCE(title, '') LIKE ? OR COALESCE(notes, '') LIKE ?)
		ORDER BY datetime(created_at) DESC, id DESC
	`, query, search, search)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}
	defer rows.Close()

	quotes := make([]quoteListItem, 0)
	for rows.Next() {
		var item quoteListItem
		var service string
		var totalsJSON string
		if err := rows.Scan(&item.CreatedAt, &item.Title, &service, &totalsJSON); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		item.Service = catalog.Service(service)
		item.Total = extractTotalFromJSON(totalsJSON)
		quotes = append(quotes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}

	return quotes, nil
}

func extractTotalFromJSON(totalsJSON string) float64 {
	var values map[string]float64
	if err := json.Unmarshal([]byte(totalsJSON), &values); err != nil {
		return 0
	}

	for _, key := range []string{"total", "grand_total", "final_total"} {
		if total, ok := values[key]; ok {
			return total
		}
	}

	return 0
}
