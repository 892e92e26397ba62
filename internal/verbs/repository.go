package verbs

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/okabe/verbbook/internal/database"
)

//go:generate mockgen -destination=../mocks/verbs/repository.go -package=mock_verbs github.com/okabe/verbbook/internal/verbs Repository

// Repository defines operations for managing verb entries.
type Repository interface {
	// Search returns the matching rows and the total count of all rows
	// matching the same filter, ignoring the page window.
	Search(ctx context.Context, query SearchQuery) ([]Entry, int64, error)
	// BatchInsert inserts the given entries in one transaction and
	// returns the number of statements submitted. Entries without a
	// base word are dropped.
	BatchInsert(ctx context.Context, entries []Entry, mode InsertMode) (int, error)
	Update(ctx context.Context, entry Entry) error
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context, ids []int64) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// buildFilter returns the WHERE clause shared by the data and count
// queries for a search, with its bind arguments.
func buildFilter(text string, mode MatchMode) (string, []any) {
	if text == "" {
		return "", nil
	}
	if mode == MatchExact {
		return " WHERE LOWER(base_word) = LOWER(?)", []any{text}
	}
	pattern := "%" + text + "%"
	return " WHERE base_word LIKE ? OR definition LIKE ?", []any{pattern, pattern}
}

type countResult struct {
	total int64
	err   error
}

// Search runs the windowed data query and the unwindowed count query
// concurrently. Both share the same filter, so total always reflects
// the full filtered set even when data covers a single page.
func (r *DBRepository) Search(ctx context.Context, query SearchQuery) ([]Entry, int64, error) {
	where, filterArgs := buildFilter(query.Text, query.Mode)

	countCh := make(chan countResult, 1)
	go func() {
		var total int64
		err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM verbs"+where, filterArgs...)
		countCh <- countResult{total: total, err: err}
	}()

	dataQuery := "SELECT * FROM verbs" + where + " ORDER BY base_word ASC"
	dataArgs := filterArgs
	if !query.Unlimited {
		dataQuery += " LIMIT ? OFFSET ?"
		dataArgs = append(append([]any{}, filterArgs...), query.Limit, query.Offset)
	}

	entries := []Entry{}
	dataErr := r.db.SelectContext(ctx, &entries, dataQuery, dataArgs...)

	count := <-countCh
	if dataErr != nil {
		return nil, 0, fmt.Errorf("search verbs: %w", dataErr)
	}
	if count.err != nil {
		return nil, 0, fmt.Errorf("count verbs: %w", count.err)
	}
	return entries, count.total, nil
}

// BatchInsert runs one insert per valid entry inside a single
// transaction, so the batch applies all-or-nothing. The returned count
// is the number of statements submitted, not rows changed; rows
// ignored by InsertSkip conflict resolution still count.
func (r *DBRepository) BatchInsert(ctx context.Context, entries []Entry, mode InsertMode) (int, error) {
	valid := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.BaseWord == "" {
			continue
		}
		valid = append(valid, e)
	}
	if len(valid) == 0 {
		return 0, nil
	}

	verb := "INSERT IGNORE INTO"
	if mode == InsertOverwrite {
		verb = "REPLACE INTO"
	}
	query := verb + " verbs (base_word, past_tense, past_participle, definition, note) VALUES (?, ?, ?, ?, ?)"

	err := database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		for _, e := range valid {
			if _, err := tx.ExecContext(ctx, query, e.BaseWord, e.PastTense, e.PastParticiple, e.Definition, e.Note); err != nil {
				return fmt.Errorf("insert verb %q: %w", e.BaseWord, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(valid), nil
}

// Update overwrites the full row for the entry's ID. Updating a
// nonexistent ID affects zero rows and is not an error.
func (r *DBRepository) Update(ctx context.Context, entry Entry) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE verbs SET base_word = ?, past_tense = ?, past_participle = ?, definition = ?, note = ? WHERE id = ?",
		entry.BaseWord, entry.PastTense, entry.PastParticiple, entry.Definition, entry.Note, entry.ID)
	if err != nil {
		return fmt.Errorf("update verb %d: %w", entry.ID, err)
	}
	return nil
}

// Delete removes the row with the given ID, if any.
func (r *DBRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM verbs WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete verb %d: %w", id, err)
	}
	return nil
}

// DeleteAll removes all rows matching the given IDs in one statement.
func (r *DBRepository) DeleteAll(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	query, args, err := sqlx.In("DELETE FROM verbs WHERE id IN (?)", ids)
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("delete verbs: %w", err)
	}
	return nil
}
