package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sandevgo/nutshell/internal/core"
	"github.com/sandevgo/nutshell/pkg/log"
)

// Interactions is the append-only audit log of the query path. Records
// are never updated or deleted.
type Interactions struct {
	db *sql.DB
}

func NewInteractions(db *sql.DB) *Interactions {
	return &Interactions{db: db}
}

// Log appends exactly one interaction record with a fresh id and the
// current timestamp, and returns the id. Storage failures surface as
// core.ErrPersistence.
func (i *Interactions) Log(ctx context.Context, filePath, question, response, model string) (string, error) {
	id := uuid.NewString()
	ts := time.Now().UTC()

	query := `INSERT INTO interactions (interaction_id, timestamp, file_path, question, response, model)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err := i.db.ExecContext(ctx, query, id, ts.Format(time.RFC3339Nano), filePath, question, response, model)
	if err != nil {
		return "", fmt.Errorf("%w: insert interaction: %v", core.ErrPersistence, err)
	}

	log.FromCtx(ctx).Debug().Str("interaction_id", id).Str("model", model).Msg("interaction logged")
	return id, nil
}

// List returns all interactions in insertion order.
func (i *Interactions) List(ctx context.Context) ([]core.Interaction, error) {
	query := `SELECT interaction_id, timestamp, file_path, question, response, model
	          FROM interactions ORDER BY id ASC`

	rows, err := i.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}
	defer rows.Close()

	var out []core.Interaction
	for rows.Next() {
		var rec core.Interaction
		var ts string
		if err := rows.Scan(&rec.ID, &ts, &rec.FilePath, &rec.Question, &rec.Response, &rec.Model); err != nil {
			return nil, fmt.Errorf("failed to scan interaction: %w", err)
		}
		rec.Timestamp, err = time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("failed to parse interaction timestamp %q: %w", ts, err)
		}
		out = append(out, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	log.FromCtx(ctx).Debug().Int("count", len(out)).Msg("loaded interactions")
	return out, nil
}
