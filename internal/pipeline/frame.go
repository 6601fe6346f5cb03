package pipeline

import (
	"fmt"
	"slices"
	"time"

	"github.com/sandevgo/nutshell/internal/core"
)

// Column names of a post frame.
const (
	ColID           = "id"
	ColAuthor       = "author"
	ColNumber       = "number"
	ColCreatedAt    = "created_at"
	ColCooked       = "cooked"
	ColCleanContent = "clean_content"
)

// DisplayTimeFormat is the fixed created_at display pattern: date and
// time, no sub-second precision, no timezone offset.
const DisplayTimeFormat = "2006-01-02 15:04:05"

// Frame is a tabular view over normalized posts: an ordered column set
// plus one row per post. Operations return new frames; rows are never
// partially updated.
type Frame struct {
	columns []string
	rows    []core.Post
}

// NewFrame builds a frame with one row per raw post and the RawPost
// columns. An empty sequence is a policy error, not a crash.
func NewFrame(posts []core.RawPost) (*Frame, error) {
	if len(posts) == 0 {
		return nil, fmt.Errorf("%w: no posts to normalize", core.ErrEmptyInput)
	}

	rows := make([]core.Post, 0, len(posts))
	for _, p := range posts {
		rows = append(rows, core.Post{
			ID:        p.ID,
			Author:    p.Username,
			Number:    p.PostNumber,
			CreatedAt: p.CreatedAt,
			Cooked:    p.Cooked,
		})
	}

	return &Frame{
		columns: []string{ColID, ColAuthor, ColNumber, ColCreatedAt, ColCooked},
		rows:    rows,
	}, nil
}

func (f *Frame) Len() int { return len(f.rows) }

func (f *Frame) Columns() []string {
	return slices.Clone(f.columns)
}

func (f *Frame) HasColumn(name string) bool {
	return slices.Contains(f.columns, name)
}

// Rows returns a copy of the underlying post records.
func (f *Frame) Rows() []core.Post {
	return slices.Clone(f.rows)
}

// Drop narrows the frame to exactly the kept columns, in the given
// order. Every kept column must exist; no partially-narrowed frame is
// ever returned.
func (f *Frame) Drop(keep ...string) (*Frame, error) {
	for _, col := range keep {
		if !f.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q", core.ErrColumnNotFound, col)
		}
	}

	rows := make([]core.Post, len(f.rows))
	for i, r := range f.rows {
		var narrowed core.Post
		for _, col := range keep {
			switch col {
			case ColID:
				narrowed.ID = r.ID
			case ColAuthor:
				narrowed.Author = r.Author
			case ColNumber:
				narrowed.Number = r.Number
			case ColCreatedAt:
				narrowed.CreatedAt = r.CreatedAt
			case ColCooked:
				narrowed.Cooked = r.Cooked
			case ColCleanContent:
				narrowed.CleanContent = r.CleanContent
			}
		}
		rows[i] = narrowed
	}

	return &Frame{columns: slices.Clone(keep), rows: rows}, nil
}

// FormatCreatedAt rewrites every created_at from ISO-8601 to the fixed
// display format. A single malformed timestamp fails the whole batch.
func (f *Frame) FormatCreatedAt() (*Frame, error) {
	if !f.HasColumn(ColCreatedAt) {
		return nil, fmt.Errorf("%w: %q", core.ErrColumnNotFound, ColCreatedAt)
	}

	rows := slices.Clone(f.rows)
	for i, r := range rows {
		ts, err := time.Parse(time.RFC3339, r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: post %d: %q", core.ErrTimestampParse, r.Number, r.CreatedAt)
		}
		rows[i].CreatedAt = ts.Format(DisplayTimeFormat)
	}

	return &Frame{columns: slices.Clone(f.columns), rows: rows}, nil
}

// Projected converts the frame into the five-key export records. The
// frame must carry all five projection columns.
func (f *Frame) Projected() ([]core.ProjectedPost, error) {
	for _, col := range []string{ColID, ColAuthor, ColNumber, ColCreatedAt, ColCleanContent} {
		if !f.HasColumn(col) {
			return nil, fmt.Errorf("%w: %q", core.ErrColumnNotFound, col)
		}
	}

	out := make([]core.ProjectedPost, 0, len(f.rows))
	for _, r := range f.rows {
		out = append(out, core.ProjectedPost{
			ID:           r.ID,
			Author:       r.Author,
			Number:       r.Number,
			CreatedAt:    r.CreatedAt,
			CleanContent: r.CleanContent,
		})
	}
	return out, nil
}
