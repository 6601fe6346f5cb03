package pipeline

import (
	"errors"
	"testing"

	"github.com/sandevgo/nutshell/internal/core"
)

func cleanedFrame(t *testing.T) *Frame {
	t.Helper()
	frame, err := NewFrame(samplePosts())
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}
	frame, err = frame.CleanCooked()
	if err != nil {
		t.Fatalf("CleanCooked: %v", err)
	}
	return frame
}

func TestDrop_KeepsRequestedColumns(t *testing.T) {
	t.Parallel()
	frame := cleanedFrame(t)

	narrowed, err := frame.Drop(ColID, ColAuthor, ColNumber, ColCreatedAt, ColCleanContent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cols := narrowed.Columns()
	if len(cols) != 5 {
		t.Fatalf("columns = %v, want 5", cols)
	}
	if narrowed.HasColumn(ColCooked) {
		t.Error("cooked column should be dropped")
	}

	rows := narrowed.Rows()
	if rows[0].Cooked != "" {
		t.Errorf("cooked value leaked into narrowed frame: %q", rows[0].Cooked)
	}
	if rows[0].CleanContent == "" {
		t.Error("clean_content lost during projection")
	}
}

func TestDrop_MissingColumn(t *testing.T) {
	t.Parallel()
	frame, err := NewFrame(samplePosts())
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	// clean_content does not exist before CleanCooked runs
	_, err = frame.Drop(ColID, ColCleanContent)
	if !errors.Is(err, core.ErrColumnNotFound) {
		t.Fatalf("err = %v, want ErrColumnNotFound", err)
	}
}

func TestFormatCreatedAt(t *testing.T) {
	t.Parallel()
	frame, err := NewFrame([]core.RawPost{
		{ID: 1, Username: "alice", PostNumber: 1, CreatedAt: "2024-01-15T10:30:00Z", Cooked: "x"},
	})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	formatted, err := frame.FormatCreatedAt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := formatted.Rows()[0].CreatedAt; got != "2024-01-15 10:30:00" {
		t.Errorf("created_at = %q, want %q", got, "2024-01-15 10:30:00")
	}

	// Original frame untouched
	if got := frame.Rows()[0].CreatedAt; got != "2024-01-15T10:30:00Z" {
		t.Errorf("source frame mutated: %q", got)
	}
}

func TestFormatCreatedAt_SubsecondAndOffset(t *testing.T) {
	t.Parallel()
	frame, err := NewFrame([]core.RawPost{
		{ID: 1, Username: "a", PostNumber: 1, CreatedAt: "2024-06-01T08:05:09.123Z", Cooked: "x"},
	})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	formatted, err := frame.FormatCreatedAt()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := formatted.Rows()[0].CreatedAt; got != "2024-06-01 08:05:09" {
		t.Errorf("created_at = %q, want sub-second precision dropped", got)
	}
}

func TestFormatCreatedAt_Malformed(t *testing.T) {
	t.Parallel()
	frame, err := NewFrame([]core.RawPost{
		{ID: 1, Username: "a", PostNumber: 1, CreatedAt: "2024-01-15T10:30:00Z", Cooked: "x"},
		{ID: 2, Username: "b", PostNumber: 2, CreatedAt: "not-a-date", Cooked: "y"},
	})
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	// One bad row fails the whole batch
	_, err = frame.FormatCreatedAt()
	if !errors.Is(err, core.ErrTimestampParse) {
		t.Fatalf("err = %v, want ErrTimestampParse", err)
	}
}

func TestProjected_RequiresCleanContent(t *testing.T) {
	t.Parallel()
	frame, err := NewFrame(samplePosts())
	if err != nil {
		t.Fatalf("NewFrame: %v", err)
	}

	if _, err := frame.Projected(); !errors.Is(err, core.ErrColumnNotFound) {
		t.Fatalf("err = %v, want ErrColumnNotFound before cleaning", err)
	}

	cleaned, err := frame.CleanCooked()
	if err != nil {
		t.Fatalf("CleanCooked: %v", err)
	}
	records, err := cleaned.Projected()
	if err != nil {
		t.Fatalf("Projected: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}
	if records[2].Author != "carol" || records[2].Number != 3 {
		t.Errorf("projection order broken: %+v", records[2])
	}
}
