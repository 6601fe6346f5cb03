package pipeline

import (
	"errors"
	"strings"
	"testing"

	"github.com/sandevgo/nutshell/internal/core"
)

func samplePosts() []core.RawPost {
	return []core.RawPost{
		{ID: 101, Username: "alice", PostNumber: 1, CreatedAt: "2024-01-15T10:30:00Z", Cooked: "<p>first</p>"},
		{ID: 102, Username: "bob", PostNumber: 2, CreatedAt: "2024-01-15T11:00:00Z", Cooked: "<p>second</p>"},
		{ID: 103, Username: "carol", PostNumber: 3, CreatedAt: "2024-01-16T09:15:00Z", Cooked: "<p>third</p>"},
	}
}

func TestDecodeTopic(t *testing.T) {
	t.Parallel()
	payload := `{"title":"a topic","post_stream":{"posts":[{"id":1,"username":"alice","post_number":1,"created_at":"2024-01-15T10:30:00Z","cooked":"<p>hi</p>"}]},"unrelated":true}`

	topic, err := DecodeTopic(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if topic.PostStream == nil || len(topic.PostStream.Posts) != 1 {
		t.Fatalf("post stream not decoded: %+v", topic)
	}
	if topic.PostStream.Posts[0].Username != "alice" {
		t.Errorf("username = %q, want alice", topic.PostStream.Posts[0].Username)
	}
}

func TestDecodeTopic_InvalidJSON(t *testing.T) {
	t.Parallel()
	if _, err := DecodeTopic(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestExtractPosts_PreservesOrder(t *testing.T) {
	t.Parallel()
	topic := core.RawTopic{PostStream: &core.PostStream{Posts: samplePosts()}}

	posts, err := ExtractPosts(topic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("len = %d, want 3", len(posts))
	}
	for i, p := range posts {
		if p.PostNumber != i+1 {
			t.Errorf("posts[%d].PostNumber = %d, want %d", i, p.PostNumber, i+1)
		}
	}
}

func TestExtractPosts_MissingPostStream(t *testing.T) {
	t.Parallel()
	_, err := ExtractPosts(core.RawTopic{})
	if !errors.Is(err, core.ErrMissingField) {
		t.Fatalf("err = %v, want ErrMissingField", err)
	}
}

func TestExtractPosts_MissingPosts(t *testing.T) {
	t.Parallel()
	_, err := ExtractPosts(core.RawTopic{PostStream: &core.PostStream{}})
	if !errors.Is(err, core.ErrMissingField) {
		t.Fatalf("err = %v, want ErrMissingField", err)
	}
}

func TestNewFrame_OneRowPerPost(t *testing.T) {
	t.Parallel()
	frame, err := NewFrame(samplePosts())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.Len() != 3 {
		t.Fatalf("rows = %d, want 3", frame.Len())
	}

	rows := frame.Rows()
	prev := 0
	for _, r := range rows {
		if r.Number <= prev {
			t.Errorf("number %d not strictly increasing after %d", r.Number, prev)
		}
		prev = r.Number
	}
	if rows[0].Author != "alice" || rows[0].ID != 101 {
		t.Errorf("first row not normalized: %+v", rows[0])
	}
}

func TestNewFrame_Empty(t *testing.T) {
	t.Parallel()
	_, err := NewFrame(nil)
	if !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}

	_, err = NewFrame([]core.RawPost{})
	if !errors.Is(err, core.ErrEmptyInput) {
		t.Fatalf("err = %v, want ErrEmptyInput", err)
	}
}
