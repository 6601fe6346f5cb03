// Package export serializes projected post records: a delimited text
// file, a JSON array, and a directory of per-post files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sandevgo/nutshell/internal/core"
)

// Delimiter separates post blocks in the text export.
var Delimiter = strings.Repeat("=", 80)

// FormatBlock renders one post as a text block: number, author,
// created_at, then the clean content.
func FormatBlock(p core.ProjectedPost) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Post #%d | %s | %s\n\n", p.Number, p.Author, p.CreatedAt)
	b.WriteString(p.CleanContent)
	b.WriteString("\n")
	return b.String()
}

// WritePostsTxt writes all posts as delimiter-separated blocks,
// overwriting the destination.
func WritePostsTxt(posts []core.ProjectedPost, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := writePostsTxt(posts, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func writePostsTxt(posts []core.ProjectedPost, w io.Writer) error {
	for _, p := range posts {
		if _, err := io.WriteString(w, FormatBlock(p)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, Delimiter+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// WritePostsJSON writes the posts as a UTF-8 JSON array with the key
// order id, author, number, created_at, clean_content, overwriting the
// destination.
func WritePostsJSON(posts []core.ProjectedPost, path string) error {
	data, err := json.MarshalIndent(posts, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal posts: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadPostsJSON reads back a WritePostsJSON file; the card viewer's
// loader and the round-trip counterpart of the writer.
func ReadPostsJSON(path string) ([]core.ProjectedPost, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var posts []core.ProjectedPost
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return posts, nil
}

// WritePostFiles writes one file per post (post_<number>.txt) into dir,
// creating it if absent.
func WritePostFiles(posts []core.ProjectedPost, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrDirectoryCreation, dir, err)
	}

	for _, p := range posts {
		path := filepath.Join(dir, fmt.Sprintf("post_%d.txt", p.Number))
		if err := os.WriteFile(path, []byte(FormatBlock(p)), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
