package pipeline

import (
	"fmt"
	"html"
	"regexp"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sandevgo/nutshell/internal/core"
)

var (
	// Block-level closings and line breaks become newlines before tag
	// stripping, so paragraph structure survives.
	reBlockBreak = regexp.MustCompile(`(?i)<br\s*/?>|</(p|div|blockquote|aside|li|ul|ol|h[1-6]|pre|tr)>`)
	reQuoteTag   = regexp.MustCompile(`\[/?quote[^\]]*\]`)
	// Discourse renders @name directives as anchor elements; bare
	// @tokens in text (emails included) are not mentions.
	reMentionLink = regexp.MustCompile(`(?is)<a\b[^>]*\bclass="mention[^"]*"[^>]*>.*?</a>`)
	reSpaces      = regexp.MustCompile(`[ \t]+`)
	reNewlines    = regexp.MustCompile(`[ \t]*\n[\s]*`)

	stripPolicy = bluemonday.StrictPolicy()
)

// CleanContent strips markup from one post's cooked content, producing
// plain readable text. Deterministic and idempotent; best-effort token
// stripping, not a general sanitizer.
//
// Entities are unescaped before tag stripping, so escaped markup in the
// source is treated as markup rather than surviving one pass and being
// stripped on the next. Sanitize re-escapes the text it keeps; the
// second unescape undoes that, returning the string to a fixed point.
func CleanContent(cooked string) string {
	text := html.UnescapeString(cooked)
	text = reMentionLink.ReplaceAllString(text, "")
	text = reBlockBreak.ReplaceAllString(text, "\n")
	text = stripPolicy.Sanitize(text)
	text = html.UnescapeString(text)
	text = reQuoteTag.ReplaceAllString(text, "")
	text = reSpaces.ReplaceAllString(text, " ")
	text = reNewlines.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text)
}

// CleanCooked derives the clean_content column from cooked, row by row.
// The input frame is left untouched.
func (f *Frame) CleanCooked() (*Frame, error) {
	if !f.HasColumn(ColCooked) {
		return nil, fmt.Errorf("%w: %q", core.ErrColumnNotFound, ColCooked)
	}

	rows := slices.Clone(f.rows)
	for i, r := range rows {
		rows[i].CleanContent = CleanContent(r.Cooked)
	}

	columns := slices.Clone(f.columns)
	if !slices.Contains(columns, ColCleanContent) {
		columns = append(columns, ColCleanContent)
	}

	return &Frame{columns: columns, rows: rows}, nil
}
