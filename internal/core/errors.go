package core

import "errors"

// Typed failure modes of the extraction pipeline and the logger.
// Callers match with errors.Is; none of these are recovered internally.
var (
	// ErrMissingField: the payload lacks the nested post_stream.posts sequence.
	ErrMissingField = errors.New("missing required field")

	// ErrEmptyInput: the posts sequence is present but empty.
	ErrEmptyInput = errors.New("empty input")

	// ErrColumnNotFound: a projection asked for a column the frame lacks.
	ErrColumnNotFound = errors.New("column not found")

	// ErrTimestampParse: a created_at value is not a valid ISO-8601 timestamp.
	ErrTimestampParse = errors.New("timestamp parse failed")

	// ErrDirectoryCreation: the per-post output directory could not be created.
	ErrDirectoryCreation = errors.New("directory creation failed")

	// ErrPersistence: the interaction log append failed at the storage layer.
	ErrPersistence = errors.New("persistence failure")
)
