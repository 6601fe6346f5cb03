// Package pipeline turns a raw Discourse topic payload into a flat,
// queryable collection of post records: extract, clean, project.
package pipeline

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sandevgo/nutshell/internal/core"
)

// DecodeTopic reads a raw topic payload. Unknown fields are ignored;
// shape validation happens in ExtractPosts.
func DecodeTopic(r io.Reader) (core.RawTopic, error) {
	var topic core.RawTopic
	if err := json.NewDecoder(r).Decode(&topic); err != nil {
		return core.RawTopic{}, fmt.Errorf("decode topic payload: %w", err)
	}
	return topic, nil
}

// ExtractPosts pulls the ordered post sequence out of the payload.
// Payload order is the upstream API's ordering guarantee and is
// preserved as-is, never recomputed.
func ExtractPosts(topic core.RawTopic) ([]core.RawPost, error) {
	if topic.PostStream == nil {
		return nil, fmt.Errorf("%w: post_stream", core.ErrMissingField)
	}
	if topic.PostStream.Posts == nil {
		return nil, fmt.Errorf("%w: post_stream.posts", core.ErrMissingField)
	}
	return topic.PostStream.Posts, nil
}
