package core

import (
	"context"
	"time"
)

const (
	AppName       = "nutshell"
	UserAgent     = "nutshell/0.1"
	RepositoryURL = "https://github.com/sandevgo/nutshell"
	Version       = "0.1.0"
)

// RawTopic is the payload returned by the Discourse topic endpoint.
// Only the fields the pipeline reads are declared; the rest of the
// payload is ignored on decode.
type RawTopic struct {
	Title      string      `json:"title,omitempty"`
	PostStream *PostStream `json:"post_stream"`
}

type PostStream struct {
	Posts []RawPost `json:"posts"`
}

// RawPost is one element of post_stream.posts, as delivered by the API.
type RawPost struct {
	ID         int    `json:"id"`
	Username   string `json:"username"`
	PostNumber int    `json:"post_number"`
	CreatedAt  string `json:"created_at"`
	Cooked     string `json:"cooked"`
}

// Post is the canonical normalized record. Built once by the extractor,
// immutable afterwards.
type Post struct {
	ID           int    `json:"id"`
	Author       string `json:"author"`
	Number       int    `json:"number"`
	CreatedAt    string `json:"created_at"`
	Cooked       string `json:"cooked,omitempty"`
	CleanContent string `json:"clean_content"`
}

// ProjectedPost is the five-key export shape consumed by the emitters
// and the card viewer. Field order fixes the JSON key order.
type ProjectedPost struct {
	ID           int    `json:"id"`
	Author       string `json:"author"`
	Number       int    `json:"number"`
	CreatedAt    string `json:"created_at"`
	CleanContent string `json:"clean_content"`
}

// Interaction is one audit entry in the append-only query log.
type Interaction struct {
	ID        string    `json:"interaction_id"`
	Timestamp time.Time `json:"timestamp"`
	FilePath  string    `json:"file_path"`
	Question  string    `json:"question"`
	Response  string    `json:"response"`
	Model     string    `json:"model"`
}

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AIProvider is a hosted model that can answer a single prompt.
type AIProvider interface {
	Ask(ctx context.Context, messages []Message) (Message, error)
	ModelID() string
}

// InteractionLog is the append-only audit store for the query path.
type InteractionLog interface {
	Log(ctx context.Context, filePath, question, response, model string) (string, error)
	List(ctx context.Context) ([]Interaction, error)
}
