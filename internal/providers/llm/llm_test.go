package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sandevgo/nutshell/internal/config"
	"github.com/sandevgo/nutshell/internal/core"
)

func TestOpenAICompatible_Ask(t *testing.T) {
	t.Parallel()

	var gotBody map[string]any
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"42"}}]}`))
	}))
	defer srv.Close()

	p := NewOpenAICompatible(OpenAICompatibleConfig{
		BaseURL:    srv.URL,
		APIKey:     "sk-test",
		Model:      "test-model",
		AuthHeader: "Authorization",
		AuthPrefix: "Bearer ",
	})

	msg, err := p.Ask(context.Background(), []core.Message{
		{Role: core.RoleUser, Content: "what is the answer?"},
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if msg.Content != "42" {
		t.Errorf("content = %q, want 42", msg.Content)
	}
	if gotAuth != "Bearer sk-test" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotBody["model"] != "test-model" {
		t.Errorf("model = %v", gotBody["model"])
	}
}

func TestOpenAICompatible_Ask_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	p := NewOpenAICompatible(OpenAICompatibleConfig{BaseURL: srv.URL, Model: "m"})
	if _, err := p.Ask(context.Background(), []core.Message{{Role: core.RoleUser, Content: "q"}}); err == nil {
		t.Fatal("expected error for HTTP 429")
	}
}

func TestGemini_Ask(t *testing.T) {
	t.Parallel()

	var gotPath, gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"the "},{"text":"answer"}]}}]}`))
	}))
	defer srv.Close()

	g := NewGemini("gm-key", "gemini-2.5-flash")
	g.baseURL = srv.URL

	msg, err := g.Ask(context.Background(), []core.Message{
		{Role: core.RoleSystem, Content: "be brief"},
		{Role: core.RoleUser, Content: "question"},
	})
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if msg.Content != "the answer" {
		t.Errorf("content = %q", msg.Content)
	}
	if gotPath != "/v1beta/models/gemini-2.5-flash:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	if gotKey != "gm-key" {
		t.Errorf("api key header = %q", gotKey)
	}
	if _, ok := gotBody["system_instruction"]; !ok {
		t.Error("system_instruction missing from payload")
	}
}

func TestNewProvider(t *testing.T) {
	t.Parallel()

	cfg := &config.LLMConfig{Provider: "gemini", Model: "gemini-2.5-flash"}
	p, err := NewProvider(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewProvider: %v", err)
	}
	if p.ModelID() != "gemini-2.5-flash" {
		t.Errorf("model id = %q", p.ModelID())
	}

	cfg.Provider = "does-not-exist"
	if _, err := NewProvider(context.Background(), cfg); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
