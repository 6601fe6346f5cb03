// Package query answers a question over an extracted text file through
// a hosted model, audit-logging every attempt.
package query

import (
	"context"
	"fmt"
	"os"

	"github.com/sandevgo/nutshell/internal/core"
	"github.com/sandevgo/nutshell/pkg/log"
)

const systemPrompt = "You answer questions about a forum discussion thread. " +
	"Use only the provided thread content; say so when the thread does not contain the answer."

// contextTokenWarn is the size past which most hosted models start
// truncating or refusing.
const contextTokenWarn = 200_000

type Service struct {
	provider core.AIProvider
	audit    core.InteractionLog
}

func NewService(provider core.AIProvider, audit core.InteractionLog) *Service {
	return &Service{provider: provider, audit: audit}
}

// AskFile reads the context file, asks the configured model, and appends
// exactly one audit record for the attempt, successful or not. The file
// read fails before any model call.
func (s *Service) AskFile(ctx context.Context, filePath, question string) (core.Interaction, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return core.Interaction{}, fmt.Errorf("read context file: %w", err)
	}

	logger := log.FromCtx(ctx)
	tokens := EstimateTokens(string(data))
	logger.Debug().Int("context_tokens", tokens).Str("file", filePath).Msg("context loaded")
	if tokens > contextTokenWarn {
		logger.Warn().Int("context_tokens", tokens).Msg("context likely exceeds the model window")
	}

	prompt := fmt.Sprintf("Thread content of %s:\n\n%s\n\nQuestion: %s", filePath, data, question)
	answer, askErr := s.provider.Ask(ctx, []core.Message{
		{Role: core.RoleSystem, Content: systemPrompt},
		{Role: core.RoleUser, Content: prompt},
	})

	response := answer.Content
	if askErr != nil {
		response = "ERROR: " + askErr.Error()
	}

	id, logErr := s.audit.Log(ctx, filePath, question, response, s.provider.ModelID())
	if askErr != nil {
		return core.Interaction{}, fmt.Errorf("model call failed: %w", askErr)
	}
	if logErr != nil {
		return core.Interaction{}, logErr
	}

	return core.Interaction{
		ID:       id,
		FilePath: filePath,
		Question: question,
		Response: response,
		Model:    s.provider.ModelID(),
	}, nil
}
