package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
)

// Completer sends one system+user exchange to a chat model and returns the
// assistant reply. Tests substitute a fake.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Settings configures the OpenAI-compatible endpoint.
type Settings struct {
	Model   string
	APIKey  string
	BaseURL string
}

// OpenAICompleter implements Completer using the openai-go SDK (chat completions).
type OpenAICompleter struct {
	Model string
	Opts  []option.RequestOption
}

// NewOpenAICompleter validates s. Missing credentials yield
// internalerr.ErrProducerUnavailable so callers can skip registration.
func NewOpenAICompleter(s Settings, extra ...option.RequestOption) (*OpenAICompleter, error) {
	if s.APIKey == "" {
		return nil, fmt.Errorf("llm: api key missing: %w", internalerr.ErrProducerUnavailable)
	}
	if s.Model == "" {
		return nil, fmt.Errorf("llm: model required: %w", internalerr.ErrProducerUnavailable)
	}
	opts := []option.RequestOption{option.WithAPIKey(s.APIKey)}
	if s.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(s.BaseURL))
	}
	opts = append(opts, extra...)
	return &OpenAICompleter{Model: s.Model, Opts: opts}, nil
}

func (o *OpenAICompleter) Complete(ctx context.Context, system, user string) (string, error) {
	client := openai.NewClient(o.Opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.Model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
