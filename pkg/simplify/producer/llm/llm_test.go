package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/openai/openai-go/option"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
)

type fakeCompleter struct {
	reply     string
	err       error
	gotSystem string
	gotUser   string
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.gotSystem, f.gotUser = system, user
	return f.reply, f.err
}

const validReply = "```json\n" + `{
  "grade5_explanation": "The park opens in spring. Kids can play there.",
  "bullet_summary": ["The park opens in spring.", "Kids can play there.", "It is free."],
  "whatsapp_version": "Hey! 👋 The park opens in spring. 👍",
  "voice_script": "Hello. [pause] The park opens in spring. [pause] Bye.",
  "regional_version": "Dekho yaar, the park opens in spring. Simple hai na?"
}` + "\n```"

func TestProduceDecodesAndValidates(t *testing.T) {
	fake := &fakeCompleter{reply: validReply}
	p := New(fake, nil, zap.NewNop())

	out, err := p.Produce(context.Background(), "The municipal park will open in spring.")
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	if len(out.BulletSummary) != 3 {
		t.Errorf("Expected 3 bullets, got %d", len(out.BulletSummary))
	}
	if fake.gotUser != "The municipal park will open in spring." {
		t.Errorf("Input text should be the user message, got %q", fake.gotUser)
	}
	for _, want := range []string{`"bullet_summary"`, `"[pause]"`, "yaar"} {
		if !strings.Contains(fake.gotSystem, want) {
			t.Errorf("System prompt missing %q:\n%s", want, fake.gotSystem)
		}
	}
}

func TestProduceRejectsInvalidOutputs(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	reply := `{"grade5_explanation": "function foo() { return 1 }", "bullet_summary": ["one"],
		"whatsapp_version": "hi", "voice_script": "no marker", "regional_version": "plain"}`
	p := New(&fakeCompleter{reply: reply}, nil, zap.New(core))

	_, err := p.Produce(context.Background(), "text")
	if !errors.Is(err, internalerr.ErrInvalidOutput) {
		t.Fatalf("Expected ErrInvalidOutput, got %v", err)
	}
	if logs.FilterMessage("llm response failed validation").Len() != 1 {
		t.Error("Expected a validation warning")
	}
}

func TestProduceRejectsNonJSON(t *testing.T) {
	p := New(&fakeCompleter{reply: "Sorry, I cannot help with that."}, nil, nil)
	if _, err := p.Produce(context.Background(), "text"); !errors.Is(err, internalerr.ErrInvalidOutput) {
		t.Errorf("Expected ErrInvalidOutput, got %v", err)
	}
}

func TestProducePropagatesCompleterError(t *testing.T) {
	boom := errors.New("boom")
	p := New(&fakeCompleter{err: boom}, nil, nil)
	if _, err := p.Produce(context.Background(), "text"); !errors.Is(err, boom) {
		t.Errorf("Expected wrapped completer error, got %v", err)
	}
}

func TestNewOpenAICompleterRequiresCredentials(t *testing.T) {
	if _, err := NewOpenAICompleter(Settings{Model: "gpt-test"}); !errors.Is(err, internalerr.ErrProducerUnavailable) {
		t.Errorf("Missing key: expected ErrProducerUnavailable, got %v", err)
	}
	if _, err := NewOpenAICompleter(Settings{APIKey: "k"}); !errors.Is(err, internalerr.ErrProducerUnavailable) {
		t.Errorf("Missing model: expected ErrProducerUnavailable, got %v", err)
	}
}

type roundTrip func(*http.Request) *http.Response

func (rt roundTrip) RoundTrip(req *http.Request) (*http.Response, error) {
	return rt(req), nil
}

func TestOpenAICompleterComplete(t *testing.T) {
	transport := roundTrip(func(req *http.Request) *http.Response {
		body, _ := io.ReadAll(req.Body)
		if !strings.Contains(string(body), `"gpt-test"`) || !strings.Contains(string(body), "Explain this") {
			t.Errorf("Unexpected payload: %s", body)
		}
		if got := req.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Unexpected auth header %q", got)
		}
		return &http.Response{
			StatusCode: 200,
			Body: io.NopCloser(strings.NewReader(`{
				"id":"cmpl-1","object":"chat.completion","created":0,"model":"gpt-test",
				"choices":[{"index":0,"finish_reason":"stop","message":{"role":"assistant","content":"Answer"}}]
			}`)),
			Header:  http.Header{"Content-Type": []string{"application/json"}},
			Request: req,
		}
	})

	c, err := NewOpenAICompleter(
		Settings{Model: "gpt-test", APIKey: "secret", BaseURL: "https://api.test/v1/"},
		option.WithHTTPClient(&http.Client{Transport: transport}),
	)
	if err != nil {
		t.Fatalf("NewOpenAICompleter: %v", err)
	}

	out, err := c.Complete(context.Background(), "system", "Explain this")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if out != "Answer" {
		t.Errorf("unexpected output: %s", out)
	}
}
