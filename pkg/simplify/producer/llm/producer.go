// Package llm produces the five output formats with a chat model instead of
// the deterministic pipeline. Responses are held to the same validation
// rules as pipeline output.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/format"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/lexicon"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/validate"
)

// Producer asks a Completer for JSON outputs and rejects anything that fails
// validation.
type Producer struct {
	completer Completer
	lex       *lexicon.Lexicon
	validator *validate.Validator
	log       *zap.Logger
}

// New creates a producer. A nil lexicon selects the default; a nil logger
// discards.
func New(c Completer, lex *lexicon.Lexicon, log *zap.Logger) *Producer {
	if lex == nil {
		lex = lexicon.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Producer{completer: c, lex: lex, validator: validate.New(lex), log: log}
}

func (p *Producer) Name() string { return "llm" }

func (p *Producer) Produce(ctx context.Context, text string) (format.Outputs, error) {
	raw, err := p.completer.Complete(ctx, p.systemPrompt(), text)
	if err != nil {
		return format.Outputs{}, fmt.Errorf("llm: complete: %w", err)
	}

	out, err := decodeOutputs(raw)
	if err != nil {
		p.log.Warn("llm response not decodable", zap.Error(err), zap.Int("response_chars", len(raw)))
		return format.Outputs{}, err
	}

	if res := p.validator.Validate(out); !res.Valid {
		p.log.Warn("llm response failed validation", zap.Strings("violations", res.Errors))
		return format.Outputs{}, fmt.Errorf("llm: %s: %w", strings.Join(res.Errors, "; "), internalerr.ErrInvalidOutput)
	}
	return out, nil
}

func (p *Producer) systemPrompt() string {
	var buf bytes.Buffer
	buf.WriteString("You rewrite text for readers with limited literacy. ")
	buf.WriteString("Reply with one JSON object and nothing else, with these keys:\n")
	buf.WriteString(`- "grade5_explanation": the text explained for a 10-year-old, short sentences.` + "\n")
	fmt.Fprintf(&buf, `- "bullet_summary": an array of %d to %d short bullet strings.`+"\n", format.MinBullets, format.MaxBullets)
	buf.WriteString(`- "whatsapp_version": a friendly chat message with one or two emojis.` + "\n")
	fmt.Fprintf(&buf, `- "voice_script": a spoken script using %q where the speaker should pause.`+"\n", p.lex.PauseMarker())
	fmt.Fprintf(&buf, `- "regional_version": a casual Hinglish version using words like %s.`+"\n",
		strings.Join(firstN(p.lex.CodeSwitchMarkers(), 4), ", "))
	fmt.Fprintf(&buf, "Keep every sentence under %d words. Never include code, markup or placeholders.\n", validate.MaxAverageSentenceWords)
	return buf.String()
}

// decodeOutputs tolerates a fenced code block around the JSON object.
func decodeOutputs(raw string) (format.Outputs, error) {
	s := strings.TrimSpace(raw)
	if start, end := strings.Index(s, "{"), strings.LastIndex(s, "}"); start >= 0 && end > start {
		s = s[start : end+1]
	}

	var out format.Outputs
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return format.Outputs{}, fmt.Errorf("llm: decode response: %v: %w", err, internalerr.ErrInvalidOutput)
	}
	return out, nil
}

func firstN(s []string, n int) []string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
