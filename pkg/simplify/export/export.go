// Package export renders pipeline outputs for download.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/format"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
)

// Format names an export encoding
type Format string

const (
	JSON     Format = "json"
	Text     Format = "txt"
	Markdown Format = "md"
	HTML     Format = "html"
)

// Formats lists every supported export format.
var Formats = []Format{JSON, Text, Markdown, HTML}

// ParseFormat accepts a format name case-insensitively; "" means JSON.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "":
		return JSON, nil
	case JSON, Text, Markdown, HTML:
		return f, nil
	case "markdown":
		return Markdown, nil
	case "text":
		return Text, nil
	default:
		return "", fmt.Errorf("export format %q: %w", name, internalerr.ErrUnsupportedFormat)
	}
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case Text:
		return "text/plain; charset=utf-8"
	case Markdown:
		return "text/markdown; charset=utf-8"
	case HTML:
		return "text/html; charset=utf-8"
	default:
		return "application/json"
	}
}

type section struct {
	title string
	body  string
	list  []string
}

func sections(o format.Outputs) []section {
	return []section{
		{title: "Grade 5 explanation", body: o.Grade5Explanation},
		{title: "Bullet summary", list: o.BulletSummary},
		{title: "WhatsApp version", body: o.WhatsAppVersion},
		{title: "Voice script", body: o.VoiceScript},
		{title: "Regional version", body: o.RegionalVersion},
	}
}

// Render encodes o in the requested format.
func Render(o format.Outputs, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return json.MarshalIndent(o, "", "  ")
	case Text:
		return renderText(o), nil
	case Markdown:
		return renderMarkdown(o), nil
	case HTML:
		return renderHTML(o)
	default:
		return nil, fmt.Errorf("export format %q: %w", f, internalerr.ErrUnsupportedFormat)
	}
}

func renderText(o format.Outputs) []byte {
	var buf bytes.Buffer
	for i, s := range sections(o) {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(strings.ToUpper(s.title) + "\n")
		if s.list != nil {
			for _, item := range s.list {
				buf.WriteString("- " + item + "\n")
			}
			continue
		}
		buf.WriteString(s.body + "\n")
	}
	return buf.Bytes()
}

func renderMarkdown(o format.Outputs) []byte {
	var buf bytes.Buffer
	for i, s := range sections(o) {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString("## " + s.title + "\n\n")
		if s.list != nil {
			for _, item := range s.list {
				buf.WriteString("- " + escapeMarkdown(item) + "\n")
			}
			continue
		}
		buf.WriteString(escapeMarkdown(s.body) + "\n")
	}
	return buf.Bytes()
}

func renderHTML(o format.Outputs) ([]byte, error) {
	var body bytes.Buffer
	if err := goldmark.Convert(renderMarkdown(o), &body); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Simplified text</title></head>\n<body>\n")
	buf.Write(body.Bytes())
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"<", `\<`,
	"#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
