package export

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/format"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
)

var outputs = format.Outputs{
	Grade5Explanation: "The park opens in spring. That is the main idea in simple words.",
	BulletSummary:     []string{"The park opens in spring.", "Kids can play there.", "Key topics: park, spring."},
	WhatsAppVersion:   "Hey there! 👋 The park opens in spring. Hope that helps! 👍",
	VoiceScript:       "Hello and welcome. [pause] The park opens in spring. [pause] Thanks for listening.",
	RegionalVersion:   "Dekho yaar, the park opens in spring. Simple hai na, yaar?",
}

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":         JSON,
		"JSON":     JSON,
		"txt":      Text,
		"text":     Text,
		"md":       Markdown,
		"markdown": Markdown,
		" html ":   HTML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("docx"); !errors.Is(err, internalerr.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestRenderJSON(t *testing.T) {
	data, err := Render(outputs, JSON)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(data), `"grade5_explanation"`) {
		t.Errorf("JSON should use snake_case field names: %s", data)
	}

	var back format.Outputs
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(outputs, back); diff != "" {
		t.Errorf("JSON export lost data (-want +got):\n%s", diff)
	}
}

func TestRenderText(t *testing.T) {
	data, err := Render(outputs, Text)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	got := string(data)
	for _, want := range []string{"GRADE 5 EXPLANATION\n", "BULLET SUMMARY\n- The park opens in spring.\n", "VOICE SCRIPT\n", outputs.RegionalVersion} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in text export:\n%s", want, got)
		}
	}
}

func TestRenderMarkdownAndHTML(t *testing.T) {
	md, err := Render(outputs, Markdown)
	if err != nil {
		t.Fatalf("Render md: %v", err)
	}
	if !strings.Contains(string(md), "## Bullet summary\n\n- The park opens in spring.\n- Kids can play there.\n") {
		t.Errorf("Unexpected markdown:\n%s", md)
	}

	page, err := Render(outputs, HTML)
	if err != nil {
		t.Fatalf("Render html: %v", err)
	}
	got := string(page)
	for _, want := range []string{"<h2>Voice script</h2>", "<li>Kids can play there.</li>", "[pause]", "<!DOCTYPE html>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected %q in html export:\n%s", want, got)
		}
	}
}

func TestRenderHTMLEscapesMarkup(t *testing.T) {
	o := outputs
	o.Grade5Explanation = "Use <b>care</b> with *stars*."

	page, err := Render(o, HTML)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(page), "<b>") || strings.Contains(string(page), "<em>") {
		t.Errorf("Output text must not become markup:\n%s", page)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	if _, err := Render(outputs, Format("pdf")); !errors.Is(err, internalerr.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
}
