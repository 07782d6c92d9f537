package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/format"
	"github.com/Ishanvi-14/PersonaVerse-AI-sub000/pkg/simplify/internalerr"
)

const article = "The city council approved a new budget for the public library. " +
	"The budget adds funding for books and for longer opening hours. " +
	"Many residents asked the council for more library services last year."

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	// flag variables are package globals; reset between invocations
	verbose, configPath, dbPath = false, "", ""
	seed, outputFormat, producerName = 0, "txt", "pipeline"
	historyLimit = 20

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("simplify %s: %v", strings.Join(args, " "), err)
	}
	return out.String()
}

func TestReadInput(t *testing.T) {
	got, err := readInput("", strings.NewReader("Line one\nline two.\n"))
	if err != nil || got != "Line one line two." {
		t.Errorf("stdin: got %q, %v", got, err)
	}

	md := writeFile(t, "notes.md", "# Heading\n\nBody text here.\n")
	got, err = readInput(md, nil)
	if err != nil || got != "Body text here." {
		t.Errorf("markdown: got %q, %v", got, err)
	}

	if _, err := readInput(writeFile(t, "data.xlsx", "x"), nil); !errors.Is(err, internalerr.ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := readInput(filepath.Join(t.TempDir(), "missing.txt"), nil); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestRunAndHistory(t *testing.T) {
	input := writeFile(t, "article.txt", article)
	db := filepath.Join(t.TempDir(), "runs.db")

	out := execute(t, "run", "--seed", "3", "--format", "json", "--db", db, input)
	var outputs format.Outputs
	if err := json.Unmarshal([]byte(out), &outputs); err != nil {
		t.Fatalf("run output is not JSON: %v\n%s", err, out)
	}
	if outputs.VoiceScript == "" || len(outputs.BulletSummary) < format.MinBullets {
		t.Errorf("Incomplete outputs: %+v", outputs)
	}

	again := execute(t, "run", "--seed", "3", "--format", "json", "--db", db, input)
	if again != out {
		t.Error("Same seed should print identical outputs")
	}

	history := execute(t, "history", "--db", db)
	if lines := strings.Split(strings.TrimSpace(history), "\n"); len(lines) != 3 {
		t.Errorf("Expected header plus 2 runs, got:\n%s", history)
	}
	if !strings.Contains(history, "pipeline") {
		t.Errorf("History should name the producer:\n%s", history)
	}
}

func TestGrade(t *testing.T) {
	out := execute(t, "grade", writeFile(t, "article.txt", article))
	if !strings.Contains(out, "Input grade:") || !strings.Contains(out, "Simplified grade:") {
		t.Errorf("Unexpected grade report:\n%s", out)
	}
}

func TestPreview(t *testing.T) {
	if got := preview("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := preview("a\nlong   input string here", 10); got != "a long ..." {
		t.Errorf("got %q", got)
	}
}
