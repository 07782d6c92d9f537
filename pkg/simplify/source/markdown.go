package source

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownExtractor handles Markdown files using goldmark. Headings, code
// blocks and raw HTML are dropped since they are not prose.
type MarkdownExtractor struct{}

func (e *MarkdownExtractor) Extract(r io.Reader) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var paragraphs []string
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch n.(type) {
		case *ast.Heading, *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.ThematicBreak:
			return
		case *ast.Paragraph, *ast.TextBlock:
			if t := inlineText(n, src); t != "" {
				paragraphs = append(paragraphs, t)
			}
			return
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			walk(c)
		}
	}
	walk(doc)

	return joinParagraphs(paragraphs), nil
}

// inlineText gets the text content of a goldmark inline subtree, skipping
// code spans.
func inlineText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			buf.Write(node.Segment.Value(src))
			if node.HardLineBreak() || node.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.CodeSpan, *ast.RawHTML:
			continue
		default:
			buf.WriteString(inlineText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
