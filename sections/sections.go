// Package sections splits a block of generated markdown into a flat,
// ordered list of titled sections so long narratives can be presented in
// chunks.
package sections

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
)

// Section is one titled span of the source text. Heading depths are kept as
// metadata only; sections do not nest.
type Section struct {
	Level int    `json:"level"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Title used when the text has no headings at all.
const fallbackTitle = "Analysis"

type headingMark struct {
	level int
	title string
	start int // offset of the heading line
	end   int // offset just past the heading line's newline
}

// Split parses the text and returns its sections in order of appearance.
// Empty or whitespace-only input yields no sections; non-empty input
// without headings yields a single synthetic section holding the whole
// text.
func Split(input string) []Section {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	// Normalize line endings so offsets are consistent.
	src := []byte(strings.ReplaceAll(input, "\r\n", "\n"))

	md := goldmark.New()
	doc := md.Parser().Parse(gtext.NewReader(src))

	var marks []headingMark
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if heading.Lines().Len() == 0 {
			return ast.WalkContinue, nil
		}

		first := heading.Lines().At(0)
		last := heading.Lines().At(heading.Lines().Len() - 1)

		start := bytes.LastIndexByte(src[:first.Start], '\n') + 1
		end := last.Stop
		if i := bytes.IndexByte(src[end:], '\n'); i >= 0 {
			end += i + 1
		} else {
			end = len(src)
		}

		marks = append(marks, headingMark{
			level: heading.Level,
			title: strings.TrimSpace(string(heading.Text(src))),
			start: start,
			end:   end,
		})
		return ast.WalkSkipChildren, nil
	})

	if len(marks) == 0 {
		return []Section{{
			Level: 2,
			Title: fallbackTitle,
			Body:  strings.TrimSpace(string(src)),
		}}
	}

	out := make([]Section, 0, len(marks))
	for i, mark := range marks {
		bodyEnd := len(src)
		if i+1 < len(marks) {
			bodyEnd = marks[i+1].start
		}
		out = append(out, Section{
			Level: mark.level,
			Title: mark.title,
			Body:  strings.TrimSpace(string(src[mark.end:bodyEnd])),
		})
	}
	return out
}
