package syntax

import (
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/ftlentries/internal/syntax/ast"
)

// patternBuilder accumulates pattern elements across the lines of a message,
// merging adjacent text into a single TextElement.
type patternBuilder struct {
	filename   string
	elements   []ast.PatternElement
	text       strings.Builder
	start, end hcl.Pos
	started    bool
}

func newPatternBuilder(filename string) *patternBuilder {
	return &patternBuilder{filename: filename}
}

func (b *patternBuilder) hasContent() bool {
	return b.started
}

func (b *patternBuilder) mark(at hcl.Pos) {
	if !b.started {
		b.start = at
		b.started = true
	}
}

func (b *patternBuilder) writeText(s string, at hcl.Pos) {
	if s == "" {
		return
	}
	b.mark(at)
	b.text.WriteString(s)
}

func (b *patternBuilder) addPlaceable(pl *ast.Placeable) {
	b.mark(pl.SrcRange.Start)
	b.flush()
	b.elements = append(b.elements, pl)
	b.end = pl.SrcRange.End
}

func (b *patternBuilder) flush() {
	if b.text.Len() == 0 {
		return
	}
	b.elements = append(b.elements, &ast.TextElement{Value: b.text.String()})
	b.text.Reset()
}

// pattern returns the built pattern, or nil if nothing was written.
func (b *patternBuilder) pattern() *ast.Pattern {
	b.flush()
	if len(b.elements) == 0 {
		return nil
	}
	return &ast.Pattern{
		Elements: b.elements,
		SrcRange: hcl.Range{Filename: b.filename, Start: b.start, End: b.end},
	}
}
