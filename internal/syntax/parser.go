package syntax

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/ftlentries/internal/syntax/ast"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// line is a single source line without its line terminator.
type line struct {
	num   int    // 1-based line number
	start int    // byte offset of the first byte of text in the source
	text  string // content without "\n" or "\r\n"
}

// parser holds the state of a single Parse call.
type parser struct {
	filename string
	lines    []line
	diags    hcl.Diagnostics
}

// Parse parses FTL source into a syntax tree. The filename is only used to
// label source ranges. Diagnostics are returned for every malformed entry; when
// diags.HasErrors() is true the returned Resource is incomplete.
func Parse(filename string, src []byte) (*ast.Resource, hcl.Diagnostics) {
	p := &parser{
		filename: filename,
		lines:    splitLines(src),
	}
	res := &ast.Resource{Filename: filename}

	i := 0
	for i < len(p.lines) {
		ln := p.lines[i]
		switch {
		case isBlank(ln.text), ln.text[0] == '#':
			i++
		case isIndented(ln.text):
			p.errorAt(ln, 0, len(ln.text),
				"Unexpected indented line",
				"Indented lines continue a message value or declare a trait, so they must directly follow a message.",
			)
			i = p.recover(i + 1)
		default:
			msg, next := p.parseMessage(i)
			if msg != nil {
				res.Body = append(res.Body, msg)
			}
			i = next
		}
	}

	return res, p.diags
}

// splitLines breaks src into lines, accepting both "\n" and "\r\n" endings.
func splitLines(src []byte) []line {
	offset := 0
	if bytes.HasPrefix(src, utf8BOM) {
		offset = len(utf8BOM)
	}

	var lines []line
	num := 1
	for offset <= len(src) {
		end := bytes.IndexByte(src[offset:], '\n')
		last := end < 0
		if last {
			end = len(src)
		} else {
			end += offset
		}
		text := strings.TrimSuffix(string(src[offset:end]), "\r")
		if !last || text != "" {
			lines = append(lines, line{num: num, start: offset, text: text})
		}
		if last {
			break
		}
		offset = end + 1
		num++
	}
	return lines
}

// recover skips the remaining indented lines of a broken entry and returns the
// index of the next line that may start a new entry.
func (p *parser) recover(i int) int {
	for i < len(p.lines) && isIndented(p.lines[i].text) && !isBlank(p.lines[i].text) {
		i++
	}
	return i
}

// parseMessage parses the message starting at line i. It returns the message,
// or nil if it was malformed, and the index of the first line after it.
func (p *parser) parseMessage(i int) (*ast.Message, int) {
	ln := p.lines[i]

	idEnd := scanIdentifier(ln.text, 0)
	if idEnd == 0 {
		p.errorAt(ln, 0, nextRuneEnd(ln.text, 0),
			"Invalid message identifier",
			"A message identifier must start with a letter or \"_\" and may contain letters, digits, \"_\" and \"-\".",
		)
		return nil, p.recover(i + 1)
	}
	id := &ast.Identifier{
		Name:     ln.text[:idEnd],
		SrcRange: p.rangeOf(ln, 0, idEnd),
	}

	pos := skipBlanks(ln.text, idEnd)
	if pos >= len(ln.text) || ln.text[pos] != '=' {
		p.errorAt(ln, pos, nextRuneEnd(ln.text, pos),
			"Missing \"=\" after message identifier",
			fmt.Sprintf("Expected \"=\" after the identifier %q.", id.Name),
		)
		return nil, p.recover(i + 1)
	}

	value := newPatternBuilder(p.filename)
	if !p.parseInline(value, ln, skipBlanks(ln.text, pos+1)) {
		return nil, p.recover(i + 1)
	}

	msg := &ast.Message{ID: id}
	var member *ast.Member
	var memberValue *patternBuilder
	lastLine, lastEnd := ln, len(strings.TrimRight(ln.text, " \t"))

	j := i + 1
	for ; j < len(p.lines); j++ {
		next := p.lines[j]
		if !isIndented(next.text) || isBlank(next.text) {
			break
		}
		start := skipBlanks(next.text, 0)

		if isMemberStart(next.text[start:]) {
			if member != nil {
				member.Value = memberValue.pattern()
				msg.Traits = append(msg.Traits, member)
			}
			var ok bool
			member, memberValue, ok = p.parseMember(next, start)
			if !ok {
				return nil, p.recover(j + 1)
			}
		} else {
			target := value
			if member != nil {
				target = memberValue
				member.SrcRange.End = p.pos(next, len(strings.TrimRight(next.text, " \t")))
			}
			if target.hasContent() {
				target.writeText("\n", p.pos(next, start))
			}
			if !p.parseInline(target, next, start) {
				return nil, p.recover(j + 1)
			}
		}
		lastLine, lastEnd = next, len(strings.TrimRight(next.text, " \t"))
	}

	if member != nil {
		member.Value = memberValue.pattern()
		msg.Traits = append(msg.Traits, member)
	}
	msg.Value = value.pattern()
	msg.SrcRange = hcl.Range{
		Filename: p.filename,
		Start:    id.SrcRange.Start,
		End:      p.pos(lastLine, lastEnd),
	}
	return msg, j
}

// parseMember parses a `[key] pattern` or `*[key] pattern` trait line whose
// content begins at byte start.
func (p *parser) parseMember(ln line, start int) (*ast.Member, *patternBuilder, bool) {
	m := &ast.Member{}
	pos := start
	if ln.text[pos] == '*' {
		m.Default = true
		pos++
	}
	pos++ // '['

	closeIdx := strings.IndexByte(ln.text[pos:], ']')
	if closeIdx < 0 {
		p.errorAt(ln, start, len(ln.text),
			"Unclosed trait key",
			"A trait key opened with \"[\" must be closed with \"]\" on the same line.",
		)
		return nil, nil, false
	}
	key := strings.TrimSpace(ln.text[pos : pos+closeIdx])
	if key == "" {
		p.errorAt(ln, start, pos+closeIdx+1,
			"Empty trait key",
			"A trait key must contain at least one non-blank character.",
		)
		return nil, nil, false
	}
	m.Key = key
	pos += closeIdx + 1

	value := newPatternBuilder(p.filename)
	if !p.parseInline(value, ln, skipBlanks(ln.text, pos)) {
		return nil, nil, false
	}
	m.SrcRange = p.rangeOf(ln, start, len(strings.TrimRight(ln.text, " \t")))
	return m, value, true
}

// parseInline parses the pattern text of ln from byte pos to the end of the
// line into b. Trailing blanks are not part of the pattern.
func (p *parser) parseInline(b *patternBuilder, ln line, pos int) bool {
	text := strings.TrimRight(ln.text, " \t")

	for pos < len(text) {
		c := text[pos]
		switch c {
		case '\\':
			if pos+1 < len(text) && isEscapable(text[pos+1]) {
				b.writeText(text[pos+1:pos+2], p.pos(ln, pos))
				pos += 2
				continue
			}
			b.writeText("\\", p.pos(ln, pos))
			pos++
		case '{':
			placeable, next, ok := p.parsePlaceable(ln, text, pos)
			if !ok {
				return false
			}
			b.addPlaceable(placeable)
			pos = next
		case '}':
			p.errorAt(ln, pos, pos+1,
				"Unbalanced closing brace",
				"A literal \"}\" must be escaped as \"\\}\".",
			)
			return false
		default:
			end := nextRuneEnd(text, pos)
			b.writeText(text[pos:end], p.pos(ln, pos))
			pos = end
		}
	}
	if b.hasContent() {
		b.end = p.pos(ln, len(text))
	}
	return true
}

// parsePlaceable parses `{ ref, ref }` starting at the "{" at byte open. It
// returns the placeable and the byte index just after the closing "}".
func (p *parser) parsePlaceable(ln line, text string, open int) (*ast.Placeable, int, bool) {
	placeable := &ast.Placeable{}
	pos := open + 1

	for {
		pos = skipBlanks(text, pos)
		if pos >= len(text) {
			p.errorAt(ln, open, len(text),
				"Unclosed placeable",
				"A placeable opened with \"{\" must be closed with \"}\" on the same line.",
			)
			return nil, 0, false
		}
		if text[pos] == '}' && len(placeable.Expressions) == 0 {
			p.errorAt(ln, open, pos+1,
				"Empty placeable",
				"A placeable must contain at least one message reference.",
			)
			return nil, 0, false
		}

		idEnd := scanIdentifier(text, pos)
		if idEnd == pos {
			p.errorAt(ln, pos, nextRuneEnd(text, pos),
				"Expected message reference",
				"Only references to other messages are supported inside a placeable.",
			)
			return nil, 0, false
		}
		placeable.Expressions = append(placeable.Expressions, &ast.MessageReference{
			ID: &ast.Identifier{
				Name:     text[pos:idEnd],
				SrcRange: p.rangeOf(ln, pos, idEnd),
			},
		})

		pos = skipBlanks(text, idEnd)
		if pos >= len(text) {
			continue // reported as unclosed on the next iteration
		}
		switch text[pos] {
		case ',':
			pos++
		case '}':
			placeable.SrcRange = p.rangeOf(ln, open, pos+1)
			return placeable, pos + 1, true
		default:
			p.errorAt(ln, pos, nextRuneEnd(text, pos),
				"Unexpected character in placeable",
				"Expected \",\" or \"}\" after a message reference.",
			)
			return nil, 0, false
		}
	}
}

// pos converts a byte index within ln into an hcl.Pos.
func (p *parser) pos(ln line, idx int) hcl.Pos {
	return hcl.Pos{
		Line:   ln.num,
		Column: utf8.RuneCountInString(ln.text[:idx]) + 1,
		Byte:   ln.start + idx,
	}
}

func (p *parser) rangeOf(ln line, from, to int) hcl.Range {
	return hcl.Range{
		Filename: p.filename,
		Start:    p.pos(ln, from),
		End:      p.pos(ln, to),
	}
}

func (p *parser) errorAt(ln line, from, to int, summary, detail string) {
	if to < from {
		to = from
	}
	rng := p.rangeOf(ln, from, to)
	p.diags = append(p.diags, &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  summary,
		Detail:   detail,
		Subject:  &rng,
	})
}

func isBlank(s string) bool {
	return strings.TrimLeft(s, " \t") == ""
}

func isIndented(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}

func isMemberStart(s string) bool {
	return strings.HasPrefix(s, "[") || strings.HasPrefix(s, "*[")
}

func isEscapable(c byte) bool {
	return c == '{' || c == '}' || c == '\\'
}

func skipBlanks(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// scanIdentifier returns the end of the identifier starting at i, or i when
// no identifier starts there.
func scanIdentifier(s string, i int) int {
	if i >= len(s) || !isIdentStart(s[i]) {
		return i
	}
	j := i + 1
	for j < len(s) && isIdentPart(s[j]) {
		j++
	}
	return j
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || c == '-' || (c >= '0' && c <= '9')
}

// nextRuneEnd returns the byte index just past the rune at i.
func nextRuneEnd(s string, i int) int {
	if i >= len(s) {
		return len(s)
	}
	_, size := utf8.DecodeRuneInString(s[i:])
	return i + size
}
