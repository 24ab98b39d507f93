package parser

import (
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokIdent
	tokLifetime
	tokNumber
	tokPunct // punctuation, spelled out as its literal text; keywords lex as tokIdent
)

type token struct {
	kind tokenKind
	text string
	pos  int // byte offset of the token's first byte
}

// lexer tokenizes the surface grammar: struct/fn/let declarations,
// labelled basic blocks of statements, places, and expressions. It
// also collects `///`-prefixed doc comment lines,
// attaching the accumulated block of consecutive doc lines to
// docPending for the parser to claim before the next declaration.
type lexer struct {
	src        string
	pos        int
	docPending []string
}

func newLexer(src string) *lexer {
	return &lexer{src: src}
}

func isIdentStart(r byte) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r byte) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func isDigit(r byte) bool {
	return r >= '0' && r <= '9'
}

// skipTrivia consumes whitespace and comments, recording any `///` doc
// comment lines encountered into docPending. A blank line or any other
// non-comment content seen after doc lines does not itself clear
// docPending; the parser clears it once claimed so it can be attached to
// the declaration that immediately follows.
func (l *lexer) skipTrivia() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.pos++

		case strings.HasPrefix(l.src[l.pos:], "///"):
			start := l.pos + 3
			end := strings.IndexByte(l.src[start:], '\n')
			var line string
			if end < 0 {
				line = l.src[start:]
				l.pos = len(l.src)
			} else {
				line = l.src[start : start+end]
				l.pos = start + end + 1
			}
			l.docPending = append(l.docPending, strings.TrimSpace(line))

		case strings.HasPrefix(l.src[l.pos:], "//"):
			end := strings.IndexByte(l.src[l.pos:], '\n')
			if end < 0 {
				l.pos = len(l.src)
			} else {
				l.pos += end + 1
			}

		default:
			return
		}
	}
}

// takeDoc returns and clears the accumulated doc comment lines, joined
// by newlines.
func (l *lexer) takeDoc() string {
	if len(l.docPending) == 0 {
		return ""
	}
	doc := strings.Join(l.docPending, "\n")
	l.docPending = nil
	return doc
}

var punctuation = []string{
	"->", // must precede single-char '-' in the scan order below
	"<", ">", "{", "}", "(", ")", ":", ",", ".", ";", "=", "&", "*",
}

func (l *lexer) next() token {
	l.skipTrivia()

	if l.pos >= len(l.src) {
		return token{kind: tokEOF, pos: l.pos}
	}

	start := l.pos
	c := l.src[l.pos]

	switch {
	case c == '\'':
		l.pos++
		for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokLifetime, text: l.src[start:l.pos], pos: start}

	case isDigit(c):
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokNumber, text: l.src[start:l.pos], pos: start}

	case isIdentStart(c):
		for l.pos < len(l.src) && isIdentCont(l.src[l.pos]) {
			l.pos++
		}
		return token{kind: tokIdent, text: l.src[start:l.pos], pos: start}

	default:
		for _, p := range punctuation {
			if strings.HasPrefix(l.src[l.pos:], p) {
				l.pos += len(p)
				return token{kind: tokPunct, text: p, pos: start}
			}
		}
		// Unrecognized byte: consume it as a one-byte punctuation token so
		// the parser can report it as "expected ..." rather than the
		// lexer silently looping.
		l.pos++
		return token{kind: tokPunct, text: string(c), pos: start}
	}
}

// peekPos returns the byte offset the next call to next() would start
// scanning a real token from, i.e. after skipping trivia. The parser's
// errorf does not call it; error offsets are the current token's pos.
func (l *lexer) peekPos() int {
	save := *l
	l.skipTrivia()
	pos := l.pos
	*l = save
	return pos
}
