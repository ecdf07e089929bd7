package statements

import "strings"

// Split breaks a batch into its statements using the MySQL rules.
func Split(text string) []string {
	return MySQL.Split(text)
}

// Complete reports whether the buffered input ends with a terminated
// statement, using the MySQL rules.
func Complete(text string) bool {
	return MySQL.Complete(text)
}

// Split breaks a batch into its statements. Statements are terminated by a
// semi-colon, but a semi-colon inside a literal or a comment doesn't count.
// Statements are returned trimmed and without their terminator. Fragments
// holding nothing but whitespace and comments are dropped. A MySQL executable
// comment (/*! ... */) is code, not a comment.
//
// Split never fails. An unterminated literal or comment simply swallows the
// rest of the batch into the current statement.
func (d Dialect) Split(text string) []string {
	var stmts []string
	s := scanner{text: text, dialect: d}
	start := 0
	code := false
	for s.next() {
		if s.inCode() {
			code = true
			continue
		}
		if s.state != normal || s.skip {
			continue
		}
		if s.c == ';' {
			if code {
				stmts = append(stmts, strings.TrimSpace(text[start:s.i]))
			}
			start = s.i + 1
			code = false
			continue
		}
		if !isSpace(s.c) {
			code = true
		}
	}

	if code {
		stmts = append(stmts, strings.TrimSpace(text[start:]))
	}
	return stmts
}

// Complete reports whether the buffered input ends with a terminated
// statement. Trailing whitespace and comments after the terminator are
// allowed; an open literal or block comment means more input is needed.
func (d Dialect) Complete(text string) bool {
	s := scanner{text: text, dialect: d}
	terminated := false
	for s.next() {
		if s.inCode() {
			terminated = false
			continue
		}
		if s.state != normal || s.skip {
			continue
		}
		if s.c == ';' {
			terminated = true
		} else if !isSpace(s.c) {
			terminated = false
		}
	}
	// a line comment ends at the end of the input
	return terminated && (s.state == normal || s.state == lineComment)
}

type scanState uint8

const (
	normal scanState = iota
	singleQuote
	doubleQuote
	backtick
	dollarQuote
	lineComment
	blockComment
	executableComment
)

// scanner walks the text one byte at a time tracking whether we're inside a
// literal or a comment. After each call to next, c is the current byte and
// state the state c belongs to. skip is set on bytes which open or close a
// literal or comment: they're never code.
type scanner struct {
	text    string
	dialect Dialect
	i       int
	c       byte
	state   scanState
	skip    bool

	// Whether the last character was an escape character or not. This tells us
	// to ignore the next character.
	escape bool
	// whether backslash escapes in the current quote
	backslash bool
	// the $tag$ closing the current dollar quote
	tag string
	// postgres block comments nest
	depth   int
	started bool
}

func (s *scanner) next() bool {
	if s.started {
		s.i++
	}
	s.started = true
	if s.i >= len(s.text) {
		return false
	}

	s.c = s.text[s.i]
	s.skip = false

	switch s.state {
	case singleQuote, doubleQuote:
		s.skip = true
		if s.escape {
			s.escape = false
		} else if s.c == '\\' && s.backslash {
			s.escape = true
		} else if (s.c == '\'' && s.state == singleQuote) || (s.c == '"' && s.state == doubleQuote) {
			s.state = normal
		}
		return true
	case backtick:
		s.skip = true
		if s.c == '`' {
			s.state = normal
		}
		return true
	case dollarQuote:
		s.skip = true
		if s.c == '$' && strings.HasPrefix(s.text[s.i:], s.tag) {
			s.i += len(s.tag) - 1
			s.state = normal
		}
		return true
	case lineComment:
		s.skip = true
		if s.c == '\n' {
			s.state = normal
			s.skip = false
		}
		return true
	case blockComment:
		s.skip = true
		if s.c == '*' && s.peek() == '/' {
			s.i++
			if s.depth--; s.depth <= 0 {
				s.state = normal
			}
		} else if s.c == '/' && s.peek() == '*' && s.dialect == Postgres {
			s.i++
			s.depth++
		}
		return true
	case executableComment:
		if s.c == '*' && s.peek() == '/' {
			s.i++
			s.skip = true
			s.state = normal
		}
		return true
	}

	mysql := s.dialect == MySQL
	switch {
	case s.c == '\'':
		s.state = singleQuote
		s.backslash = mysql || s.escapeString()
	case s.c == '"':
		s.state = doubleQuote
		s.backslash = mysql
	case s.c == '`' && mysql:
		s.state = backtick
	case s.c == '#' && mysql:
		s.state = lineComment
	case s.c == '-' && s.peek() == '-':
		s.i++
		s.state = lineComment
	case s.c == '/' && s.peek() == '*':
		if mysql && strings.HasPrefix(s.text[s.i:], "/*!") {
			s.i += 2
			s.state = executableComment
		} else {
			s.i++
			s.state = blockComment
			s.depth = 1
		}
	case s.c == '$' && !mysql:
		tag, ok := s.dollarTag()
		if !ok {
			return true
		}
		s.tag = tag
		s.i += len(tag) - 1
		s.state = dollarQuote
	default:
		return true
	}
	s.skip = true
	return true
}

// inCode is true for bytes which are part of a statement even though we're
// not in the normal state: literal content and executable comments.
func (s *scanner) inCode() bool {
	switch s.state {
	case singleQuote, doubleQuote, backtick, dollarQuote, executableComment:
		return true
	}
	return false
}

// escapeString is true when the quote we're on opens a postgres E'...' string
func (s *scanner) escapeString() bool {
	if s.i == 0 || (s.text[s.i-1] != 'e' && s.text[s.i-1] != 'E') {
		return false
	}
	return s.i == 1 || !isWordByte(s.text[s.i-2])
}

// dollarTag returns the $tag$ (or $$) starting at the current byte. $1 style
// parameters and $ inside identifiers aren't tags.
func (s *scanner) dollarTag() (string, bool) {
	if s.i > 0 && (isWordByte(s.text[s.i-1]) || s.text[s.i-1] == '$') {
		return "", false
	}
	j := s.i + 1
	for j < len(s.text) && isWordByte(s.text[j]) {
		j++
	}
	if j >= len(s.text) || s.text[j] != '$' {
		return "", false
	}
	if j > s.i+1 && s.text[s.i+1] >= '0' && s.text[s.i+1] <= '9' {
		return "", false
	}
	return s.text[s.i : j+1], true
}

func (s *scanner) peek() byte {
	if s.i+1 < len(s.text) {
		return s.text[s.i+1]
	}
	return 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

// letters, digits, underscore and any non-ascii byte
func isWordByte(c byte) bool {
	return c == '_' || c >= 0x80 || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}
