package statements

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KeywordSet is an ordered set of lowercase leading keywords. Build it with
// NewKeywordSet and don't modify it afterwards.
type KeywordSet []string

var (
	// Statements which can irreversibly change data or schema. Any delete counts,
	// with or without a where clause.
	DefaultDestructive = NewKeywordSet("drop", "shutdown", "delete", "truncate", "alter", "update")

	// Statements which produce rows and are run as queries.
	DefaultReadOnly = NewKeywordSet("select", "show", "describe", "desc", "explain", "with", "values", "table", "pragma")

	// Statements which change the current database.
	Use = NewKeywordSet("use")
)

func NewKeywordSet(keywords ...string) KeywordSet {
	set := make(KeywordSet, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" || set.Contains(k) {
			continue
		}
		set = append(set, k)
	}
	return set
}

// Contains expects an already lowercased word
func (k KeywordSet) Contains(word string) bool {
	for _, v := range k {
		if v == word {
			return true
		}
	}
	return false
}

type prefixState uint8

const (
	skippingWhitespace prefixState = iota
	skippingComment
	readingToken
	done
)

// FirstWord returns the lowercased first identifier of the statement, ignoring
// any leading whitespace and comments. The content of a leading executable
// comment (/*!40101 SET ... */) is read as the statement. It returns "" when
// there's nothing but whitespace and comments.
func FirstWord(stmt string) string {
	state := skippingWhitespace
	// what ends the comment we're in: "\n" or "*/"
	var closer string
	start, end := 0, len(stmt)

	for i := 0; i < len(stmt) && state != done; {
		r, size := utf8.DecodeRuneInString(stmt[i:])
		switch state {
		case skippingWhitespace:
			switch {
			case unicode.IsSpace(r):
				i += size
			case r == '#':
				closer = "\n"
				state = skippingComment
				i++
			case strings.HasPrefix(stmt[i:], "--"):
				closer = "\n"
				state = skippingComment
				i += 2
			case strings.HasPrefix(stmt[i:], "/*!"):
				// executable comment, its content is the statement
				i += 3
				for i < len(stmt) && stmt[i] >= '0' && stmt[i] <= '9' {
					i++
				}
			case strings.HasPrefix(stmt[i:], "/*"):
				closer = "*/"
				state = skippingComment
				i += 2
			case isIdentifier(r):
				start = i
				state = readingToken
			default:
				// punctuation where a keyword should be
				return ""
			}
		case skippingComment:
			if strings.HasPrefix(stmt[i:], closer) {
				i += len(closer)
				state = skippingWhitespace
			} else {
				i += size
			}
		case readingToken:
			if isIdentifier(r) {
				i += size
			} else {
				end = i
				state = done
			}
		}
	}

	if state != readingToken && state != done {
		return ""
	}
	return strings.ToLower(stmt[start:end])
}

// MatchesAny reports whether the statement's first word is one of the
// keywords. "usex" does not match "use".
func MatchesAny(stmt string, keywords KeywordSet) bool {
	if len(keywords) == 0 {
		return false
	}
	word := FirstWord(stmt)
	return word != "" && keywords.Contains(word)
}

// AnyMatches splits the batch and reports whether at least one of its
// statements matches the keywords.
func AnyMatches(batch string, keywords KeywordSet) bool {
	return MySQL.AnyMatches(batch, keywords)
}

func (d Dialect) AnyMatches(batch string, keywords KeywordSet) bool {
	for _, stmt := range d.Split(batch) {
		if MatchesAny(stmt, keywords) {
			return true
		}
	}
	return false
}

type Batch struct {
	Statements  []string
	Destructive bool
}

// Classify splits the batch and flags it when any statement starts with
// one of the destructive keywords.
func Classify(batch string, destructive KeywordSet) Batch {
	return MySQL.Classify(batch, destructive)
}

func (d Dialect) Classify(batch string, destructive KeywordSet) Batch {
	stmts := d.Split(batch)
	b := Batch{Statements: stmts}
	for _, stmt := range stmts {
		if MatchesAny(stmt, destructive) {
			b.Destructive = true
			break
		}
	}
	return b
}

func isIdentifier(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
