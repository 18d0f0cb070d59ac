// Package scanner implements the lexical scanner that turns source text
// into a lazy sequence of tokens for the compiler to consume.
package scanner

import (
	"github.com/nenuphar-lang/clox/lang/token"
)

// Tok is a single scanned token: its kind, the exact source lexeme, and the
// 1-based source line it started on.
type Tok struct {
	Kind   token.Token
	Lexeme string
	Line   int
}

// Scanner tokenizes a source buffer on demand, one token per call to Next.
// It holds no lookahead beyond two bytes and performs no allocation
// beyond the lexeme substrings it returns.
type Scanner struct {
	src     string
	start   int // start of the lexeme currently being scanned
	current int // offset of the next unread byte
	line    int
}

// Init prepares s to scan src from the beginning.
func (s *Scanner) Init(src string) {
	s.src = src
	s.start = 0
	s.current = 0
	s.line = 1
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.src) }

func (s *Scanner) advance() byte {
	b := s.src[s.current]
	s.current++
	return b
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func (s *Scanner) match(want byte) bool {
	if s.atEnd() || s.src[s.current] != want {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) make(kind token.Token) Tok {
	return Tok{Kind: kind, Lexeme: s.src[s.start:s.current], Line: s.line}
}

// errTok produces a TOKEN_ERROR-equivalent (token.ILLEGAL) whose lexeme is
// the error message itself, per spec: "On any unrecognized byte, emit
// TOKEN_ERROR whose lexeme is the error message."
func (s *Scanner) errTok(msg string) Tok {
	return Tok{Kind: token.ILLEGAL, Lexeme: msg, Line: s.line}
}

func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\r', '\t':
			s.advance()
		case '\n':
			// the newline both increments the line counter and is consumed here,
			// by design (it is not special-cased as a separate branch).
			s.line++
			s.advance()
		case '/':
			if s.peekNext() == '/' {
				for s.peek() != '\n' && !s.atEnd() {
					s.advance()
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// Next returns the next token in the source. The final token returned for
// any input is always token.EOF.
func (s *Scanner) Next() Tok {
	s.skipWhitespace()
	s.start = s.current

	if s.atEnd() {
		return s.make(token.EOF)
	}

	c := s.advance()
	switch {
	case isDigit(c):
		return s.number()
	case isAlpha(c):
		return s.identifier()
	}

	switch c {
	case '(':
		return s.make(token.LPAREN)
	case ')':
		return s.make(token.RPAREN)
	case '{':
		return s.make(token.LBRACE)
	case '}':
		return s.make(token.RBRACE)
	case ';':
		return s.make(token.SEMI)
	case ',':
		return s.make(token.COMMA)
	case '.':
		return s.make(token.DOT)
	case '-':
		return s.make(token.MINUS)
	case '+':
		return s.make(token.PLUS)
	case '/':
		return s.make(token.SLASH)
	case '*':
		return s.make(token.STAR)
	case '!':
		if s.match('=') {
			return s.make(token.BANGEQ)
		}
		return s.make(token.BANG)
	case '=':
		if s.match('=') {
			return s.make(token.EQEQ)
		}
		return s.make(token.EQ)
	case '<':
		if s.match('=') {
			return s.make(token.LTEQ)
		}
		return s.make(token.LT)
	case '>':
		if s.match('=') {
			return s.make(token.GTEQ)
		}
		return s.make(token.GT)
	case '"':
		return s.string()
	}

	return s.errTok("Unexpected character.")
}

func (s *Scanner) identifier() Tok {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	lit := s.src[s.start:s.current]
	return s.make(token.LookupIdent(lit))
}

// number scans an unsigned decimal literal with an optional fractional
// part. A '.' is only consumed as part of the literal when it is followed
// by another digit, so in "1.foo" the '.' is left for the caller.
func (s *Scanner) number() Tok {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume the '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}
	return s.make(token.NUMBER)
}

// string scans a double-quoted string literal. Strings may span multiple
// lines (each embedded newline bumps the line counter) and support no
// escape sequences.
func (s *Scanner) string() Tok {
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		return s.errTok("Unterminated string.")
	}
	s.advance() // closing quote
	return s.make(token.STRING)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b == '_'
}
