package lox

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

var keywords = map[string]TokenType{
	"and":    AND,
	"class":  CLASS,
	"else":   ELSE,
	"false":  FALSE,
	"for":    FOR,
	"fun":    FUN,
	"if":     IF,
	"nil":    NIL,
	"or":     OR,
	"print":  PRINT,
	"return": RETURN,
	"super":  SUPER,
	"this":   THIS,
	"true":   TRUE,
	"var":    VAR,
	"while":  WHILE,
}

const (
	msgUnterminatedString  = "Unterminated string."
	msgUnterminatedComment = "Unterminated block comment."
)

var escapes = strings.NewReplacer(`\t`, "\t", `\r`, "\r", `\n`, "\n")

type Scanner struct {
	source   string
	reporter Reporter
	tokens   []*Token
	start    int
	current  int
	line     int
}

// NewScanner return an pointer that points to scanner object
func NewScanner(source string, reporter Reporter) *Scanner {
	return &Scanner{source: source, reporter: reporter, line: 1}
}

// ScanTokens adding tokens until it runs out of characters
func (s *Scanner) ScanTokens() []*Token {
	for !s.isAtEnd() {
		// we are at the beginning of the next lexeme.
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, NewToken(EOF, "", nil, s.line))
	return s.tokens
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func (s *Scanner) scanToken() {
	c := s.advance()

	ifExp := func(e bool, a, b TokenType) TokenType {
		if e {
			return a
		}
		return b
	}
	switch c {
	case '(':
		s.addToken(LEFT_PAREN)
	case ')':
		s.addToken(RIGHT_PAREN)
	case '{':
		s.addToken(LEFT_BRACE)
	case '}':
		s.addToken(RIGHT_BRACE)
	case ',':
		s.addToken(COMMA)
	case '.':
		s.addToken(DOT)
	case '-':
		s.addToken(MINUS)
	case '+':
		s.addToken(PLUS)
	case ';':
		s.addToken(SEMICOLON)
	case ':':
		s.addToken(COLON)
	case '?':
		s.addToken(QUESTION_MARK)
	case '*':
		s.addToken(STAR)
	case '!':
		s.addToken(ifExp(s.match('='), BANG_EQUAL, BANG))
	case '=':
		s.addToken(ifExp(s.match('='), EQUAL_EQUAL, EQUAL))
	case '<':
		s.addToken(ifExp(s.match('='), LESS_EQUAL, LESS))
	case '>':
		s.addToken(ifExp(s.match('='), GREATER_EQUAL, GREATER))
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else if s.match('*') {
			s.blockComment()
		} else {
			s.addToken(SLASH)
		}
	case ' ', '\r', '\t':
	case '\n':
		s.line++
	case '"':
		s.string()
	default:
		if isDigit(c) {
			s.number()
		} else if isAlpha(c) {
			s.identifier()
		} else {
			errorLine(s.reporter, s.line, "Unexpected character.")
		}
	}
}

func (s *Scanner) advance() rune {
	ch, size := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += size
	return ch
}

func (s *Scanner) addToken(typ TokenType) {
	s.addTokenWithLiteral(typ, nil)
}

func (s *Scanner) addTokenWithLiteral(typ TokenType, literal interface{}) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, NewToken(typ, text, literal, s.line))
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// blockComment skips to the first "*/" after the opening "/*". Comments
// do not nest.
func (s *Scanner) blockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.current += 2
			return
		}
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	errorLine(s.reporter, s.line, msgUnterminatedComment)
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.isAtEnd() {
		errorLine(s.reporter, s.line, msgUnterminatedString)
		return
	}
	// The closing ".
	s.advance()

	// Trim the surrounding quotes.
	value := s.source[s.start+1 : s.current-1]
	s.addTokenWithLiteral(STRING, escapes.Replace(value))
}

func (s *Scanner) number() {
	for isDigit(rune(s.peek())) {
		s.advance()
	}

	// look for a fractional part
	if s.peek() == '.' && isDigit(rune(s.peekNext())) {
		// consume the "."
		s.advance()

		for isDigit(rune(s.peek())) {
			s.advance()
		}
	}

	// Out-of-range literals keep the ±Inf or 0 ParseFloat returns.
	value, err := strconv.ParseFloat(s.source[s.start:s.current], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		errorLine(s.reporter, s.line, "Invalid number literal.")
		return
	}
	s.addTokenWithLiteral(NUMBER, value)
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(rune(s.peek())) {
		s.advance()
	}
	typ, ok := keywords[s.source[s.start:s.current]]
	if !ok {
		typ = IDENTIFIER
	}
	s.addToken(typ)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
