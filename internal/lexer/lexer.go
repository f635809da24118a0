package lexer

import (
	"fmt"

	"github.com/corvid-lang/corvid/internal/diag"
)

type LexerErrorKind int

const (
	ErrUnterminatedString LexerErrorKind = iota
	ErrIllegalRune
)

type LexerError struct {
	Kind    LexerErrorKind
	Message string
	Span    Span
}

func (e LexerError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Span.Line, e.Span.Column, e.Message)
}

func (k LexerErrorKind) diagnosticCode() diag.Code {
	switch k {
	case ErrUnterminatedString:
		return diag.CodeLexerUnterminatedString
	case ErrIllegalRune:
		return diag.CodeLexerIllegalRune
	default:
		return diag.Code("LEXER_UNKNOWN_ERROR")
	}
}

// ToDiagnostic converts a lexer error into a shared diagnostic structure.
func (e LexerError) ToDiagnostic() diag.Diagnostic {
	return diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: diag.SeverityError,
		Code:     e.Kind.diagnosticCode(),
		Message:  e.Message,
		Span: diag.Span{
			Filename: e.Span.Filename,
			Line:     e.Span.Line,
			Column:   e.Span.Column,
			Start:    e.Span.Start,
			End:      e.Span.End,
		},
	}
}

// Lexer represents the lexer state
type Lexer struct {
	input  []rune
	pos    int  // index of the current rune
	ch     rune // current rune (0 = EOF)
	line   int  // current line number (1-based)
	column int  // current column number (1-based)

	filename string

	Errors []LexerError
}

// SetFilename attributes all subsequently emitted spans to the given file.
func (l *Lexer) SetFilename(name string) {
	l.filename = name
}

// New creates a new lexer for the given input
func New(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		pos:    -1, // start before first rune
		line:   1,
		column: 0, // will be 1 after first read()
	}
	l.read()
	return l
}

func (l *Lexer) addError(kind LexerErrorKind, msg string, span Span) {
	l.Errors = append(l.Errors, LexerError{
		Kind:    kind,
		Message: msg,
		Span:    span,
	})
}

// read advances the lexer to the next character, keeping line/column in
// sync with the position of the character at pos.
func (l *Lexer) read() {
	l.pos++
	prevPos := l.pos - 1

	if prevPos >= 0 && prevPos < len(l.input) && l.input[prevPos] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.pos >= len(l.input) {
		l.ch = 0 // EOF
		return
	}
	l.ch = l.input[l.pos]
}

// peek returns the next character without advancing
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

func (l *Lexer) skipWhitespace() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.read()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.read()
			}
		default:
			return
		}
	}
}

func (l *Lexer) makeToken(tokType TokenType, startLine, startColumn, startPos, endPos int, raw string) Token {
	return Token{
		Type: tokType,
		Raw:  raw,
		Span: Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      endPos,
		},
	}
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) {
		l.read()
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) readString(startLine, startColumn, startPos int) (string, bool) {
	l.read() // consume opening quote
	start := l.pos
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			l.addError(ErrUnterminatedString, "unterminated string literal", Span{
				Filename: l.filename,
				Line:     startLine,
				Column:   startColumn,
				Start:    startPos,
				End:      l.pos,
			})
			return string(l.input[start:l.pos]), false
		}
		l.read()
	}
	value := string(l.input[start:l.pos])
	l.read() // consume closing quote
	return value, true
}

// NextToken scans and returns the next token in the input.
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	startLine, startColumn, startPos := l.line, l.column, l.pos

	single := func(t TokenType) Token {
		raw := string(l.ch)
		l.read()
		return l.makeToken(t, startLine, startColumn, startPos, startPos+1, raw)
	}
	double := func(t TokenType) Token {
		raw := string(l.input[startPos : startPos+2])
		l.read()
		l.read()
		return l.makeToken(t, startLine, startColumn, startPos, startPos+2, raw)
	}

	switch {
	case l.ch == 0:
		return l.makeToken(EOF, startLine, startColumn, startPos, startPos, "")
	case l.ch == '=':
		if l.peek() == '=' {
			return double(EQ)
		}
		return single(ASSIGN)
	case l.ch == '!':
		if l.peek() == '=' {
			return double(NOT_EQ)
		}
		return single(BANG)
	case l.ch == '<':
		if l.peek() == '=' {
			return double(LE)
		}
		return single(LT)
	case l.ch == '>':
		if l.peek() == '=' {
			return double(GE)
		}
		return single(GT)
	case l.ch == '&' && l.peek() == '&':
		return double(AND)
	case l.ch == '|' && l.peek() == '|':
		return double(OR)
	case l.ch == '-':
		if l.peek() == '>' {
			return double(ARROW)
		}
		return single(MINUS)
	case l.ch == '+':
		return single(PLUS)
	case l.ch == '*':
		return single(ASTERISK)
	case l.ch == '/':
		return single(SLASH)
	case l.ch == ',':
		return single(COMMA)
	case l.ch == ';':
		return single(SEMICOLON)
	case l.ch == ':':
		return single(COLON)
	case l.ch == '(':
		return single(LPAREN)
	case l.ch == ')':
		return single(RPAREN)
	case l.ch == '{':
		return single(LBRACE)
	case l.ch == '}':
		return single(RBRACE)
	case l.ch == '"':
		value, _ := l.readString(startLine, startColumn, startPos)
		return l.makeToken(STRING, startLine, startColumn, startPos, l.pos, value)
	case isLetter(l.ch):
		ident := l.readIdentifier()
		return l.makeToken(LookupIdent(ident), startLine, startColumn, startPos, l.pos, ident)
	case isDigit(l.ch):
		num := l.readNumber()
		return l.makeToken(INT, startLine, startColumn, startPos, l.pos, num)
	default:
		ch := l.ch
		l.addError(ErrIllegalRune, fmt.Sprintf("illegal character %q", ch), Span{
			Filename: l.filename,
			Line:     startLine,
			Column:   startColumn,
			Start:    startPos,
			End:      startPos + 1,
		})
		return single(ILLEGAL)
	}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}
