// Package calc evaluates the arithmetic typed into the calculator panel.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrorText is what the display shows after any failed evaluation.
const ErrorText = "Error"

var (
	ErrEmpty          = errors.New("empty expression")
	ErrDivisionByZero = errors.New("division by zero")
	ErrNotFinite      = errors.New("result is not finite")
)

// SyntaxError reports the offset where parsing stopped.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %s", e.Pos, e.Msg)
}

// Evaluate parses expr and computes its value. Supported syntax is decimal
// numbers, unary plus and minus, + - * / with the usual precedence, and
// parentheses.
func Evaluate(expr string) (float64, error) {
	if strings.TrimSpace(expr) == "" {
		return 0, ErrEmpty
	}
	p := &parser{src: expr}
	value, err := p.expression()
	if err != nil {
		return 0, err
	}
	p.skipSpace()
	if p.pos < len(p.src) {
		return 0, p.fail("unexpected %q", p.src[p.pos])
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, ErrNotFinite
	}
	return value, nil
}

// FormatResult renders a value the way the display shows it.
func FormatResult(value float64) string {
	if value == 0 {
		// avoid "-0"
		value = 0
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}

type parser struct {
	src string
	pos int
}

func (p *parser) fail(format string, args ...any) error {
	return &SyntaxError{Pos: p.pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

// expression := term (('+' | '-') term)*
func (p *parser) expression() (float64, error) {
	left, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '+' && op != '-' {
			return left, nil
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return 0, err
		}
		if op == '+' {
			left += right
		} else {
			left -= right
		}
	}
}

// term := unary (('*' | '/') unary)*
func (p *parser) term() (float64, error) {
	left, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.unary()
		if err != nil {
			return 0, err
		}
		if op == '*' {
			left *= right
			continue
		}
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		left /= right
	}
}

func (p *parser) unary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		value, err := p.unary()
		return -value, err
	case '+':
		p.pos++
		return p.unary()
	}
	return p.primary()
}

func (p *parser) primary() (float64, error) {
	switch c := p.peek(); {
	case c == '(':
		p.pos++
		value, err := p.expression()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, p.fail("missing )")
		}
		p.pos++
		return value, nil
	case c == '.' || (c >= '0' && c <= '9'):
		return p.number()
	case c == 0:
		return 0, p.fail("unexpected end of expression")
	default:
		return 0, p.fail("unexpected %q", c)
	}
}

func (p *parser) number() (float64, error) {
	start := p.pos
	dots := 0
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '.' {
			dots++
		} else if c < '0' || c > '9' {
			break
		}
		p.pos++
	}
	literal := p.src[start:p.pos]
	if dots > 1 || literal == "." {
		p.pos = start
		return 0, p.fail("malformed number %q", literal)
	}
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		p.pos = start
		return 0, p.fail("malformed number %q", literal)
	}
	return value, nil
}
