package calc

import "strings"

// Keys accepted by Press besides digits, operators and parentheses.
const (
	KeyEquals    = "="
	KeyClear     = "C"
	KeyBackspace = "⌫"
)

// Calculator holds the expression being typed.
type Calculator struct {
	expr string
}

// Expression returns the pending expression text.
func (calculator *Calculator) Expression() string { return calculator.expr }

// Press applies one button or keyboard input and returns the new display.
func (calculator *Calculator) Press(key string) string {
	switch key {
	case KeyClear:
		calculator.expr = ""
		return calculator.expr
	case KeyEquals:
		return calculator.evaluate()
	case KeyBackspace:
		if calculator.expr != "" {
			calculator.expr = calculator.expr[:len(calculator.expr)-1]
		}
		return calculator.expr
	}
	if IsInputKey(key) {
		calculator.expr += key
	}
	return calculator.expr
}

func (calculator *Calculator) evaluate() string {
	value, err := Evaluate(calculator.expr)
	if err != nil {
		calculator.expr = ""
		return ErrorText
	}
	calculator.expr = FormatResult(value)
	return calculator.expr
}

// IsInputKey reports whether key appends to the expression.
func IsInputKey(key string) bool {
	return len(key) == 1 && strings.Contains("0123456789.+-*/()", key)
}
