package passgen

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"toolbox/internal/apperrors"
)

const (
	MinLength     = 6
	MaxLength     = 64
	DefaultLength = 12

	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	ErrNoCharacterClass = apperrors.Validation("Select at least one character type!")
	ErrLength           = apperrors.Validation("Password length must be between 6 and 64.")
	ErrNothingToCopy    = apperrors.Validation("No password to copy!")
)

// Options selects the password length and the character classes drawn from.
type Options struct {
	Length  int
	Upper   bool
	Lower   bool
	Digits  bool
	Symbols bool
}

// DefaultOptions enables letters and digits without symbols.
func DefaultOptions() Options {
	return Options{Length: DefaultLength, Upper: true, Lower: true, Digits: true}
}

// Pool concatenates the enabled classes in a fixed order.
func (options Options) Pool() string {
	var b strings.Builder
	if options.Upper {
		b.WriteString(Uppercase)
	}
	if options.Lower {
		b.WriteString(Lowercase)
	}
	if options.Digits {
		b.WriteString(Digits)
	}
	if options.Symbols {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Validate reports ErrNoCharacterClass when no class is selected.
func (options Options) Validate() error {
	if options.Pool() == "" {
		return ErrNoCharacterClass
	}
	if options.Length < MinLength || options.Length > MaxLength {
		return ErrLength
	}
	return nil
}

// Generate draws Length characters uniformly, with replacement, from the
// pool using crypto/rand.
func Generate(o Options) (string, error) {
	return generate(rand.Reader, o)
}

func generate(random io.Reader, o Options) (string, error) {
	if err := o.Validate(); err != nil {
		return "", err
	}
	pool := o.Pool()
	limit := big.NewInt(int64(len(pool)))
	out := make([]byte, o.Length)
	for i := range out {
		n, err := rand.Int(random, limit)
		if err != nil {
			return "", err
		}
		out[i] = pool[n.Int64()]
	}
	return string(out), nil
}
