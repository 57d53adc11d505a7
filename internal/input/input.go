package input

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel parse failures. Exactly one is wrapped by every *Error.
var (
	ErrEmpty            = errors.New("empty input")
	ErrInvalidCharacter = errors.New("invalid character")
	ErrOverflow         = errors.New("value out of range")
)

// Error records a failed Parse and the text that caused it.
type Error struct {
	Input string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Parse converts text to the uint64 it denotes in base 10.
//
// No sign, whitespace, base prefix or digit separator is accepted. A digit run
// that overflows is reported as ErrOverflow even if a bad character follows it.
func Parse(text string) (uint64, error) {
	if text == "" {
		return 0, &Error{Input: text, Err: ErrEmpty}
	}

	// Base 10 (not 0) keeps ParseUint from honoring 0x prefixes or underscores,
	// and ParseUint never accepts a sign.
	n, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, &Error{Input: text, Err: ErrOverflow}
		}
		return 0, &Error{Input: text, Err: ErrInvalidCharacter}
	}
	return n, nil
}
