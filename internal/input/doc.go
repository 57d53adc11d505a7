// Package input validates command-line text before it reaches the primality
// test.
//
// [Parse] accepts only base-10 ASCII digits and returns the exact uint64 they
// denote. Failures are reported as [*Error] wrapping one of [ErrEmpty],
// [ErrInvalidCharacter] or [ErrOverflow]; match them with errors.Is.
package input
