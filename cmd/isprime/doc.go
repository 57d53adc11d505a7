// Isprime reports whether a non-negative integer is prime.
//
// The number is tested with exact trial division over the 6k±1 wheel and may
// be anything up to 18446744073709551615 (2^64 - 1).
//
// Usage:
//
//	isprime 97        # prints true
//	isprime 100       # prints false
//	isprime --help    # prints usage
//
// Invalid or out-of-range input is reported on stderr with exit status 1.
package main
