// Package cli wires the isprime command-line surface.
//
// It defines a single Cobra root command that takes one positional integer,
// hands it to the input parser and the primality test, prints the verdict,
// and maps every failure to a message on stderr and a deterministic exit code.
package cli
