// Package prime classifies unsigned 64-bit integers as prime or composite.
//
// [IsPrime] uses deterministic trial division over the 6k±1 wheel, so it is
// exact for every uint64 (no probabilistic shortcuts that a Carmichael number
// could fool). The loop bound is computed as i <= n/i; i*i overflows once i
// approaches 2^32.
package prime
