package prime

import (
	"math"
	"testing"
)

// sieve returns primality for every n < limit.
func sieve(limit int) []bool {
	isPrime := make([]bool, limit)
	for i := 2; i < limit; i++ {
		isPrime[i] = true
	}
	for i := 2; i*i < limit; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j < limit; j += i {
			isPrime[j] = false
		}
	}
	return isPrime
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name string
		n    uint64
		want bool
	}{
		{"zero", 0, false},
		{"one", 1, false},
		{"two", 2, true},
		{"three", 3, true},
		{"four", 4, false},
		{"five", 5, true},
		{"square of five", 25, false},
		{"square of seven", 49, false},
		{"seventeen", 17, true},
		{"ninety-seven", 97, true},
		{"one hundred", 100, false},
		{"carmichael 561", 561, false},
		{"carmichael 1105", 1105, false},
		{"carmichael 41041", 41041, false},
		{"largest 32-bit prime", 4294967291, true},
		{"largest 63-bit mersenne", 9223372036854775807, false},
		{"max uint64", math.MaxUint64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPrime(tt.n); got != tt.want {
				t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestIsPrime_MatchesSieve(t *testing.T) {
	const limit = 100000
	want := sieve(limit)
	for n := 0; n < limit; n++ {
		if got := IsPrime(uint64(n)); got != want[n] {
			t.Fatalf("IsPrime(%d) = %v, want %v", n, got, want[n])
		}
	}
}

func TestIsPrime_EvenAboveTwo(t *testing.T) {
	for n := uint64(4); n < 20000; n += 2 {
		if IsPrime(n) {
			t.Fatalf("IsPrime(%d) = true for even number", n)
		}
	}
	for _, n := range []uint64{math.MaxUint64 - 1, 1 << 63, 1 << 32} {
		if IsPrime(n) {
			t.Errorf("IsPrime(%d) = true for even number", n)
		}
	}
}

func TestIsPrime_MultipleOfThree(t *testing.T) {
	for n := uint64(6); n < 30000; n += 3 {
		if IsPrime(n) {
			t.Fatalf("IsPrime(%d) = true for multiple of 3", n)
		}
	}
	// 2^64-1 is odd and divisible by 3.
	if IsPrime(math.MaxUint64) {
		t.Error("IsPrime(2^64-1) = true, want false")
	}
}

// The cases below run the loop to its bound near 2^32 iterations of the
// wheel and take several seconds each.

func TestIsPrime_LargestUint64Prime(t *testing.T) {
	if testing.Short() {
		t.Skip("full trial division near 2^64")
	}
	const n = 18446744073709551557
	if !IsPrime(n) {
		t.Errorf("IsPrime(%d) = false, want true", uint64(n))
	}
}

func TestIsPrime_SquareNearBound(t *testing.T) {
	if testing.Short() {
		t.Skip("full trial division near 2^64")
	}
	// 4294967291^2; its only divisor is found on the last iteration.
	const n = 18446744030759878681
	if IsPrime(n) {
		t.Errorf("IsPrime(%d) = true, want false", uint64(n))
	}
}

func BenchmarkIsPrime_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(97)
	}
}

func BenchmarkIsPrime_32BitPrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		IsPrime(4294967291)
	}
}
