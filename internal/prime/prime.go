package prime

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	// Candidates are 6k-1 (i) and 6k+1 (i+2). Keep the bound as a division:
	// i*i wraps for n near 2^64.
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}
