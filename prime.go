package primehash

// Returns the smallest odd prime that is >= n.
// Every capacity a table ever takes goes through here, so it's always prime.
func NextPrime(n int) int {
	if n < 3 {
		return 3
	}

	if n%2 == 0 {
		n++
	}

	for !IsPrime(n) {
		n += 2
	}

	return n
}

// Reports whether n is prime, using trial division by odd factors up to sqrt(n).
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}

	if n < 2 || n%2 == 0 {
		return false
	}

	for f := 3; f*f <= n; f += 2 {
		if n%f == 0 {
			return false
		}
	}

	return true
}
