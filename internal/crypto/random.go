package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	mathrand "math/rand/v2"
)

var ErrInvalidBound = errors.New("random bound must be positive")

// Source draws uniform integers in [0, n).
type Source interface {
	IntN(n int) (int, error)
}

// SecureSource reads from the operating system entropy pool via crypto/rand.
// It is safe for concurrent use.
type SecureSource struct{}

// IntN returns a uniform random int in [0, n) using crypto/rand.
func (SecureSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading system entropy: %w", err)
	}
	return int(v.Int64()), nil
}

// FastSource uses the math/rand/v2 global generator. Statistically random but
// not suitable for secrets.
type FastSource struct{}

// IntN returns a uniform random int in [0, n).
func (FastSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}
	return mathrand.IntN(n), nil
}

// Choice picks one element of pool.
func Choice[T any](src Source, pool []T) (T, error) {
	var zero T
	i, err := src.IntN(len(pool))
	if err != nil {
		return zero, err
	}
	return pool[i], nil
}

// Shuffle performs an in-place Fisher-Yates shuffle.
func Shuffle[T any](src Source, data []T) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := src.IntN(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

// Sample returns k distinct positions of population in random order. The
// population is not modified. A sparse partial Fisher-Yates keeps the cost
// proportional to k rather than to the population size.
func Sample[T any](src Source, population []T, k int) ([]T, error) {
	n := len(population)
	if k < 0 || k > n {
		return nil, fmt.Errorf("sample size %d out of range for population of %d", k, n)
	}

	swapped := make(map[int]int, k)
	at := func(i int) int {
		if v, ok := swapped[i]; ok {
			return v
		}
		return i
	}

	out := make([]T, k)
	for i := 0; i < k; i++ {
		off, err := src.IntN(n - i)
		if err != nil {
			return nil, err
		}
		j := i + off
		vi, vj := at(i), at(j)
		swapped[i], swapped[j] = vj, vi
		out[i] = population[vj]
	}
	return out, nil
}

// Digit returns a random ASCII digit.
func Digit(src Source) (byte, error) {
	d, err := src.IntN(10)
	if err != nil {
		return 0, err
	}
	return byte('0' + d), nil
}

// digits draws n independent random digits.
func digits(src Source, n int) (string, error) {
	buf := make([]byte, n)
	for i := range buf {
		d, err := Digit(src)
		if err != nil {
			return "", err
		}
		buf[i] = d
	}
	return string(buf), nil
}
