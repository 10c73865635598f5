package crypto

import (
	"fmt"
	"strings"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	digitChars     = "0123456789"
	symbolChars    = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// similarChars are easily confused when read back: O/0 and l/I/1.
	similarChars = "O0lI1"
)

// RandomOptions configures the random-character generator.
type RandomOptions struct {
	Length         int
	Uppercase      bool
	Lowercase      bool
	Digits         bool
	Symbols        bool
	ExcludeSimilar bool
	NoRepeat       bool
	Secure         bool
}

// DefaultRandomOptions returns 16 characters from letters and digits drawn
// from the secure source.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{
		Length:    16,
		Uppercase: true,
		Lowercase: true,
		Digits:    true,
		Secure:    true,
	}
}

// RandomGenerator draws characters from a pool built out of the enabled classes.
type RandomGenerator struct {
	length   int
	noRepeat bool
	pool     []byte
	src      Source
}

// NewRandomGenerator builds the character pool. An empty pool is not an error
// here; callers can inspect Pool and Generate reports ErrEmptyPool.
func NewRandomGenerator(opts RandomOptions) (*RandomGenerator, error) {
	if opts.Length < 1 {
		return nil, ErrInvalidLength
	}

	var sb strings.Builder
	if opts.Uppercase {
		sb.WriteString(uppercaseChars)
	}
	if opts.Lowercase {
		sb.WriteString(lowercaseChars)
	}
	if opts.Digits {
		sb.WriteString(digitChars)
	}
	if opts.Symbols {
		sb.WriteString(symbolChars)
	}

	pool := []byte(sb.String())
	if opts.ExcludeSimilar {
		filtered := pool[:0]
		for _, ch := range pool {
			if strings.IndexByte(similarChars, ch) < 0 {
				filtered = append(filtered, ch)
			}
		}
		pool = filtered
	}

	var src Source = SecureSource{}
	if !opts.Secure {
		src = FastSource{}
	}

	return &RandomGenerator{
		length:   opts.Length,
		noRepeat: opts.NoRepeat,
		pool:     pool,
		src:      src,
	}, nil
}

// Pool returns the characters the generator draws from.
func (g *RandomGenerator) Pool() string {
	return string(g.pool)
}

// Generate returns a password of the configured length.
func (g *RandomGenerator) Generate() (string, error) {
	if len(g.pool) == 0 {
		return "", ErrEmptyPool
	}

	if g.noRepeat {
		if g.length > len(g.pool) {
			return "", fmt.Errorf("%w: %d unique characters requested from a pool of %d",
				ErrPoolTooSmall, g.length, len(g.pool))
		}
		shuffled := make([]byte, len(g.pool))
		copy(shuffled, g.pool)
		if err := Shuffle(g.src, shuffled); err != nil {
			return "", err
		}
		return string(shuffled[:g.length]), nil
	}

	result := make([]byte, g.length)
	for i := range result {
		ch, err := Choice(g.src, g.pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}
	return string(result), nil
}
