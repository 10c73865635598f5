package crypto

import "errors"

var (
	ErrEmptyPool          = errors.New("character pool is empty, enable at least one character type")
	ErrPoolTooSmall       = errors.New("not enough distinct characters for a password without repeats")
	ErrVocabularyTooSmall = errors.New("vocabulary too small for the requested number of unique words")
	ErrInvalidLength      = errors.New("length must be at least 1")
	ErrInvalidWordCount   = errors.New("word count must be at least 1")
)

// Generator produces one password per call. Implementations hold only
// immutable configuration and are safe for concurrent use.
type Generator interface {
	Generate() (string, error)
}

// Kind identifies a generation strategy.
type Kind string

const (
	KindRandom    Kind = "random"
	KindMemorable Kind = "memorable"
	KindPIN       Kind = "pin"
)

// DisplayName returns the human-readable name used in exports.
func (k Kind) DisplayName() string {
	switch k {
	case KindRandom:
		return "Random Password"
	case KindMemorable:
		return "Memorable Password"
	case KindPIN:
		return "PIN Code"
	default:
		return string(k)
	}
}

// Valid reports whether k names a known strategy.
func (k Kind) Valid() bool {
	switch k {
	case KindRandom, KindMemorable, KindPIN:
		return true
	}
	return false
}
