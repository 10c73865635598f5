package crypto

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	minWordLength = 4
	maxWordLength = 8
)

// VocabularyProvider supplies candidate words for memorable passphrases.
type VocabularyProvider func() ([]string, error)

// MemorableOptions configures the word-phrase generator.
type MemorableOptions struct {
	Words      int
	Separator  string
	Capitalize bool
	// Vocabulary is used as given when non-nil.
	Vocabulary []string
	// Provider is consulted when Vocabulary is nil; its words are filtered
	// with FilterVocabulary.
	Provider     VocabularyProvider
	SuffixLength int
}

// DefaultMemorableOptions returns four capitalised words joined by "-". It
// carries no vocabulary: callers must set Vocabulary or Provider (for example
// wordlist.Provider) before calling NewMemorableGenerator, which otherwise
// fails with ErrVocabularyTooSmall.
func DefaultMemorableOptions() MemorableOptions {
	return MemorableOptions{
		Words:      4,
		Separator:  "-",
		Capitalize: true,
	}
}

// MemorableGenerator builds passphrases out of distinct dictionary words.
type MemorableGenerator struct {
	words        int
	separator    string
	capitalize   bool
	vocabulary   []string
	suffixLength int
	src          Source
}

// NewMemorableGenerator resolves the vocabulary and checks that it holds
// enough distinct words.
func NewMemorableGenerator(opts MemorableOptions) (*MemorableGenerator, error) {
	if opts.Words < 1 {
		return nil, ErrInvalidWordCount
	}

	vocab := opts.Vocabulary
	if vocab == nil && opts.Provider != nil {
		raw, err := opts.Provider()
		if err != nil {
			return nil, fmt.Errorf("loading vocabulary: %w", err)
		}
		vocab = FilterVocabulary(raw)
	}

	if len(vocab) < opts.Words {
		return nil, fmt.Errorf("%w: %d words available, %d requested",
			ErrVocabularyTooSmall, len(vocab), opts.Words)
	}

	return &MemorableGenerator{
		words:        opts.Words,
		separator:    opts.Separator,
		capitalize:   opts.Capitalize,
		vocabulary:   vocab,
		suffixLength: max(opts.SuffixLength, 0),
		src:          SecureSource{},
	}, nil
}

// Generate returns a passphrase such as "Correct-Horse-Battery-Staple42".
func (g *MemorableGenerator) Generate() (string, error) {
	chosen, err := Sample(g.src, g.vocabulary, g.words)
	if err != nil {
		return "", err
	}

	if g.capitalize {
		for i, w := range chosen {
			chosen[i] = capitalizeFirst(w)
		}
	}

	phrase := strings.Join(chosen, g.separator)

	if g.suffixLength > 0 {
		suffix, err := digits(g.src, g.suffixLength)
		if err != nil {
			return "", err
		}
		phrase += suffix
	}

	return phrase, nil
}

// capitalizeFirst upper-cases the first rune and leaves the rest untouched.
func capitalizeFirst(w string) string {
	r, size := utf8.DecodeRuneInString(w)
	if r == utf8.RuneError {
		return w
	}
	return string(unicode.ToUpper(r)) + w[size:]
}

// FilterVocabulary keeps lowercase alphabetic words of 4 to 8 letters.
func FilterVocabulary(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if isVocabularyWord(w) {
			out = append(out, w)
		}
	}
	return out
}

func isVocabularyWord(w string) bool {
	n := utf8.RuneCountInString(w)
	if n < minWordLength || n > maxWordLength {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) || !unicode.IsLower(r) {
			return false
		}
	}
	return true
}
