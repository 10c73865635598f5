// Package wordlist supplies vocabularies for memorable passphrases.
package wordlist

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/passgen/passgen-go/internal/crypto"
)

//go:embed words.txt
var embedded []byte

// Default returns the embedded English word list. Every entry already passes
// crypto.FilterVocabulary.
func Default() []string {
	words, _ := parse(bytes.NewReader(embedded))
	return words
}

// LoadFile reads one word per line from path, skipping blank lines and
// lines starting with '#', and keeps only usable vocabulary words.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word list: %w", err)
	}
	defer f.Close()

	words, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("reading word list %s: %w", path, err)
	}
	return crypto.FilterVocabulary(words), nil
}

// Provider returns a vocabulary provider backed by path, or by the embedded
// list when path is empty.
func Provider(path string) crypto.VocabularyProvider {
	if path == "" {
		return func() ([]string, error) { return Default(), nil }
	}
	return func() ([]string, error) { return LoadFile(path) }
}

// Load resolves the vocabulary once so it can be shared by every generator.
func Load(path string) ([]string, error) {
	words, err := Provider(path)()
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list %q has no usable words", path)
	}
	return words, nil
}

func parse(r io.Reader) ([]string, error) {
	var words []string
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		// Duplicates would let the same word appear twice in one phrase.
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		words = append(words, line)
	}
	return words, scanner.Err()
}
