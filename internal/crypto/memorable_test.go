package crypto

import (
	"errors"
	"strings"
	"testing"
	"unicode"
)

var testVocabulary = []string{
	"apple", "river", "stone", "cloud", "maple", "tiger", "lemon", "pearl",
	"orbit", "candle", "forest", "garden", "harbor", "island", "jungle", "kettle",
}

func TestNewMemorableGenerator(t *testing.T) {
	tests := []struct {
		name    string
		opts    MemorableOptions
		wantErr error
	}{
		{
			name: "defaults with vocabulary",
			opts: func() MemorableOptions {
				o := DefaultMemorableOptions()
				o.Vocabulary = testVocabulary
				return o
			}(),
		},
		{
			name:    "defaults without vocabulary",
			opts:    DefaultMemorableOptions(),
			wantErr: ErrVocabularyTooSmall,
		},
		{
			name: "vocabulary exactly the word count",
			opts: MemorableOptions{Words: 3, Vocabulary: []string{"alpha", "bravo", "delta"}},
		},
		{
			name:    "vocabulary too small",
			opts:    MemorableOptions{Words: 4, Vocabulary: []string{"alpha", "bravo", "delta"}},
			wantErr: ErrVocabularyTooSmall,
		},
		{
			name:    "no vocabulary at all",
			opts:    MemorableOptions{Words: 1},
			wantErr: ErrVocabularyTooSmall,
		},
		{
			name:    "zero words",
			opts:    MemorableOptions{Words: 0, Vocabulary: testVocabulary},
			wantErr: ErrInvalidWordCount,
		},
		{
			name: "provider is filtered",
			opts: MemorableOptions{Words: 2, Provider: func() ([]string, error) {
				return []string{"Alpha", "be", "toolongword", "it's", "bravo", "delta"}, nil
			}},
		},
		{
			name: "provider filtered below word count",
			opts: MemorableOptions{Words: 3, Provider: func() ([]string, error) {
				return []string{"Alpha", "be", "bravo", "delta"}, nil
			}},
			wantErr: ErrVocabularyTooSmall,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMemorableGenerator(tt.opts)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("NewMemorableGenerator() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewMemorableGenerator() unexpected error: %v", err)
			}
		})
	}
}

func TestNewMemorableGeneratorProviderError(t *testing.T) {
	errLoad := errors.New("corpus missing")
	_, err := NewMemorableGenerator(MemorableOptions{Words: 2, Provider: func() ([]string, error) {
		return nil, errLoad
	}})
	if !errors.Is(err, errLoad) {
		t.Fatalf("NewMemorableGenerator() error = %v, want %v", err, errLoad)
	}
}

func TestMemorableGenerate(t *testing.T) {
	tests := []struct {
		name string
		opts MemorableOptions
	}{
		{"dash separator", MemorableOptions{Words: 4, Separator: "-", Vocabulary: testVocabulary}},
		{"multi-character separator", MemorableOptions{Words: 5, Separator: "::", Capitalize: true, Vocabulary: testVocabulary}},
		{"with suffix", MemorableOptions{Words: 3, Separator: ".", Vocabulary: testVocabulary, SuffixLength: 4}},
		{"every word", MemorableOptions{Words: len(testVocabulary), Separator: "_", Vocabulary: testVocabulary, SuffixLength: 2}},
	}

	vocab := make(map[string]bool, len(testVocabulary))
	for _, w := range testVocabulary {
		vocab[w] = true
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewMemorableGenerator(tt.opts)
			if err != nil {
				t.Fatalf("NewMemorableGenerator() unexpected error: %v", err)
			}

			for i := 0; i < 25; i++ {
				phrase, err := g.Generate()
				if err != nil {
					t.Fatalf("Generate() unexpected error: %v", err)
				}

				body := phrase
				if tt.opts.SuffixLength > 0 {
					cut := len(phrase) - tt.opts.SuffixLength
					suffix := phrase[cut:]
					for _, r := range suffix {
						if !unicode.IsDigit(r) {
							t.Fatalf("suffix %q of %q is not numeric", suffix, phrase)
						}
					}
					body = phrase[:cut]
				}

				words := strings.Split(body, tt.opts.Separator)
				if len(words) != tt.opts.Words {
					t.Fatalf("phrase %q has %d words, want %d", phrase, len(words), tt.opts.Words)
				}

				seen := make(map[string]bool)
				for _, w := range words {
					lw := strings.ToLower(w)
					if !vocab[lw] {
						t.Errorf("word %q of %q is not in the vocabulary", w, phrase)
					}
					if seen[lw] {
						t.Errorf("word %q repeated in %q", w, phrase)
					}
					seen[lw] = true

					if tt.opts.Capitalize && !unicode.IsUpper([]rune(w)[0]) {
						t.Errorf("word %q of %q is not capitalised", w, phrase)
					}
				}
			}
		})
	}
}

func TestMemorableGenerateEmptySeparator(t *testing.T) {
	g, err := NewMemorableGenerator(MemorableOptions{
		Words: 3, Separator: "", Capitalize: true, Vocabulary: []string{"alpha", "bravo", "delta"},
	})
	if err != nil {
		t.Fatalf("NewMemorableGenerator() unexpected error: %v", err)
	}

	phrase, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if len(phrase) != 15 {
		t.Errorf("Generate() = %q, want 15 characters", phrase)
	}
	for _, w := range []string{"Alpha", "Bravo", "Delta"} {
		if !strings.Contains(phrase, w) {
			t.Errorf("Generate() = %q, missing %q", phrase, w)
		}
	}
}

func TestMemorableGenerateNegativeSuffix(t *testing.T) {
	g, err := NewMemorableGenerator(MemorableOptions{
		Words: 2, Separator: "-", Vocabulary: []string{"alpha", "bravo"}, SuffixLength: -3,
	})
	if err != nil {
		t.Fatalf("NewMemorableGenerator() unexpected error: %v", err)
	}
	phrase, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate() unexpected error: %v", err)
	}
	if strings.ContainsAny(phrase, digitChars) {
		t.Errorf("Generate() = %q, expected no suffix", phrase)
	}
}

func TestMemorableGenerateRandomisesOrder(t *testing.T) {
	g, err := NewMemorableGenerator(MemorableOptions{
		Words: 2, Separator: " ", Vocabulary: []string{"alpha", "bravo"},
	})
	if err != nil {
		t.Fatalf("NewMemorableGenerator() unexpected error: %v", err)
	}

	orders := make(map[string]bool)
	for i := 0; i < 200 && len(orders) < 2; i++ {
		phrase, err := g.Generate()
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		orders[phrase] = true
	}
	if len(orders) != 2 {
		t.Errorf("expected both word orders, saw %v", orders)
	}
}

func TestCapitalizeFirst(t *testing.T) {
	tests := map[string]string{
		"apple":  "Apple",
		"aPPLE":  "APPLE",
		"éclair": "Éclair",
		"":       "",
	}
	for in, want := range tests {
		if got := capitalizeFirst(in); got != want {
			t.Errorf("capitalizeFirst(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFilterVocabulary(t *testing.T) {
	in := []string{"word", "abc", "abcdefgh", "abcdefghi", "Capital", "with space", "it's", "naïve", "four4"}
	got := FilterVocabulary(in)
	want := []string{"word", "abcdefgh", "naïve"}

	if len(got) != len(want) {
		t.Fatalf("FilterVocabulary() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FilterVocabulary()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
