package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

func boolPtr(b bool) *bool       { return &b }
func stringPtr(s string) *string { return &s }

var testVocabulary = []string{"apple", "breeze", "canyon", "dolphin", "ember", "forest", "garden", "harbor"}

type fakeRecorder struct {
	events []model.GenerationEvent
	err    error
}

func (f *fakeRecorder) Record(_ context.Context, event *model.GenerationEvent) error {
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, *event)
	return nil
}

func newTestGeneratorService() *GeneratorService {
	return NewGeneratorService(testVocabulary, nil)
}

func TestGenerate_Defaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != "random" {
		t.Errorf("expected type random, got %q", resp.Type)
	}
	if resp.Length != 16 {
		t.Errorf("expected length 16, got %d", resp.Length)
	}
	if len(resp.Password) != 16 {
		t.Errorf("expected password length 16, got %d", len(resp.Password))
	}
	for _, c := range resp.Password {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) {
			t.Errorf("unexpected symbol %q with default options", c)
		}
	}
	if resp.Assessment != crypto.Assess(resp.Password) {
		t.Errorf("assessment does not match the returned password")
	}
}

func TestGenerate_CustomOptions(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q in password with only uppercase+lowercase", c)
		}
	}
}

func TestGenerate_TypeIsCaseInsensitive(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Type: " PIN "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Type != "pin" {
		t.Errorf("expected type pin, got %q", resp.Type)
	}
}

func TestGenerate_Memorable(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{
		Type:         "memorable",
		Words:        3,
		Separator:    stringPtr("."),
		Capitalize:   boolPtr(false),
		SuffixLength: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(resp.Password, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 words, got %q", resp.Password)
	}
	last := parts[2]
	if len(last) < 2 {
		t.Fatalf("last part %q too short for a suffix", last)
	}
	for _, c := range last[len(last)-2:] {
		if !unicode.IsDigit(c) {
			t.Errorf("expected digit suffix, got %q", resp.Password)
		}
	}
	parts[2] = last[:len(last)-2]

	for _, w := range parts {
		found := false
		for _, v := range testVocabulary {
			if w == v {
				found = true
			}
		}
		if !found {
			t.Errorf("word %q is not from the vocabulary", w)
		}
	}
}

func TestGenerate_MemorableDefaults(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Type: "memorable"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	parts := strings.Split(resp.Password, "-")
	if len(parts) != 4 {
		t.Fatalf("expected 4 words joined by '-', got %q", resp.Password)
	}
	for _, w := range parts {
		if !unicode.IsUpper(rune(w[0])) {
			t.Errorf("expected capitalised word, got %q", w)
		}
	}
}

func TestGenerate_PIN(t *testing.T) {
	svc := newTestGeneratorService()
	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Type: "pin", Length: 8, AvoidSequential: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Password) != 8 {
		t.Errorf("expected 8 digits, got %q", resp.Password)
	}
	for _, c := range resp.Password {
		if c < '0' || c > '9' {
			t.Errorf("unexpected character %q in PIN", c)
		}
	}
}

func TestGenerate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     model.GenerateRequest
		wantErr error
	}{
		{"unknown type", model.GenerateRequest{Type: "passphrase"}, ErrUnknownType},
		{"random length negative", model.GenerateRequest{Length: -1}, ErrLengthOutOfRange},
		{"random length too long", model.GenerateRequest{Length: 200}, ErrLengthOutOfRange},
		{"pin length too long", model.GenerateRequest{Type: "pin", Length: 33}, ErrLengthOutOfRange},
		{"too many words", model.GenerateRequest{Type: "memorable", Words: 17}, ErrWordCountOutOfRange},
		{"negative suffix", model.GenerateRequest{Type: "memorable", SuffixLength: -1}, ErrSuffixOutOfRange},
		{"suffix too long", model.GenerateRequest{Type: "memorable", SuffixLength: 13}, ErrSuffixOutOfRange},
		{"separator too long", model.GenerateRequest{Type: "memorable", Separator: stringPtr("----")}, ErrSeparatorTooLong},
		{"vocabulary too small", model.GenerateRequest{Type: "memorable", Words: 9}, crypto.ErrVocabularyTooSmall},
		{
			"no character types",
			model.GenerateRequest{
				Uppercase: boolPtr(false),
				Lowercase: boolPtr(false),
				Numbers:   boolPtr(false),
				Symbols:   boolPtr(false),
			},
			crypto.ErrEmptyPool,
		},
		{
			"no repeat beyond pool",
			model.GenerateRequest{Length: 11, Uppercase: boolPtr(false), Lowercase: boolPtr(false), NoRepeat: true},
			crypto.ErrPoolTooSmall,
		},
	}

	svc := newTestGeneratorService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Generate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGenerate_RecordsEventWithoutPassword(t *testing.T) {
	rec := &fakeRecorder{}
	svc := NewGeneratorService(testVocabulary, rec)

	resp, err := svc.Generate(context.Background(), model.GenerateRequest{Type: "pin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rec.events) != 1 {
		t.Fatalf("expected 1 recorded event, got %d", len(rec.events))
	}

	ev := rec.events[0]
	if ev.Type != "pin" || ev.Length != 6 {
		t.Errorf("unexpected event %+v", ev)
	}
	if ev.Score != resp.Assessment.Score || ev.Label != string(resp.Assessment.Label) {
		t.Errorf("event strength %d/%s does not match response %d/%s",
			ev.Score, ev.Label, resp.Assessment.Score, resp.Assessment.Label)
	}
	if ev.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestGenerate_RecorderFailureIsNotFatal(t *testing.T) {
	svc := NewGeneratorService(testVocabulary, &fakeRecorder{err: errors.New("database is locked")})

	if _, err := svc.Generate(context.Background(), model.GenerateRequest{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGenerate_FailedGenerationIsNotRecorded(t *testing.T) {
	rec := &fakeRecorder{}
	svc := NewGeneratorService(testVocabulary, rec)

	if _, err := svc.Generate(context.Background(), model.GenerateRequest{Type: "nope"}); err == nil {
		t.Fatal("expected error for unknown type")
	}
	if len(rec.events) != 0 {
		t.Errorf("expected no events, got %d", len(rec.events))
	}
}

func TestNewGenerator_Reusable(t *testing.T) {
	svc := newTestGeneratorService()
	kind, gen, err := svc.NewGenerator(model.GenerateRequest{Type: "random", Length: 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kind != crypto.KindRandom {
		t.Errorf("expected kind random, got %q", kind)
	}

	seen := make(map[string]bool)
	for range 5 {
		pw, err := gen.Generate()
		if err != nil {
			t.Fatalf("Generate() unexpected error: %v", err)
		}
		if len(pw) != 20 {
			t.Errorf("expected length 20, got %d", len(pw))
		}
		seen[pw] = true
	}
	if len(seen) < 5 {
		t.Errorf("expected 5 distinct passwords, got %d", len(seen))
	}
}
