package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

const (
	maxRandomLength    = 128
	maxWords           = 16
	maxSuffixLength    = 12
	maxSeparatorLength = 3
	maxPINLength       = 32
)

var (
	ErrUnknownType         = errors.New("unknown type, expected random, memorable or pin")
	ErrLengthOutOfRange    = errors.New("length out of range")
	ErrWordCountOutOfRange = errors.New("words must be between 1 and 16")
	ErrSuffixOutOfRange    = errors.New("suffix_length must be between 0 and 12")
	ErrSeparatorTooLong    = errors.New("separator must be at most 3 characters")
)

// StatsRecorder stores anonymous generation events.
type StatsRecorder interface {
	Record(ctx context.Context, event *model.GenerationEvent) error
}

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	vocabulary []string
	recorder   StatsRecorder
}

// NewGeneratorService creates a new GeneratorService. vocabulary backs the
// memorable generator; recorder may be nil to disable statistics.
func NewGeneratorService(vocabulary []string, recorder StatsRecorder) *GeneratorService {
	return &GeneratorService{vocabulary: vocabulary, recorder: recorder}
}

// NewGenerator resolves req into a configured generator, applying defaults for
// missing fields and enforcing request bounds.
func (s *GeneratorService) NewGenerator(req model.GenerateRequest) (crypto.Kind, crypto.Generator, error) {
	kind := crypto.Kind(strings.ToLower(strings.TrimSpace(req.Type)))
	if kind == "" {
		kind = crypto.KindRandom
	}

	switch kind {
	case crypto.KindRandom:
		gen, err := s.randomGenerator(req)
		return kind, gen, err
	case crypto.KindMemorable:
		gen, err := s.memorableGenerator(req)
		return kind, gen, err
	case crypto.KindPIN:
		gen, err := s.pinGenerator(req)
		return kind, gen, err
	default:
		return "", nil, ErrUnknownType
	}
}

// Generate produces a password based on the given request.
func (s *GeneratorService) Generate(ctx context.Context, req model.GenerateRequest) (model.GenerateResponse, error) {
	kind, gen, err := s.NewGenerator(req)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	password, err := gen.Generate()
	if err != nil {
		return model.GenerateResponse{}, err
	}

	assessment := crypto.Assess(password)
	s.record(ctx, kind, assessment)

	return model.GenerateResponse{
		Type:       string(kind),
		Password:   password,
		Length:     assessment.Length,
		Assessment: assessment,
	}, nil
}

func (s *GeneratorService) randomGenerator(req model.GenerateRequest) (crypto.Generator, error) {
	opts := crypto.DefaultRandomOptions()
	if req.Length != 0 {
		opts.Length = req.Length
	}
	if opts.Length < 1 || opts.Length > maxRandomLength {
		return nil, ErrLengthOutOfRange
	}

	opts.Uppercase = boolOrDefault(req.Uppercase, opts.Uppercase)
	opts.Lowercase = boolOrDefault(req.Lowercase, opts.Lowercase)
	opts.Digits = boolOrDefault(req.Numbers, opts.Digits)
	opts.Symbols = boolOrDefault(req.Symbols, opts.Symbols)
	opts.ExcludeSimilar = req.ExcludeSimilar
	opts.NoRepeat = req.NoRepeat
	opts.Secure = boolOrDefault(req.Secure, opts.Secure)

	return crypto.NewRandomGenerator(opts)
}

func (s *GeneratorService) memorableGenerator(req model.GenerateRequest) (crypto.Generator, error) {
	opts := crypto.DefaultMemorableOptions()
	if req.Words != 0 {
		opts.Words = req.Words
	}
	if opts.Words < 1 || opts.Words > maxWords {
		return nil, ErrWordCountOutOfRange
	}
	if req.SuffixLength < 0 || req.SuffixLength > maxSuffixLength {
		return nil, ErrSuffixOutOfRange
	}

	opts.Separator = stringOrDefault(req.Separator, opts.Separator)
	if utf8.RuneCountInString(opts.Separator) > maxSeparatorLength {
		return nil, ErrSeparatorTooLong
	}
	opts.Capitalize = boolOrDefault(req.Capitalize, opts.Capitalize)
	opts.SuffixLength = req.SuffixLength
	opts.Vocabulary = s.vocabulary

	return crypto.NewMemorableGenerator(opts)
}

func (s *GeneratorService) pinGenerator(req model.GenerateRequest) (crypto.Generator, error) {
	opts := crypto.DefaultPINOptions()
	if req.Length != 0 {
		opts.Length = req.Length
	}
	if opts.Length < 1 || opts.Length > maxPINLength {
		return nil, ErrLengthOutOfRange
	}
	opts.AvoidSequential = req.AvoidSequential

	return crypto.NewPINGenerator(opts)
}

func (s *GeneratorService) record(ctx context.Context, kind crypto.Kind, a crypto.Assessment) {
	if s.recorder == nil {
		return
	}

	event := &model.GenerationEvent{
		Type:        string(kind),
		Length:      a.Length,
		Score:       a.Score,
		Label:       string(a.Label),
		EntropyBits: a.EntropyBits,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.recorder.Record(ctx, event); err != nil {
		slog.Warn("failed to record generation event", "type", kind, "error", err)
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func stringOrDefault(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}
