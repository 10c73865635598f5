package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

var ErrUnsupportedFormat = errors.New("unsupported export format, expected json, txt or yaml")

// Export formats.
const (
	FormatJSON = "json"
	FormatTXT  = "txt"
	FormatYAML = "yaml"
)

// ExportService turns passwords into downloadable records.
type ExportService struct {
	generator string
	now       func() time.Time
}

// NewExportService creates a new ExportService. generator identifies the
// producing program in every record, e.g. "passgen-go 1.0.0".
func NewExportService(generator string) *ExportService {
	return &ExportService{generator: generator, now: time.Now}
}

// Build assesses req.Password and fills an export record. Known kinds are
// stored by display name; anything else is stored verbatim.
func (s *ExportService) Build(req model.ExportRequest) (model.ExportRecord, error) {
	if req.Password == "" {
		return model.ExportRecord{}, ErrPasswordRequired
	}

	kind := crypto.Kind(strings.ToLower(req.Type))
	typeName := req.Type
	if kind.Valid() {
		typeName = kind.DisplayName()
	}

	a := crypto.Assess(req.Password)
	return model.ExportRecord{
		Password: req.Password,
		Type:     typeName,
		Strength: model.ExportStrength{
			Score: a.Score,
			Label: string(a.Label),
		},
		Length:      a.Length,
		CharsetSize: a.CharsetSize,
		EntropyBits: a.EntropyBits,
		CrackTime:   a.CrackTime,
		GeneratedAt: s.now().UTC(),
		Generator:   s.generator,
	}, nil
}

// Encode serialises record in the given format.
func (s *ExportService) Encode(record model.ExportRecord, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(record); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTXT:
		return []byte(record.Password), nil
	case FormatYAML:
		return yaml.Marshal(record)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// EncodeAll serialises several records as one document: a JSON array, a YAML
// stream with "---" separators, or one password per line. A single record is
// encoded exactly as Encode would.
func (s *ExportService) EncodeAll(records []model.ExportRecord, format string) ([]byte, error) {
	if len(records) == 1 {
		return s.Encode(records[0], format)
	}

	switch strings.ToLower(format) {
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(records); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTXT:
		passwords := make([]string, len(records))
		for i, r := range records {
			passwords[i] = r.Password
		}
		return []byte(strings.Join(passwords, "\n")), nil
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return nil, err
			}
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// ContentType returns the MIME type for an export format.
func ContentType(format string) string {
	switch strings.ToLower(format) {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	default:
		return "text/plain; charset=utf-8"
	}
}
