package model

import "time"

// ExportRequest asks for a downloadable record of a generated password.
type ExportRequest struct {
	Password string `json:"password"`
	Type     string `json:"type"`
}

// ExportStrength is the nested strength block of an export record.
type ExportStrength struct {
	Score int    `json:"score" yaml:"score"`
	Label string `json:"label" yaml:"label"`
}

// ExportRecord is the structured export of a single password.
type ExportRecord struct {
	Password    string         `json:"password" yaml:"password"`
	Type        string         `json:"type" yaml:"type"`
	Strength    ExportStrength `json:"strength" yaml:"strength"`
	Length      int            `json:"length" yaml:"length"`
	CharsetSize int            `json:"charset_size" yaml:"charset_size"`
	EntropyBits int            `json:"entropy_bits" yaml:"entropy_bits"`
	CrackTime   string         `json:"crack_time" yaml:"crack_time"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Generator   string         `json:"generator" yaml:"generator"`
}
