package model

import "time"

// GenerationEvent records that a password was generated. It deliberately has
// no field for the password itself.
type GenerationEvent struct {
	ID          int64
	Type        string
	Length      int
	Score       int
	Label       string
	EntropyBits int
	CreatedAt   time.Time
}

// StatsResponse summarises generation events.
type StatsResponse struct {
	Total          int64            `json:"total"`
	ByType         map[string]int64 `json:"by_type"`
	ByLabel        map[string]int64 `json:"by_label"`
	AverageEntropy float64          `json:"average_entropy_bits"`
}
