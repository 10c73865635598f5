package model

import "github.com/passgen/passgen-go/internal/crypto"

// GenerateRequest represents a password generation request.
// Type selects the strategy: "random" (default), "memorable" or "pin".
// Pointer fields distinguish a missing value (nil -> default) from an explicit one.
type GenerateRequest struct {
	Type   string `json:"type"`
	Length int    `json:"length"`

	// Random-character options.
	Uppercase      *bool `json:"uppercase"`
	Lowercase      *bool `json:"lowercase"`
	Numbers        *bool `json:"numbers"`
	Symbols        *bool `json:"symbols"`
	ExcludeSimilar bool  `json:"exclude_similar"`
	NoRepeat       bool  `json:"no_repeat"`
	Secure         *bool `json:"secure"`

	// Memorable options.
	Words        int     `json:"words"`
	Separator    *string `json:"separator"`
	Capitalize   *bool   `json:"capitalize"`
	SuffixLength int     `json:"suffix_length"`

	// PIN options.
	AvoidSequential bool `json:"avoid_sequential"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Type       string            `json:"type"`
	Password   string            `json:"password"`
	Length     int               `json:"length"`
	Assessment crypto.Assessment `json:"strength"`
}
