package model

import "github.com/passgen/passgen-go/internal/crypto"

// StrengthRequest asks for an assessment of an existing password.
type StrengthRequest struct {
	Password string `json:"password"`
}

// StrengthResponse carries the evaluator output plus an advisory zxcvbn score
// (0-4). ZxcvbnScore is omitted for passwords too long to analyse.
type StrengthResponse struct {
	crypto.Assessment
	ZxcvbnScore *int `json:"zxcvbn_score,omitempty"`
}
