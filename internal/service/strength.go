package service

import (
	"errors"
	"unicode/utf8"

	zxcvbn "github.com/ccojocar/zxcvbn-go"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
)

// zxcvbn matching is super-linear in the input length.
const maxZxcvbnLength = 128

var ErrPasswordRequired = errors.New("password is required")

// StrengthService assesses existing passwords.
type StrengthService struct{}

// NewStrengthService creates a new StrengthService.
func NewStrengthService() *StrengthService {
	return &StrengthService{}
}

// Assess scores req.Password and adds an advisory zxcvbn score when the
// password is short enough to analyse.
func (s *StrengthService) Assess(req model.StrengthRequest) (model.StrengthResponse, error) {
	if req.Password == "" {
		return model.StrengthResponse{}, ErrPasswordRequired
	}

	resp := model.StrengthResponse{Assessment: crypto.Assess(req.Password)}
	if utf8.RuneCountInString(req.Password) <= maxZxcvbnLength {
		score := zxcvbn.PasswordStrength(req.Password, nil).Score
		resp.ZxcvbnScore = &score
	}

	return resp, nil
}
