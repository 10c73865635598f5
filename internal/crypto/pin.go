package crypto

import "log/slog"

// maxPINAttempts bounds the rejection loop so Generate always terminates.
const maxPINAttempts = 1000

// PINOptions configures the PIN generator.
type PINOptions struct {
	Length          int
	AvoidSequential bool
}

// DefaultPINOptions returns a 6-digit PIN with no pattern filtering.
func DefaultPINOptions() PINOptions {
	return PINOptions{Length: 6}
}

// PINGenerator produces numeric PIN codes.
//
// With AvoidSequential set, draws that are all one digit or a run of step +1
// or -1 are rejected. After maxPINAttempts rejections the last draw is
// returned as is, so a weak PIN is possible (always for a 1-digit PIN).
type PINGenerator struct {
	length          int
	avoidSequential bool
	src             Source
}

// NewPINGenerator validates the PIN length.
func NewPINGenerator(opts PINOptions) (*PINGenerator, error) {
	if opts.Length < 1 {
		return nil, ErrInvalidLength
	}
	return &PINGenerator{
		length:          opts.Length,
		avoidSequential: opts.AvoidSequential,
		src:             SecureSource{},
	}, nil
}

// Generate returns a PIN of the configured length.
func (g *PINGenerator) Generate() (string, error) {
	var pin string
	for range maxPINAttempts {
		var err error
		pin, err = digits(g.src, g.length)
		if err != nil {
			return "", err
		}
		if !g.avoidSequential || !IsWeakPIN(pin) {
			return pin, nil
		}
	}

	slog.Warn("pin retry budget exhausted, returning last draw",
		"length", g.length, "attempts", maxPINAttempts)
	return pin, nil
}

// IsWeakPIN reports whether every digit is identical or the digits form an
// ascending or descending run with step 1.
func IsWeakPIN(pin string) bool {
	if pin == "" {
		return false
	}

	same, asc, desc := true, true, true
	for i := 1; i < len(pin); i++ {
		d := int(pin[i]) - int(pin[i-1])
		if d != 0 {
			same = false
		}
		if d != 1 {
			asc = false
		}
		if d != -1 {
			desc = false
		}
	}
	return same || asc || desc
}
