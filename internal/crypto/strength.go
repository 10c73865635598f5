package crypto

import (
	"fmt"
	"math"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// StrengthLabel is the qualitative bucket of a strength score.
type StrengthLabel string

const (
	LabelWeak       StrengthLabel = "Weak"
	LabelMedium     StrengthLabel = "Medium"
	LabelStrong     StrengthLabel = "Strong"
	LabelVeryStrong StrengthLabel = "Very Strong"
)

// Uncrackable is returned by CrackTimeLabel when the estimate exceeds every bucket.
const Uncrackable = "∞ (practically uncrackable)"

// guessesPerSecond models an offline attacker with a GPU cluster.
const guessesPerSecond = 1e10

// Strength is a 0-100 score and its label.
type Strength struct {
	Score int           `json:"score" yaml:"score"`
	Label StrengthLabel `json:"label" yaml:"label"`
}

// Assessment bundles every metric derived from a single password.
type Assessment struct {
	Strength
	Length      int    `json:"length"`
	CharsetSize int    `json:"charset_size"`
	EntropyBits int    `json:"entropy_bits"`
	CrackTime   string `json:"crack_time"`
}

type charClasses struct {
	upper, lower, digit, symbol bool
}

func (c charClasses) count() int {
	n := 0
	for _, ok := range []bool{c.upper, c.lower, c.digit, c.symbol} {
		if ok {
			n++
		}
	}
	return n
}

func classify(password string) charClasses {
	var c charClasses
	for _, r := range password {
		switch {
		case isUpper(r):
			c.upper = true
		case isLower(r):
			c.lower = true
		}
		if isDigit(r) {
			c.digit = true
		}
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			c.symbol = true
		}
	}
	return c
}

// otherDigits holds the No runes with a digit value: superscripts, subscripts
// and circled or parenthesised digits.
var otherDigits = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x00b2, Hi: 0x00b3, Stride: 1},
		{Lo: 0x00b9, Hi: 0x00b9, Stride: 1},
		{Lo: 0x1369, Hi: 0x1371, Stride: 1},
		{Lo: 0x19da, Hi: 0x19da, Stride: 1},
		{Lo: 0x2070, Hi: 0x2070, Stride: 1},
		{Lo: 0x2074, Hi: 0x2079, Stride: 1},
		{Lo: 0x2080, Hi: 0x2089, Stride: 1},
		{Lo: 0x2460, Hi: 0x2468, Stride: 1},
		{Lo: 0x2474, Hi: 0x247c, Stride: 1},
		{Lo: 0x2488, Hi: 0x2490, Stride: 1},
		{Lo: 0x24ea, Hi: 0x24ea, Stride: 1},
		{Lo: 0x24f5, Hi: 0x24fd, Stride: 1},
		{Lo: 0x24ff, Hi: 0x24ff, Stride: 1},
		{Lo: 0x2776, Hi: 0x277e, Stride: 1},
		{Lo: 0x2780, Hi: 0x2788, Stride: 1},
		{Lo: 0x278a, Hi: 0x2792, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x10a40, Hi: 0x10a43, Stride: 1},
		{Lo: 0x10e60, Hi: 0x10e68, Stride: 1},
		{Lo: 0x11052, Hi: 0x1105a, Stride: 1},
		{Lo: 0x1f100, Hi: 0x1f10a, Stride: 1},
	},
	LatinOffset: 2,
}

// isUpper matches the Unicode Uppercase property, so letter-like numerals
// such as U+2163 count as upper case.
func isUpper(r rune) bool {
	return unicode.IsUpper(r) || unicode.Is(unicode.Other_Uppercase, r)
}

// isLower matches the Unicode Lowercase property (circled letters included).
func isLower(r rune) bool {
	return unicode.IsLower(r) || unicode.Is(unicode.Other_Lowercase, r)
}

// isDigit accepts decimal digits plus other digit-valued numbers such as '²'.
func isDigit(r rune) bool {
	return unicode.IsDigit(r) || unicode.Is(otherDigits, r)
}

// ComputeStrength scores a password on a 0-100 scale.
//
// Up to 40 points come from length (4 to 28 characters), up to 40 from the
// number of character classes present and a bonus of 10 or 20 for digits
// and symbols.
func ComputeStrength(password string) Strength {
	if password == "" {
		return Strength{Score: 0, Label: LabelWeak}
	}

	length := utf8.RuneCountInString(password)
	classes := classify(password)

	lengthScore := math.Min(math.Max(float64(length-4), 0)/24*40, 40)
	diversityScore := float64(classes.count()) / 4 * 40

	var bonus float64
	switch {
	case classes.digit && classes.symbol:
		bonus = 20
	case classes.digit || classes.symbol:
		bonus = 10
	}

	score := int(math.Min(100, math.RoundToEven(lengthScore+diversityScore+bonus)))
	return Strength{Score: score, Label: labelFor(score)}
}

func labelFor(score int) StrengthLabel {
	switch {
	case score < 40:
		return LabelWeak
	case score < 60:
		return LabelMedium
	case score < 80:
		return LabelStrong
	default:
		return LabelVeryStrong
	}
}

// CharsetSize estimates the alphabet a password was drawn from. Passwords with
// no recognised class report 10 so that logarithms stay defined.
func CharsetSize(password string) int {
	c := classify(password)
	size := 0
	if c.upper {
		size += 26
	}
	if c.lower {
		size += 26
	}
	if c.digit {
		size += 10
	}
	if c.symbol {
		size += 32
	}
	if size == 0 {
		return 10
	}
	return size
}

// EntropyBits returns floor(length * log2(charset size)).
func EntropyBits(password string) int {
	cs := max(CharsetSize(password), 2)
	return int(math.Floor(float64(utf8.RuneCountInString(password)) * math.Log2(float64(cs))))
}

// CrackTimeLabel estimates brute-force time at 10^10 guesses per second.
func CrackTimeLabel(password string) string {
	cs := float64(CharsetSize(password))
	secs := math.Pow(cs, float64(utf8.RuneCountInString(password))) / guessesPerSecond

	switch {
	case secs < 1:
		return "< 1 second"
	case secs < 60:
		return fmt.Sprintf("%d seconds", int64(secs))
	case secs < 3600:
		return fmt.Sprintf("%d minutes", int64(secs/60))
	case secs < 86400:
		return fmt.Sprintf("%d hours", int64(secs/3600))
	case secs < 3e7:
		return fmt.Sprintf("%d days", int64(secs/86400))
	case secs < 3e9:
		return fmt.Sprintf("%d years", int64(secs/3e7))
	case secs < 3e12:
		return humanize.Comma(int64(secs/3e9)) + " thousand years"
	default:
		return Uncrackable
	}
}

// Assess computes every strength metric for password.
func Assess(password string) Assessment {
	return Assessment{
		Strength:    ComputeStrength(password),
		Length:      utf8.RuneCountInString(password),
		CharsetSize: CharsetSize(password),
		EntropyBits: EntropyBits(password),
		CrackTime:   CrackTimeLabel(password),
	}
}
