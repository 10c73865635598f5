package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/passgen/passgen-go/internal/crypto"
)

var (
	passwordStyle = lipgloss.NewStyle().Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(12)

	labelStyles = map[crypto.StrengthLabel]lipgloss.Style{
		crypto.LabelWeak:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4b4b")),
		crypto.LabelMedium:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffa500")),
		crypto.LabelStrong:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700")),
		crypto.LabelVeryStrong: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00c853")),
	}
)

func renderLabel(label crypto.StrengthLabel) string {
	style, ok := labelStyles[label]
	if !ok {
		return string(label)
	}
	return style.Render(string(label))
}

// summary is the one-line strength report printed under each password.
func summary(a crypto.Assessment) string {
	return fmt.Sprintf("%s %s (%d/100), %d bits, cracked in %s",
		dimStyle.Render("strength:"), renderLabel(a.Label), a.Score, a.EntropyBits, a.CrackTime)
}

func row(key, value string) string {
	return keyStyle.Render(key) + value
}
