// Package cli implements the passgen command-line tool.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/crypto"
	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
	"github.com/passgen/passgen-go/internal/wordlist"
)

const maxCount = 50

var ErrCountOutOfRange = errors.New("count must be between 1 and 50")

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

// outputOptions are shared by every generating command.
type outputOptions struct {
	version  string
	count    int
	copy     bool
	quiet    bool
	export   string
	wordlist string
}

// NewRootCmd builds the passgen command tree. A fresh tree is returned on
// every call so tests can execute commands in isolation.
func NewRootCmd(version string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "passgen",
		Short:        "Generate passwords, passphrases and PINs and rate their strength",
		Version:      version,
		SilenceUsage: true,
	}

	cmd.AddCommand(
		newRandomCmd(version),
		newMemorableCmd(version),
		newPINCmd(version),
		newStrengthCmd(),
	)
	return cmd
}

func addOutputFlags(cmd *cobra.Command, opts *outputOptions) {
	f := cmd.Flags()
	f.IntVarP(&opts.count, "count", "n", 1, "number of passwords to generate (1-50)")
	f.BoolVarP(&opts.copy, "copy", "c", false, "copy the generated password(s) to the clipboard")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "print only the password(s)")
	f.StringVarP(&opts.export, "export", "e", "", "print an export record instead: json, yaml or txt")
}

func newRandomCmd(version string) *cobra.Command {
	opts := &outputOptions{version: version}
	defaults := crypto.DefaultRandomOptions()

	req := model.GenerateRequest{Type: string(crypto.KindRandom)}
	var upper, lower, digits, symbols, insecure bool

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a password of random characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Uppercase = &upper
			req.Lowercase = &lower
			req.Numbers = &digits
			req.Symbols = &symbols
			secure := !insecure
			req.Secure = &secure
			return generate(cmd, opts, req)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&req.Length, "length", "l", defaults.Length, "password length (1-128)")
	f.BoolVar(&upper, "uppercase", defaults.Uppercase, "include uppercase letters")
	f.BoolVar(&lower, "lowercase", defaults.Lowercase, "include lowercase letters")
	f.BoolVar(&digits, "digits", defaults.Digits, "include digits")
	f.BoolVarP(&symbols, "symbols", "s", defaults.Symbols, "include symbols")
	f.BoolVar(&req.ExcludeSimilar, "exclude-similar", false, "leave out look-alike characters (O0lI1)")
	f.BoolVar(&req.NoRepeat, "no-repeat", false, "never use a character twice")
	f.BoolVar(&insecure, "insecure", false, "use the fast non-cryptographic random source")
	addOutputFlags(cmd, opts)
	return cmd
}

func newMemorableCmd(version string) *cobra.Command {
	opts := &outputOptions{version: version}
	defaults := crypto.DefaultMemorableOptions()

	req := model.GenerateRequest{Type: string(crypto.KindMemorable)}
	var (
		separator  string
		capitalize bool
	)

	cmd := &cobra.Command{
		Use:   "memorable",
		Short: "Generate a passphrase of dictionary words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Separator = &separator
			req.Capitalize = &capitalize
			return generate(cmd, opts, req)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&req.Words, "words", "w", defaults.Words, "number of words (1-16)")
	f.StringVar(&separator, "separator", defaults.Separator, "text between words (at most 3 characters)")
	f.BoolVar(&capitalize, "capitalize", defaults.Capitalize, "upper-case the first letter of each word")
	f.IntVar(&req.SuffixLength, "suffix", 2, "number of digits appended to the phrase (0-12)")
	f.StringVar(&opts.wordlist, "wordlist", os.Getenv("WORDLIST_PATH"), "word list file, one word per line (default embedded)")
	addOutputFlags(cmd, opts)
	return cmd
}

func newPINCmd(version string) *cobra.Command {
	opts := &outputOptions{version: version}
	req := model.GenerateRequest{Type: string(crypto.KindPIN)}

	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Generate a numeric PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return generate(cmd, opts, req)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&req.Length, "length", "l", crypto.DefaultPINOptions().Length, "number of digits (1-32)")
	f.BoolVar(&req.AvoidSequential, "avoid-sequential", false, "reject repeated digits and 1234-style runs")
	addOutputFlags(cmd, opts)
	return cmd
}

func generate(cmd *cobra.Command, opts *outputOptions, req model.GenerateRequest) error {
	if opts.count < 1 || opts.count > maxCount {
		return ErrCountOutOfRange
	}

	var vocabulary []string
	if req.Type == string(crypto.KindMemorable) {
		words, err := wordlist.Load(opts.wordlist)
		if err != nil {
			return err
		}
		vocabulary = words
	}

	kind, gen, err := service.NewGeneratorService(vocabulary, nil).NewGenerator(req)
	if err != nil {
		return err
	}

	passwords := make([]string, 0, opts.count)
	for range opts.count {
		pw, err := gen.Generate()
		if err != nil {
			return err
		}
		passwords = append(passwords, pw)
	}

	if err := emit(cmd, opts, kind, passwords); err != nil {
		return err
	}

	if opts.copy {
		if err := copyToClipboard(strings.Join(passwords, "\n")); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: could not copy to clipboard: %v\n", err)
		} else if !opts.quiet {
			fmt.Fprintln(cmd.ErrOrStderr(), dimStyle.Render("copied to clipboard"))
		}
	}
	return nil
}

func emit(cmd *cobra.Command, opts *outputOptions, kind crypto.Kind, passwords []string) error {
	out := cmd.OutOrStdout()

	if opts.export != "" {
		exporter := service.NewExportService("passgen-go " + opts.version)
		records := make([]model.ExportRecord, 0, len(passwords))
		for _, pw := range passwords {
			record, err := exporter.Build(model.ExportRequest{Password: pw, Type: string(kind)})
			if err != nil {
				return err
			}
			records = append(records, record)
		}

		body, err := exporter.EncodeAll(records, opts.export)
		if err != nil {
			return err
		}
		if !bytes.HasSuffix(body, []byte("\n")) {
			body = append(body, '\n')
		}
		_, err = out.Write(body)
		return err
	}

	for _, pw := range passwords {
		if opts.quiet {
			fmt.Fprintln(out, pw)
			continue
		}
		fmt.Fprintln(out, passwordStyle.Render(pw))
		fmt.Fprintln(out, "  "+summary(crypto.Assess(pw)))
	}
	return nil
}
