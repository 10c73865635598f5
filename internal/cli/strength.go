package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/passgen/passgen-go/internal/model"
	"github.com/passgen/passgen-go/internal/service"
)

func newStrengthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strength [password]",
		Short: "Rate the strength of a password",
		Long: `Rates a password on a 0-100 scale and estimates its entropy and brute-force crack time.
Without an argument the password is read from the first line of standard input,
which keeps it out of the shell history.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var password string
			if len(args) == 1 {
				password = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return service.ErrPasswordRequired
				}
				password = strings.TrimRight(line, "\r\n")
			}

			resp, err := service.NewStrengthService().Assess(model.StrengthRequest{Password: password})
			if err != nil {
				return err
			}

			printAssessment(cmd, resp)
			return nil
		},
	}
}

func printAssessment(cmd *cobra.Command, resp model.StrengthResponse) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, row("Strength", fmt.Sprintf("%s (%d/100)", renderLabel(resp.Label), resp.Score)))
	fmt.Fprintln(out, row("Length", strconv.Itoa(resp.Length)))
	fmt.Fprintln(out, row("Charset", strconv.Itoa(resp.CharsetSize)))
	fmt.Fprintln(out, row("Entropy", humanize.Comma(int64(resp.EntropyBits))+" bits"))
	fmt.Fprintln(out, row("Crack time", resp.CrackTime))
	if resp.ZxcvbnScore != nil {
		fmt.Fprintln(out, row("zxcvbn", fmt.Sprintf("%d/4", *resp.ZxcvbnScore)))
	}
}
