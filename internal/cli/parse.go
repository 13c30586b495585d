package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	skynet "gopkg.in/vansante/go-skynet.v1"
)

func parseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse [input...]",
		Short: "Print the skylink contained in each input (reads lines from stdin without arguments)",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				var err error
				inputs, err = readLines(cmd)
				if err != nil {
					return err
				}
			}

			failed := 0
			for _, input := range inputs {
				skylink, err := skynet.ParseSkylink(input)
				if err != nil {
					a.logger.Warn("skylink.parse: Invalid input", "input", input, "error", err)
					failed++
					continue
				}
				a.logger.Debug("skylink.parse: Extracted skylink", "input", input, "skylink", skylink)
				fmt.Fprintln(cmd.OutOrStdout(), skylink)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs contained no skylink", failed, len(inputs))
			}
			return nil
		},
	}
}

// readLines reads the non-blank lines from the command input
func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
