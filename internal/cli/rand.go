package cli

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	skynet "gopkg.in/vansante/go-skynet.v1"
)

func randCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rand <bytes>",
		Short: "Print the given number of random bytes, hex encoded",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("invalid byte count '%s'", args[0])
			}

			buf := make([]byte, n)
			skynet.FillRandBytes(buf)

			a.logger.Debug("skylink.rand: Generated bytes", "length", n)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(buf))
			return nil
		},
	}
}
