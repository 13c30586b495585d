package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	skynet "gopkg.in/vansante/go-skynet.v1"
)

func urlCmd(a *app) *cobra.Command {
	var queries []string

	c := &cobra.Command{
		Use:   "url <input> [path...]",
		Short: "Print the portal URL for the skylink in the input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skylink, err := skynet.ParseSkylink(args[0])
			if err != nil {
				a.logger.Warn("skylink.url: Invalid input", "input", args[0], "error", err)
				return err
			}

			query, err := parseQuery(queries)
			if err != nil {
				return err
			}

			segments := append([]string{a.cfg.Portal, skylink}, args[1:]...)
			url := skynet.MakeURL(segments...)
			if len(query) > 0 {
				withQuery, err := skynet.AddURLQuery(url, query)
				if err != nil {
					a.logger.Error("skylink.url: Error adding query", "url", url, "error", err)
					return err
				}
				url = withQuery
			}

			a.logger.Debug("skylink.url: Built URL", "skylink", skylink, "url", url)
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	c.Flags().StringArrayVarP(&queries, "query", "q", nil, "Query parameter as key=value (repeatable)")
	return c
}

// parseQuery turns key=value pairs into a query map, later pairs overwrite earlier ones
func parseQuery(pairs []string) (map[string]any, error) {
	query := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid query parameter '%s', expected key=value", pair)
		}
		query[key] = value
	}
	return query, nil
}
