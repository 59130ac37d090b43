package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	register(func(*globals) *cobra.Command {
		return &cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Args:  cobra.NoArgs,
			Run: func(c *cobra.Command, _ []string) {
				fmt.Fprintf(c.OutOrStdout(), "drawer version %s (built %s)\n", Version, BuildTime)
			},
		}
	})
}
