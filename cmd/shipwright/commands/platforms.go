package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/shipwright/internal/core/domain"
)

func (c *CLI) newPlatformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "platforms",
		Short: "List the platform build matrix",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, target := range domain.DefaultMatrix() {
				fmt.Fprintln(cmd.OutOrStdout(), target)
			}
		},
	}
}
