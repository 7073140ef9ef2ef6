package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/upkeep/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the maintenance pipeline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			return c.app.Run(cmd.Context(), app.RunOptions{
				ConfigPath: configPath,
			})
		},
	}
	cmd.Flags().StringP("config", "c", "", "Path to the policy file (default /etc/upkeep.yaml)")
	return cmd
}
