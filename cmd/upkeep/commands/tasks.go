package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/upkeep/internal/tasks"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the registered maintenance tasks in execution order",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for i, name := range tasks.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "%2d. %s\n", i+1, name)
			}
		},
	}
}
