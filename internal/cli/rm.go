package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Long:  "Rm deletes the task with the given ID. Deleting an unknown ID succeeds.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.list.Delete(args[0]); err != nil {
				return err
			}
			if !a.flags.jsonMode {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", args[0])
				return nil
			}
			return printTasks(cmd, a, a.list.Tasks())
		},
	}
}
