package cli

import (
	"github.com/spf13/cobra"
)

func newDoneCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Long: `Done flips the completed flag of the task with the given ID.
Running it again flips the task back. An unknown ID is ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.list.Toggle(args[0]); err != nil {
				return err
			}
			return printTasks(cmd, a, a.list.Tasks())
		},
	}
}
