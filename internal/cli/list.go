package cli

import (
	"github.com/spf13/cobra"

	"github.com/daylist-app/daylist/internal/dates"
)

func newListCmd(a *app) *cobra.Command {
	var forDate string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List prints every task on this device, or only one day's tasks with --date.

Example:
  daylist list
  daylist list --date 2024-03-15
  daylist list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := a.list.Tasks()
			if forDate != "" {
				if _, err := dates.ParseKey(forDate); err != nil {
					return err
				}
				tasks = dates.TasksOnDate(tasks, forDate)
			}
			return printTasks(cmd, a, tasks)
		},
	}

	cmd.Flags().StringVar(&forDate, "date", "", "only tasks on this date (YYYY-MM-DD)")
	return cmd
}
