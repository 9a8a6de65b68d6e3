package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daylist-app/daylist/internal/dates"
	"github.com/daylist-app/daylist/pkg/types"
)

// printTasks renders a task listing in text or JSON mode. The text mode
// mirrors the original list view: one checkbox line per task plus an
// "N of M completed" summary.
func printTasks(cmd *cobra.Command, a *app, tasks []*types.Task) error {
	if a.flags.jsonMode {
		if tasks == nil {
			tasks = []*types.Task{}
		}
		out, err := json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal tasks: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
		return nil
	}

	completed := 0
	for _, task := range tasks {
		mark := " "
		if task.Completed {
			mark = "x"
			completed++
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  %s  %s\n",
			mark, task.ID, dates.Key(task.CreatedAt), task.Text)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d of %d completed\n", completed, len(tasks))
	return nil
}
