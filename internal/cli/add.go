package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daylist-app/daylist/pkg/types"
)

func newAddCmd(a *app) *cobra.Command {
	var forDate string

	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a task",
		Long: `Add creates a new task for today, or for an explicit date with --date.

Example:
  daylist add Buy milk
  daylist add --date 2024-03-15 "Dentist appointment"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			var (
				task *types.Task
				err  error
			)
			if forDate != "" {
				task, err = a.list.AddForDate(text, forDate)
			} else {
				task, err = a.list.Add(text)
			}
			if err != nil {
				return err
			}
			if task == nil {
				// Whitespace-only input is a silent no-op.
				return nil
			}

			if a.flags.jsonMode {
				out, err := json.MarshalIndent(task, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal task: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added task %s: %s\n", task.ID, task.Text)
			return nil
		},
	}

	cmd.Flags().StringVar(&forDate, "date", "", "create the task for this date (YYYY-MM-DD) instead of today")
	return cmd
}
