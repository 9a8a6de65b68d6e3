package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/daylist-app/daylist/internal/dates"
)

// monthLayout is the --month flag format, YYYY-MM.
const monthLayout = "2006-01"

func newCalendarCmd(a *app) *cobra.Command {
	var monthFlag string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month calendar with task counts",
		Long: `Calendar prints a month grid. Each day with tasks carries a marker:
"." none completed, ":" partially completed, "*" all completed.

Example:
  daylist calendar
  daylist calendar --month 2024-02`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseMonth(monthFlag)
			if err != nil {
				return err
			}

			grid := dates.MonthGrid(year, month, a.list.Tasks())

			if a.flags.jsonMode {
				out, err := json.MarshalIndent(grid, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal calendar: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			renderCalendar(cmd, year, month, grid)
			return nil
		},
	}

	cmd.Flags().StringVar(&monthFlag, "month", "", "month to show (YYYY-MM, default: current month)")
	return cmd
}

// parseMonth parses a YYYY-MM flag value, defaulting to the current local
// month when empty.
func parseMonth(flag string) (int, time.Month, error) {
	if flag == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.ParseInLocation(monthLayout, flag, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, want YYYY-MM", flag)
	}
	return t.Year(), t.Month(), nil
}

// renderCalendar prints the month header, weekday names, and the day grid
// with leading blanks for the first day's weekday offset.
func renderCalendar(cmd *cobra.Command, year int, month time.Month, grid []dates.DayCell) {
	out := cmd.OutOrStdout()
	today := dates.Key(time.Now())

	fmt.Fprintf(out, "%s %d\n", month, year)
	fmt.Fprintln(out, "Sun Mon Tue Wed Thu Fri Sat")

	var line strings.Builder
	for i := 0; i < int(dates.FirstWeekday(year, month)); i++ {
		line.WriteString("    ")
	}

	for _, cell := range grid {
		marker := " "
		switch {
		case cell.Total == 0:
		case cell.Completed == cell.Total:
			marker = "*"
		case cell.Completed > 0:
			marker = ":"
		default:
			marker = "."
		}
		fmt.Fprintf(&line, "%3d%s", cell.Day, marker)

		weekday := (int(dates.FirstWeekday(year, month)) + cell.Day) % 7
		if weekday == 0 {
			fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
			line.Reset()
		}
	}
	if line.Len() > 0 {
		fmt.Fprintln(out, strings.TrimRight(line.String(), " "))
	}

	if strings.HasPrefix(today, fmt.Sprintf("%04d-%02d", year, int(month))) {
		fmt.Fprintf(out, "today: %s\n", today)
	}
}
