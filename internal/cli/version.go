package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daylist-app/daylist/pkg/daylist"
)

const modulePath = "github.com/daylist-app/daylist"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the daylist version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "daylist v%s\nmodule: %s\n", daylist.Version, modulePath)
			return nil
		},
	}
}
