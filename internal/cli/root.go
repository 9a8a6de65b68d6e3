// Package cli implements the daylist command-line interface. It is the
// composition root: it resolves directories, loads configuration, opens the
// task store, resolves the device identity, and hands the assembled
// controller to the subcommands.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/daylist-app/daylist/internal/identity"
	"github.com/daylist-app/daylist/internal/paths"
	"github.com/daylist-app/daylist/internal/sqlite"
	"github.com/daylist-app/daylist/pkg/tasklist"
	"github.com/daylist-app/daylist/pkg/types"
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// app carries the wired-up dependencies shared by subcommands. One app is
// built per root command invocation.
type app struct {
	flags    rootFlags
	logger   *log.Logger
	store    types.Store
	list     *tasklist.Controller
	deviceID string
}

// NewRootCmd creates the top-level "daylist" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "daylist",
		Short: "Daylist is a local, device-scoped to-do list",
		Long: "Daylist manages a single device's to-do list in a local SQLite\n" +
			"database, grouped by calendar date. No accounts, no server, no sync.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.teardown,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newAddCmd(a))
	root.AddCommand(newListCmd(a))
	root.AddCommand(newDoneCmd(a))
	root.AddCommand(newRmCmd(a))
	root.AddCommand(newCalendarCmd(a))

	return root
}

// Execute runs the root command and exits nonzero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// setup wires the store, identity, and controller before a subcommand runs.
// The version command works without storage and skips it.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.GetString(cfgKeyLogLevel))
	if err != nil {
		level = log.WarnLevel
	}
	a.logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "daylist",
	})

	dataDir, err := paths.ResolveDataDir(a.flags.dataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store, err := sqlite.Open(types.Config{
		DataDir:  dataDir,
		Database: cfg.GetString(cfgKeyDatabase),
	})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = store

	a.deviceID = identity.NewManager(configDir, a.logger).DeviceID()
	a.list = tasklist.New(a.store, a.deviceID, a.logger)

	return a.list.Reload()
}

// teardown closes the store after the subcommand finishes.
func (a *app) teardown(cmd *cobra.Command, args []string) error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
