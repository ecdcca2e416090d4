package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sandeepkv93/dayboard/internal/config"
	"github.com/sandeepkv93/dayboard/internal/logging"
	"github.com/sandeepkv93/dayboard/internal/store"
)

// cli holds the state shared by every subcommand of one invocation.
type cli struct {
	cfgFile     string
	envFile     string
	storePath   string
	storeFormat string

	cfg    config.Config
	logger *zap.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dayboard: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "dayboard",
		Short: "Personal daily dashboard",
		Long: `dayboard keeps a checklist, a shopping list, tasks, a mood journal and
goals in one local data file.

Run without arguments to open the dashboard. The subcommands perform a single
load, change, save cycle against the same file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: c.runDashboard,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default $HOME/.dayboard/config.yaml)")
	flags.StringVar(&c.envFile, "env-file", "", "env file to load (default ./.env)")
	flags.StringVar(&c.storePath, "store", "", "data file, overrides store.path")
	flags.StringVar(&c.storeFormat, "store-format", "", "json, csv or sqlite, overrides store.format")
	root.Flags().String("decisions", "", "CSV of court decisions for the terms view")

	root.AddCommand(
		c.addCmd(),
		c.goalCmd(),
		c.moodCmd(),
		c.doneCmd(),
		c.progressCmd(),
		c.rmCmd(),
		c.clearCmd(),
		c.listCmd(),
		c.summaryCmd(),
		c.exportCmd(),
		c.termsCmd(),
		c.configCmd(),
	)
	return root
}

// setup loads the config and builds the logger. The dashboard logs to a
// file so the screen is not corrupted; every other command logs to stderr.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(config.LoadOptions{File: c.cfgFile, EnvFile: c.envFile})
	if err != nil {
		return err
	}
	if c.storePath != "" {
		cfg.Store.Path = c.storePath
	}
	if c.storeFormat != "" {
		cfg.Store.Format = strings.ToLower(c.storeFormat)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	logFile := ""
	if cmd == cmd.Root() {
		logFile = cfg.Log.File
	}
	logger, err := logging.New(logging.Options{Env: cfg.Env, Level: cfg.Log.Level, File: logFile})
	if err != nil {
		return err
	}
	c.logger = logger.With(zap.String("command", cmd.Name()))
	return nil
}

func (c *cli) openStore() (*store.Store, error) {
	return store.Open(store.Options{
		Path:   c.cfg.Store.Path,
		Format: c.cfg.StoreFormat(),
		Logger: c.logger.Named("store"),
	})
}
