// Root command for the bakebook CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ovenworks/bakebook/internal/logger"
	"github.com/ovenworks/bakebook/internal/paths"
	"github.com/ovenworks/bakebook/internal/storage"
	"github.com/ovenworks/bakebook/pkg/model"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Application state initialized by PersistentPreRunE and shared by all
// subcommands.
var (
	store storage.Store
	mdl   *model.Model
	log   *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "bakebook",
	Short: "Bakebook is a record manager for a small bakery",
	Long: `Bakebook tracks clients, pastry products and the orders that link
the two. Records live in a local data file; every command loads the
book, applies one change and saves it back.`,
	SilenceUsage:       true,
	PersistentPreRunE:  initApp,
	PersistentPostRunE: closeApp,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.bakebook)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output in JSON format")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(clearCmd)
}

// initApp loads config, opens the configured store and reads the book
// into a fresh model.
func initApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(flagConfigDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err = logger.New(cfg.GetString(cfgKeyLogMode))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}

	dataDir, err := paths.ResolveDataDir(flagDataDir, cfg.GetString(cfgKeyDataDir))
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	store, err = openStore(cfg.GetString(cfgKeyBackend), dataDir)
	if err != nil {
		return err
	}
	log.Debug("store opened", "backend", cfg.GetString(cfgKeyBackend), "data_dir", dataDir)

	book, err := store.Load()
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	mdl = model.NewModel(book)
	return nil
}

// closeApp releases the store and flushes logs.
func closeApp(cmd *cobra.Command, args []string) error {
	if log != nil {
		defer log.Sync()
	}
	if store != nil {
		return store.Close()
	}
	return nil
}

// saveBook persists the current book after a mutating command.
func saveBook() error {
	if err := store.Save(mdl.Book()); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	log.Debug("records saved",
		"clients", len(mdl.Book().Persons()),
		"pastries", len(mdl.Book().Pastries()),
		"orders", len(mdl.Book().Orders()))
	return nil
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the bakebook data store",
	Long:  "Init creates the configuration file and an empty data store if they do not exist.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := saveBook(); err != nil {
			return err
		}
		fmt.Println("Bakebook initialized successfully")
		return nil
	},
}
