package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/tabdo/internal/app"
	"github.com/dori/tabdo/internal/storage"
	"github.com/dori/tabdo/internal/ui"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every command
type options struct {
	configPath string
	dataDir    string
	theme      string
	locale     string
	memory     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tabdo",
		Short: "tabdo - tabbed todo lists for the terminal",
		Long: `tabdo keeps tasks in named tabs. Each tab is sorted by a four level
sort order (completion, priority, creation date, name) and tabs can be
saved as reusable task sets.

Run without a command to start the TUI.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", app.DefaultConfigPath(), "config file")
	flags.StringVar(&opts.dataDir, "data-dir", "", "data directory (default $XDG_DATA_HOME/tabdo)")
	flags.StringVar(&opts.theme, "theme", "", "theme name (nord, dracula)")
	flags.StringVar(&opts.locale, "locale", "", "locale used to order task names (default ja)")
	flags.BoolVar(&opts.memory, "memory", false, "keep everything in memory, nothing is saved")

	rootCmd.AddCommand(addCmd(opts))
	rootCmd.AddCommand(listCmd(opts))
	rootCmd.AddCommand(setsCmd(opts))
	rootCmd.AddCommand(storeCmd(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// loadConfig reads the config file and applies flag overrides
func (o *options) loadConfig() (*app.Config, error) {
	cfg, err := app.LoadConfig(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.dataDir != "" {
		cfg.SetDataDir(o.dataDir)
	}
	if o.theme != "" {
		cfg.Theme = o.theme
	}
	if o.locale != "" {
		cfg.Locale = o.locale
	}
	return cfg, nil
}

// openApp builds the application for a command. CLI commands log to stderr.
func (o *options) openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	cfg.LogOutput = cmd.ErrOrStderr()
	if o.memory {
		return app.NewWithStore(storage.NewMemoryStore(), cfg), nil
	}
	return app.New(cfg)
}

func runTUI(opts *options) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}

	var application *app.App
	if opts.memory {
		application = app.NewWithStore(storage.NewMemoryStore(), cfg)
	} else {
		application, err = app.New(cfg)
		if err != nil {
			return err
		}
	}
	defer application.Close()

	p := tea.NewProgram(
		ui.NewRootModel(application),
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tabdo v%s\n", version)
		},
	}
}
