package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jask/backstack/internal/backbutton"
	"github.com/jask/backstack/internal/config"
	"github.com/jask/backstack/internal/logging"
	"github.com/jask/backstack/internal/tui"
)

var version = "dev"

var (
	cfgFile   string
	verbosity int
	force     bool

	rootCmd = &cobra.Command{
		Use:   "backstack",
		Short: "Terminal playground for the back button stack",
		Long: `backstack opens dialogs and menus on top of a tiny game screen.
The back key always closes whatever was opened last.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "backstack", version)
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE:  initConfig,
	}
)

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/backstack/config.toml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v DEBUG, -vv TRACE)")
	configInitCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(versionCmd, configCmd)
}

// initConfig writes defaults, merged with any existing file when --force is set.
func initConfig(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.Path()
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := config.Save(cfg, path); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "wrote", path)
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch {
	case verbosity == 1:
		cfg.Log.Level = "debug"
	case verbosity >= 2:
		cfg.Log.Level = "trace"
	}

	closer, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()
	log.Info().Str("version", version).Msg("starting")

	var invoker backbutton.Invoker
	invoker.Initialize(backbutton.WithLogger(logging.GetLogger("backbutton")))
	defer invoker.Teardown()

	p := tea.NewProgram(tui.New(cfg, &invoker, logging.GetLogger("tui")), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
