package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/zhubert/eatnsplit/internal/app"
	"github.com/zhubert/eatnsplit/internal/config"
	"github.com/zhubert/eatnsplit/internal/logger"
	"github.com/zhubert/eatnsplit/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	configPath            string
	themeName             string
	notifyEnabled         bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "eatnsplit",
	Short: "Split bills with friends from the terminal",
	Long: `eatnsplit keeps a list of friends with running balances and lets you
split a new bill with the one you select. Friends live in memory for the
duration of the session.`,
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to "+logger.DefaultLogPath)
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to warnings only")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.eatnsplit/config.json)")
	rootCmd.Flags().StringVar(&themeName, "theme", "", "Theme to start with, overriding the config file")
	rootCmd.Flags().BoolVar(&notifyEnabled, "notify", false, "Show a desktop notification when a friend is added, overriding the config file")
}

func initConfig() {
	switch {
	case quietMode:
		logger.SetLevel(logger.LevelWarn)
	case debugMode:
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	// Set version dynamically
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("eatnsplit %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("eatnsplit %s\n", version)
}

// loadConfig reads the config from --config or the default location
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

// applyFlagOverrides copies --theme and --notify onto cfg for this run.
// Only flags given on the command line override the config file.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	if themeName != "" {
		if _, ok := ui.BuiltinThemes[ui.ThemeName(themeName)]; !ok {
			return fmt.Errorf("unknown theme %q (available: %v)", themeName, ui.ThemeNames())
		}
		cfg.SetTheme(themeName)
	}
	if cmd.Flags().Changed("notify") {
		cfg.SetNotificationsEnabled(notifyEnabled)
	}
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	if err := logger.Init(logger.DefaultLogPath); err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}
	// Ensure logger is closed on exit
	defer logger.Close()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return err
	}

	m := app.New(cfg, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
