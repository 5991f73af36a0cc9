package main

import (
	"fmt"
	"os"

	"chat-room/models"
	"chat-room/tui"
	"chat-room/ui"
	"chat-room/utils"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configFile  string
	envFile     string
	logFile     string
	logLevel    string
	noAltScreen bool
	noMouse     bool
)

var rootCmd = &cobra.Command{
	Use:   "chat-room",
	Short: "Terminal chat room shell",
	Long: `chat-room opens a chat room window in the terminal: a member list,
a message list and a multi-line input with a Send button.

Settings come from defaults, an optional YAML file, an optional .env file,
CHATROOM_* environment variables and finally the flags below.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		logger, err := utils.NewLogger(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		return tui.Run(cfg, logger)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version banner",
	Run: func(cmd *cobra.Command, args []string) {
		ui.PrintBanner(cmd.OutOrStdout(), version)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out, err := cfg.YAML()
		if err != nil {
			return err
		}
		ui.PrintSection(cmd.OutOrStdout(), "Effective Configuration", out)
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "Path to YAML configuration file")
	flags.StringVar(&envFile, "env-file", "", "Path to a .env file with CHATROOM_* variables")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file (logging is off when empty)")
	flags.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	flags.BoolVar(&noAltScreen, "no-alt-screen", false, "Render inline instead of using the alternate screen")
	flags.BoolVar(&noMouse, "no-mouse", false, "Disable mouse support")

	rootCmd.AddCommand(versionCmd, configCmd)
}

// loadConfig applies flags on top of the file and environment settings.
func loadConfig(cmd *cobra.Command) (models.Config, error) {
	cfg, err := models.LoadConfig(configFile, envFile)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if noAltScreen {
		cfg.AltScreen = false
	}
	if noMouse {
		cfg.Mouse = false
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
