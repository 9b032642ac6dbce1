package main

import (
	"fmt"
	"path/filepath"

	"github.com/restamp/restamp/pkg/restamp/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage restamp configuration settings.

Configuration is loaded from:
  1. $XDG_CONFIG_HOME/restamp/config.yaml (if set)
  2. ~/.config/restamp/config.yaml

Environment variables can override config file settings using the RESTAMP_ prefix:
  RESTAMP_DIR_PATTERN='iCloudPhotosPart*of*'
  RESTAMP_CSV_PATTERN='Photo Details*.csv'`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration settings from all sources.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	Long:  `Create a default configuration file if one doesn't exist.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	Long:  `Display the path to the configuration file.`,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// runConfigShow displays the effective configuration.
func runConfigShow(cmd *cobra.Command, args []string) error {
	fmt.Println("Current configuration:")
	fmt.Printf("  dir_pattern:   %s\n", viper.GetString("dir_pattern"))
	fmt.Printf("  csv_pattern:   %s\n", viper.GetString("csv_pattern"))
	fmt.Printf("  error_preview: %d\n", viper.GetInt("error_preview"))
	fmt.Printf("  logging.level: %s\n", viper.GetString("logging.level"))

	logPath := viper.GetString("logging.path")
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	fmt.Printf("  logging.path:  %s\n", logPath)

	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Printf("\nLoaded from: %s\n", used)
	} else {
		fmt.Println("\nNo config file found; using defaults")
	}
	return nil
}

// runConfigInit creates a default config file.
func runConfigInit(cmd *cobra.Command, args []string) error {
	if err := config.WriteDefault(); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Printf("Config file: %s\n", filepath.Join(dir, "config.yaml"))
	return nil
}

// runConfigPath prints the config file path.
func runConfigPath(cmd *cobra.Command, args []string) error {
	if used := viper.ConfigFileUsed(); used != "" {
		fmt.Println(used)
		return nil
	}

	dir, err := config.ConfigDir()
	if err != nil {
		return err
	}
	fmt.Println(filepath.Join(dir, "config.yaml"))
	return nil
}
