package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/restamp/restamp/pkg/restamp/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "restamp <path>",
		Short: "Repair timestamps on iCloud photo exports",
		Long: `Restamp repairs file-system timestamps on multi-part iCloud photo
exports using the "Photo Details" sidecar CSVs, detects duplicates by
the checksums the export recorded, and can copy files into a
year/month tree and write JSON summary reports.

Examples:
  restamp ~/export                        # Process all export-part directories
  restamp --single-dir ~/export/Part1of3  # Process one directory
  restamp -d ~/export                     # Dry run, nothing is modified
  restamp ~/export --reports ~/out        # Also write JSON reports
  restamp ~/export --organize ~/photos    # Also copy into year/month tree`,
		Args: cobra.ExactArgs(1),
		RunE: runFix,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/restamp/config.yaml)")
	rootCmd.PersistentFlags().Bool("single-dir", false, "treat <path> as one directory to scan directly")
	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "simulate: no filesystem mutation, no report writes")
	rootCmd.PersistentFlags().String("organize", "", "copy files into a year/month tree under this directory")
	rootCmd.PersistentFlags().String("reports", "", "write JSON reports into this directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "errors only on console")

	_ = viper.BindPFlag("single_dir", rootCmd.PersistentFlags().Lookup("single-dir"))
	_ = viper.BindPFlag("dry_run", rootCmd.PersistentFlags().Lookup("dry-run"))
	_ = viper.BindPFlag("organize", rootCmd.PersistentFlags().Lookup("organize"))
	_ = viper.BindPFlag("reports", rootCmd.PersistentFlags().Lookup("reports"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			viper.AddConfigPath(filepath.Join(xdgConfigHome, "restamp"))
		}

		homeDir, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(homeDir, ".config", "restamp"))
		}
	}

	viper.SetEnvPrefix("RESTAMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("dir_pattern", config.DefaultDirPattern)
	viper.SetDefault("csv_pattern", config.DefaultCSVPattern)
	viper.SetDefault("error_preview", config.DefaultErrorPreview)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.path", "")

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getVerbose returns true if verbose mode is enabled.
func getVerbose() bool {
	return viper.GetBool("verbose")
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printInfo prints a message if quiet mode is not enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}

// printError prints an error message to stderr.
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
