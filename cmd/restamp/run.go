package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/restamp/restamp/pkg/restamp/config"
	"github.com/restamp/restamp/pkg/restamp/ingest"
	"github.com/restamp/restamp/pkg/restamp/logging"
	"github.com/restamp/restamp/pkg/restamp/organize"
	"github.com/restamp/restamp/pkg/restamp/report"
	"github.com/restamp/restamp/pkg/restamp/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runFix is the main command handler: one full reconciliation run.
func runFix(cmd *cobra.Command, args []string) error {
	// Cobra already validated usage; remaining failures are our own.
	cmd.SilenceUsage = true

	basePath, err := config.ExpandPath(args[0])
	if err != nil {
		return fmt.Errorf("failed to expand path: %w", err)
	}
	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			printError("path does not exist: %s", absPath)
			return err
		}
		return fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", absPath)
	}

	if err := initRunLogging(); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() { _ = logging.Close() }()

	dryRun := viper.GetBool("dry_run")
	if dryRun {
		printInfo("Dry run: no files will be modified and no reports written")
	}

	ing := ingest.New(ingest.Options{
		DirPattern: viper.GetString("dir_pattern"),
		CSVPattern: viper.GetString("csv_pattern"),
		Simulate:   dryRun,
	})

	if viper.GetBool("single_dir") {
		if err := ing.ProcessSingleDir(absPath); err != nil {
			if errors.Is(err, ingest.ErrNoMetadata) {
				printError("no metadata files found in %s", absPath)
			}
			return err
		}
	} else {
		if err := ing.ProcessBase(absPath); err != nil {
			return err
		}
	}

	cat := ing.Catalog()
	stats := ing.Stats()

	// Reports run before the summary so the duplicate-group count is
	// final when printed. Detection itself runs even without --reports.
	if reportsDir := viper.GetString("reports"); reportsDir != "" {
		gen := report.New(reportsDir, dryRun)
		if err := gen.Generate(cat, stats); err != nil {
			return fmt.Errorf("generating reports: %w", err)
		}
	} else {
		stats.DuplicateGroups = len(cat.Duplicates())
	}

	if organizeDir := viper.GetString("organize"); organizeDir != "" {
		org := organize.New(organizeDir, dryRun)
		copied, errs := org.Run(cat.Entries())
		for _, msg := range errs {
			stats.RecordError(msg)
		}
		if !dryRun {
			printInfo("Copied %d files into %s", copied, organizeDir)
		}
	}

	printSummary(stats)
	return nil
}

// initRunLogging configures file logging plus a console sink whose
// level follows --verbose and --quiet.
func initRunLogging() error {
	consoleLevel := "info"
	if getVerbose() {
		consoleLevel = "debug"
	}
	if getQuiet() {
		consoleLevel = "error"
	}

	return logging.Init(logging.Config{
		Level:        viper.GetString("logging.level"),
		Path:         viper.GetString("logging.path"),
		ConsoleLevel: consoleLevel,
	})
}

// printSummary prints the run counters and an error preview.
func printSummary(stats *types.Stats) {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	fmt.Println()
	bold.Println("=== Processing summary ===")
	fmt.Printf("Files processed:  %d\n", stats.FilesProcessed)
	green.Printf("Timestamps fixed: %d\n", stats.TimestampsFixed)
	yellow.Printf("Duplicate groups: %d\n", stats.DuplicateGroups)
	fmt.Printf("Favorites:        %d\n", stats.Favorites)
	fmt.Printf("Hidden:           %d\n", stats.Hidden)
	fmt.Printf("Deleted:          %d\n", stats.Deleted)

	if len(stats.Errors) == 0 {
		fmt.Printf("Errors:           0\n")
		return
	}

	red.Printf("Errors:           %d\n", len(stats.Errors))
	preview := viper.GetInt("error_preview")
	for _, msg := range stats.ErrorPreview(preview) {
		fmt.Printf("  - %s\n", msg)
	}
	if len(stats.Errors) > preview {
		fmt.Printf("  ... and %d more (see log file)\n", len(stats.Errors)-preview)
	}
}
