// Package cfg intializes Viper, Cobra, etc.
package cfg

import (
	"context"
	"crawlfilter/internal/domain/consts"
	"crawlfilter/internal/domain/keys"
	"crawlfilter/internal/logging"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "crawlfilter",
	Short: "Crawlfilter turns crawler and CMS export JSON Lines into plain text.",
	Long: "Crawlfilter reads JSON Lines from standard input (or the files given as arguments)\n" +
		"and writes plain text to standard output. Logging goes to standard error.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Setup flags from config file.
		if viper.IsSet(keys.ConfigPath) {
			configFile := viper.GetString(keys.ConfigPath)

			cInfo, err := os.Stat(configFile)
			if err != nil {
				return fmt.Errorf("failed check for entered config file path %q: %w", configFile, err)
			} else if cInfo.IsDir() {
				return fmt.Errorf("config file entered (%s) is a directory, should be a file", configFile)
			}

			if err := loadConfigFile(configFile); err != nil {
				return fmt.Errorf("failed loading config file: %w", err)
			}
		}

		// Set logging level.
		logging.Level = min(max(viper.GetInt(keys.DebugLevel), consts.DebugLevelMin), consts.DebugLevelMax)

		// Log file.
		if viper.IsSet(keys.LogDir) && viper.GetString(keys.LogDir) != "" {
			if err := logging.SetupLogging(viper.GetString(keys.LogDir)); err != nil {
				logging.W("Log file was not created: %v", err)
			}
		}
		return nil
	},
}

var pathsCmd = &cobra.Command{
	Use:   "paths [file...]",
	Short: "Print every node path of a nodes export, one per line.",
	Long: "Walks each JSON node tree (one per line) and prints every \"path\" value in pre-order.\n" +
		"With --site set, the first \"/<site>\" in each path is replaced by --domain.",
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.Set(keys.Execute, true)
		return executePaths(cmd, args)
	},
}

var linksCmd = &cobra.Command{
	Use:   "links [file...]",
	Short: "Print crawler link records as tab-separated rows.",
	Long: "Prints src, tag, url and code of each link record (one per line), tab-separated.\n" +
		"--mode consolidate keeps only info-level records, collapses embedded widgets to one\n" +
		"row per page and normalizes cache-busting URL segments.",
	RunE: func(cmd *cobra.Command, args []string) error {
		viper.Set(keys.Execute, true)
		return executeLinks(cmd, args)
	},
}

// Execute is the primary initializer of Viper.
func Execute(ctx context.Context) error {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return err
	}
	return nil
}
