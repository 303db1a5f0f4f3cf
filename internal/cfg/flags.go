package cfg

import (
	"crawlfilter/internal/domain/consts"
	"crawlfilter/internal/domain/keys"
	"crawlfilter/internal/links"
	"crawlfilter/internal/logging"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// initProgramFunctions initializes user flag settings for miscellaneous program features such as debug level.
func initProgramFunctions() error {
	// Config file.
	rootCmd.PersistentFlags().String(keys.ConfigPath, "", "Specify a path to your configuration file")
	if err := viper.BindPFlag(keys.ConfigPath, rootCmd.PersistentFlags().Lookup(keys.ConfigPath)); err != nil {
		return err
	}

	// Debugging level.
	rootCmd.PersistentFlags().IntP(keys.DebugLevel, "d", 0, "Level of debugging (0 - 5)")
	if err := viper.BindPFlag(keys.DebugLevel, rootCmd.PersistentFlags().Lookup(keys.DebugLevel)); err != nil {
		return err
	}

	// Log file directory.
	rootCmd.PersistentFlags().String(keys.LogDir, "", "Directory to write a rotating log file to")
	if err := viper.BindPFlag(keys.LogDir, rootCmd.PersistentFlags().Lookup(keys.LogDir)); err != nil {
		return err
	}

	// Run summary.
	rootCmd.PersistentFlags().Bool(keys.Summary, false, "Print run statistics to stderr when done")
	if err := viper.BindPFlag(keys.Summary, rootCmd.PersistentFlags().Lookup(keys.Summary)); err != nil {
		return err
	}
	return nil
}

// initPathCollector initializes user flag settings for the paths command.
func initPathCollector() error {
	// Site to rewrite.
	pathsCmd.Flags().StringP(keys.Site, "s", "", "Site identifier; the first \"/<site>\" of each path is replaced by the domain")
	if err := viper.BindPFlag(keys.Site, pathsCmd.Flags().Lookup(keys.Site)); err != nil {
		return err
	}

	// Replacement domain.
	pathsCmd.Flags().String(keys.Domain, "", "Replacement for \"/<site>\" (e.g. 'https://www.example.edu')")
	if err := viper.BindPFlag(keys.Domain, pathsCmd.Flags().Lookup(keys.Domain)); err != nil {
		return err
	}

	// Nesting limit.
	pathsCmd.Flags().Int(keys.MaxDepth, consts.DefaultMaxDepth, "Maximum node nesting depth")
	if err := viper.BindPFlag(keys.MaxDepth, pathsCmd.Flags().Lookup(keys.MaxDepth)); err != nil {
		return err
	}
	return nil
}

// initLinkFilter initializes user flag settings for the links command.
func initLinkFilter() error {
	// Mode.
	linksCmd.Flags().StringP(keys.Mode, "m", string(links.ModePlain), "Filter mode (plain, consolidate)")
	if err := viper.BindPFlag(keys.Mode, linksCmd.Flags().Lookup(keys.Mode)); err != nil {
		return err
	}

	// Extra URL rules.
	linksCmd.Flags().String(keys.RulesFile, "", "File of '<regexp><TAB><replacement>' URL rules (consolidate mode)")
	if err := viper.BindPFlag(keys.RulesFile, linksCmd.Flags().Lookup(keys.RulesFile)); err != nil {
		return err
	}
	return nil
}

// initOrExit exits the program if initialization failed.
func initOrExit(err error, failMsg string) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", failMsg, err)
		os.Exit(1)
	}
}

// loadConfigFile loads in the configuration file.
func loadConfigFile(file string) error {
	logging.D(1, "Using configuration file %q", file)
	viper.SetConfigFile(file)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}
	return nil
}
