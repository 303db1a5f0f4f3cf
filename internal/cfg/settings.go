package cfg

import (
	"crawlfilter/internal/domain/keys"
	"crawlfilter/internal/links"
	"crawlfilter/internal/logging"
	"crawlfilter/internal/models"
	"crawlfilter/internal/nodes"
	"crawlfilter/internal/summary"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// init sets the initial Viper settings.
func init() {
	// Env vars.
	viper.SetEnvPrefix("crawlfilter")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_")) // Convert "max-depth" to "CRAWLFILTER_MAX_DEPTH"
	viper.AutomaticEnv()

	rootCmd.AddCommand(pathsCmd, linksCmd)

	// Special functions.
	initOrExit(initProgramFunctions(),
		"config program function initialization failure")

	// Path collector.
	initOrExit(initPathCollector(),
		"config path collector initialization failure")

	// Link filter.
	initOrExit(initLinkFilter(),
		"config link filter initialization failure")
}

// pathSettings holds validated path collector settings.
type pathSettings struct {
	rewrite  nodes.Rewrite
	maxDepth int
}

// linkSettings holds validated link filter settings.
type linkSettings struct {
	mode  links.Mode
	rules []models.FindReplace
}

// validatePathSettings checks user path collector settings.
func validatePathSettings(site, domain string, maxDepth int) (pathSettings, error) {
	if maxDepth < 1 {
		return pathSettings{}, fmt.Errorf("invalid %s %d, must be at least 1", keys.MaxDepth, maxDepth)
	}

	site = strings.TrimPrefix(strings.TrimSpace(site), "/")
	domain = strings.TrimSpace(domain)
	if site == "" && domain != "" {
		logging.W("Domain %q entered without a site, paths will not be rewritten", domain)
	}
	if site != "" && domain == "" {
		logging.W("Site %q entered without a domain, paths will not be rewritten", site)
	}
	if site != "" && domain != "" {
		logging.I("Rewriting \"/%s\" to %q", site, domain)
	}

	return pathSettings{
		rewrite:  nodes.Rewrite{Site: site, Domain: domain},
		maxDepth: maxDepth,
	}, nil
}

// validateLinkSettings checks user link filter settings and loads the rule file.
func validateLinkSettings(mode, rulesFile string) (linkSettings, error) {
	m, err := links.ParseMode(mode)
	if err != nil {
		return linkSettings{}, err
	}

	var rules []models.FindReplace
	if rulesFile != "" {
		if m != links.ModeConsolidate {
			logging.W("Rules file %q ignored in %s mode", rulesFile, m)
		} else if rules, err = links.LoadRules(rulesFile); err != nil {
			return linkSettings{}, err
		}
		if len(rules) > 0 {
			logging.I("Loaded %d URL rule(s) from %q", len(rules), rulesFile)
		}
	}
	return linkSettings{mode: m, rules: rules}, nil
}

// executePaths runs the path collector over the command inputs.
func executePaths(cmd *cobra.Command, args []string) error {
	s, err := validatePathSettings(
		viper.GetString(keys.Site),
		viper.GetString(keys.Domain),
		viper.GetInt(keys.MaxDepth),
	)
	if err != nil {
		return err
	}

	c := nodes.NewCollector(s.rewrite, s.maxDepth)
	runErr := runInputs(cmd.Context(), c, args, cmd.InOrStdin(), cmd.OutOrStdout())
	if viper.GetBool(keys.Summary) {
		summary.Render(cmd.ErrOrStderr(), "paths", summary.PathRows(c.Stats()))
	}
	return runErr
}

// executeLinks runs the link filter over the command inputs.
func executeLinks(cmd *cobra.Command, args []string) error {
	s, err := validateLinkSettings(
		viper.GetString(keys.Mode),
		viper.GetString(keys.RulesFile),
	)
	if err != nil {
		return err
	}

	f := links.NewFilter(s.mode, s.rules)
	runErr := runInputs(cmd.Context(), f, args, cmd.InOrStdin(), cmd.OutOrStdout())
	if viper.GetBool(keys.Summary) {
		summary.Render(cmd.ErrOrStderr(), "links ("+string(s.mode)+")", summary.LinkRows(f.Stats()))
	}
	return runErr
}
