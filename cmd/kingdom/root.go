package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/kingdom/internal/catalog"
	"github.com/appengine-ltd/kingdom/internal/config"
	"github.com/appengine-ltd/kingdom/internal/logging"
)

type rootFlags struct {
	configPath string
	catalog    string
	sets       []string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "kingdom",
		Short:         "Generate linked kingdom sets for Dominion",
		Long:          "kingdom grows a set of ten supply cards by a weighted random walk\nover the co-occurrence links of a scraped card catalog.",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		Version: versionString(),
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ./"+config.DefaultFile+" if present)")
	pf.StringVarP(&flags.catalog, "filename", "f", "", "Card catalog JSON file")
	pf.StringArrayVarP(&flags.sets, "sets", "s", nil, "Restrict to a set (repeatable)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&flags.logFormat, "log-format", "", "Log format: text or json")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// resolveConfig merges the config file, environment and any flags that were
// set on the command line, then initialises logging.
func resolveConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	pf := cmd.Flags()
	if pf.Changed("filename") {
		cfg.Catalog = flags.catalog
	}
	if pf.Changed("sets") {
		cfg.Sets = flags.sets
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if pf.Changed("log-format") {
		cfg.LogFormat = flags.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return config.Config{}, err
	}
	logging.Init(level, cfg.LogFormat, cmd.ErrOrStderr())
	return cfg, nil
}

func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	cat, err := catalog.Load(cfg.Catalog, cfg.Sets)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logging.New("catalog").Debug("catalog loaded",
		"path", cfg.Catalog,
		"cards", cat.Len(),
		"supply", cat.SupplyCount(),
	)
	return cat, nil
}
