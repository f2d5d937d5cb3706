package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/kingdom/internal/catalog"
	"github.com/appengine-ltd/kingdom/internal/kingdom"
	"github.com/appengine-ltd/kingdom/internal/logging"
)

type generateFlags struct {
	cards    []string
	maxOther int
	seed     int64
	jsonOut  bool
}

type generateOutput struct {
	Seed    int64           `json:"seed"`
	Kingdom []string        `json:"kingdom"`
	Cards   []generatedCard `json:"cards"`
}

type generatedCard struct {
	Name   string `json:"name"`
	Set    string `json:"set"`
	Types  string `json:"types"`
	Supply bool   `json:"supply"`
}

func newGenerateCmd(root *rootFlags) *cobra.Command {
	flags := &generateFlags{}
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a kingdom",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, root, flags)
		},
	}
	f := cmd.Flags()
	f.StringArrayVarP(&flags.cards, "cards", "c", nil, "Seed the kingdom with a card (repeatable)")
	f.IntVarP(&flags.maxOther, "max-other", "m", kingdom.DefaultMaxOther, "Maximum number of non-supply cards to show")
	f.Int64Var(&flags.seed, "seed", 0, "Random seed (random when unset)")
	f.BoolVar(&flags.jsonOut, "json", false, "Print the kingdom as JSON")
	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, flags *generateFlags) error {
	cfg, err := resolveConfig(cmd, root)
	if err != nil {
		return err
	}
	cat, err := loadCatalog(cfg)
	if err != nil {
		return err
	}

	seed := flags.seed
	if !cmd.Flags().Changed("seed") {
		if seed, err = kingdom.NewSeed(); err != nil {
			return err
		}
	}
	maxOther := cfg.MaxOther
	if cmd.Flags().Changed("max-other") {
		maxOther = flags.maxOther
	}

	log := logging.New("generate")
	opts := kingdom.Options{
		MaxOther:      maxOther,
		MaxIterations: cfg.MaxIterations,
		Logger:        logging.New("kingdom"),
	}.WithSeed(seed)

	res, err := kingdom.Build(cat, flags.cards, opts)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	log.Info("kingdom generated", "seed", seed, "picks", res.Iterations, "cards", len(res.Kingdom))

	out := cmd.OutOrStdout()
	if !flags.jsonOut {
		fmt.Fprintln(out, res.Report)
		return nil
	}

	payload := generateOutput{Seed: seed, Kingdom: res.Kingdom}
	for _, c := range res.Cards {
		payload.Cards = append(payload.Cards, generatedCard{
			Name:   c.Name,
			Set:    c.Set,
			Types:  c.Types,
			Supply: catalog.IsSupply(c),
		})
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
