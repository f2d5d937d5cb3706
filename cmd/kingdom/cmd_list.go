package main

import (
	"fmt"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/kingdom/internal/catalog"
)

func newListCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sets or cards in the catalog",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "sets",
		Short: "List the sets in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, root)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			for _, s := range cat.Sets() {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "cards",
		Short: "List the cards in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, root)
			if err != nil {
				return err
			}
			cat, err := loadCatalog(cfg)
			if err != nil {
				return err
			}
			renderCards(cmd, cat.Cards())
			return nil
		},
	})
	return cmd
}

func renderCards(cmd *cobra.Command, cards []catalog.Card) {
	sort.Slice(cards, func(i, j int) bool {
		if cards[i].Set != cards[j].Set {
			return cards[i].Set < cards[j].Set
		}
		if cards[i].Name != cards[j].Name {
			return cards[i].Name < cards[j].Name
		}
		return cards[i].Types < cards[j].Types
	})

	tw := table.NewWriter()
	tw.SetOutputMirror(cmd.OutOrStdout())
	tw.AppendHeader(table.Row{"Set", "Name", "Types"})
	for _, c := range cards {
		tw.AppendRow(table.Row{c.Set, c.Name, c.Types})
	}
	tw.Render()
}
