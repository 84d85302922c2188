package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/PortellaAlly/bestprice/internal/api"
	"github.com/PortellaAlly/bestprice/internal/catalog"
	"github.com/PortellaAlly/bestprice/internal/config"
	"github.com/PortellaAlly/bestprice/internal/logging"
)

var (
	flagSort  string
	flagStore string
	flagJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for a product and print the offers",
	Long:  "Run one search against the price-comparison API and print the offers as plain text, cheapest highlighted. Useful for scripting.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := strings.TrimSpace(strings.Join(args, " "))
		if query == "" {
			return fmt.Errorf("query must not be blank")
		}

		sortKey, ok := catalog.ParseSortKey(flagSort)
		if !ok {
			return fmt.Errorf("unknown --sort value %q (valid: cheapest, expensive, name)", flagSort)
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log := logging.New(cfg.Log.Level, os.Stderr)
		client := api.New(baseURL(cfg), log)

		resp, err := client.Search(cmd.Context(), query)
		if err != nil {
			return fmt.Errorf("searching: %w", err)
		}

		view := catalog.View{Sort: sortKey, Store: flagStore}
		items := view.Apply(resp.Products)

		if flagJSON {
			out := struct {
				Count    int               `json:"count"`
				Products []catalog.Product `json:"products"`
			}{Count: len(items), Products: items}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		if len(resp.Products) == 0 {
			fmt.Println("Nenhum produto encontrado.")
			return nil
		}

		if cheapest, ok := catalog.FindCheapest(resp.Products); ok {
			fmt.Printf("Melhor oferta: %s por %s na %s\n\n",
				cheapest.Name, catalog.FormatPrice(cheapest.Price), cheapest.Store)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PREÇO\tLOJA\tPRODUTO\tURL")
		for _, p := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				catalog.FormatPrice(p.Price), p.Store, p.Name, p.URL)
		}
		w.Flush()

		if b := resp.Breakdown; b != nil {
			fmt.Printf("\nPor loja: Mercado Livre %d · Amazon %d · Magalu %d · Americanas %d\n",
				b.MercadoLivre, b.Amazon, b.Magalu, b.Americanas)
		}
		return nil
	},
}

func init() {
	searchCmd.Flags().StringVar(&flagSort, "sort", "cheapest", "sort order: cheapest, expensive, name")
	searchCmd.Flags().StringVar(&flagStore, "store", "", "only show offers from this store")
	searchCmd.Flags().BoolVar(&flagJSON, "json", false, "print results as JSON")
}
