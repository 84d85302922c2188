package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/PortellaAlly/bestprice/internal/api"
	"github.com/PortellaAlly/bestprice/internal/catalog"
	"github.com/PortellaAlly/bestprice/internal/config"
	"github.com/PortellaAlly/bestprice/internal/logging"
)

var historyCmd = &cobra.Command{
	Use:   "history <product-id>",
	Short: "Print the recorded price history of a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid product id %q", args[0])
		}

		cfg, err := config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log := logging.New(cfg.Log.Level, os.Stderr)
		client := api.New(baseURL(cfg), log)

		hist, err := client.History(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("fetching history: %w", err)
		}

		fmt.Printf("%s (%s)\n\n", hist.Product.Name, hist.Product.Store)

		chrono := catalog.Chronological(hist.Points)
		trend, ok := catalog.ComputeTrend(chrono)
		if !ok {
			fmt.Println("Nenhum histórico de preços para este produto ainda.")
			return nil
		}

		for _, pt := range chrono {
			fmt.Printf("  %s  %s\n", pt.CheckedAt.Format("02/01/2006"), catalog.FormatPrice(pt.Price))
		}

		fmt.Println()
		switch trend.Direction {
		case catalog.TrendDown:
			fmt.Printf("Economia: %s (%.1f%%)\n", catalog.FormatPrice(-trend.Variation), trend.Percent)
		case catalog.TrendUp:
			fmt.Printf("Aumento: %s (+%.1f%%)\n", catalog.FormatPrice(trend.Variation), trend.Percent)
		default:
			fmt.Println("Preço estável: sem variação")
		}
		return nil
	},
}
