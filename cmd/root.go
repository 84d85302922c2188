package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig string
	flagAPI    string
	flagQuery  string
)

var rootCmd = &cobra.Command{
	Use:   "bestprice",
	Short: "TUI de comparação de preços",
	Long:  "bestprice busca um produto nas principais lojas e mostra as ofertas, a mais barata em destaque, com histórico de preços por produto.",
	RunE:  runTUI,
}

func init() {
	rootCmd.Flags().StringVar(&flagQuery, "query", "", "run a search immediately on startup")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagAPI, "api", "", "override API base URL")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(historyCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bestprice %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
