package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chowring/logger"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "chowring",
	Short: "Chow ring ideals of matroids",
	Long: `chowring builds the Chow ring ideal of a matroid in one of three
presentations and computes Gröbner bases of it.

Presentations:
  nonaug    variables indexed by proper non-empty flats
  fy        augmented, Feitchner–Yuzvinsky: one extra variable per element
  atomfree  augmented, flats only; constraints via squared atom sums

Examples:
  chowring ideal --ground abc --bases ab,ac
  chowring ideal --ground abc --bases ab,ac --presentation fy --groebner
  chowring uniform 2 3 --presentation atomfree --groebner --algorithm fallback`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logger.Initialize(jsonOutput); err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false,
		"machine-readable output (JSON results, JSON logs on stderr)")

	rootCmd.AddCommand(idealCmd)
	rootCmd.AddCommand(uniformCmd)
}

func main() {
	defer logger.Cleanup()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
