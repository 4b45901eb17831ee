package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chowring/matroid"
)

var (
	idealGround       string
	idealBases        string
	idealName         string
	idealPresentation string
	idealGroebner     bool
	idealAlgorithm    string
)

var idealCmd = &cobra.Command{
	Use:   "ideal",
	Short: "Build the Chow ring ideal of a matroid given by its bases",
	Long: `Build the Chow ring ideal of the matroid with the given groundset and
basis list. Labels are single characters: --ground abc --bases ab,ac is
the rank-2 matroid on {a, b, c} with bases {a, b} and {a, c}.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if idealGround == "" {
			return fmt.Errorf("--ground is required")
		}
		if idealBases == "" {
			return fmt.Errorf("--bases is required")
		}
		baseSets := make([]matroid.Set, 0, 4)
		for _, b := range strings.Split(idealBases, ",") {
			b = strings.TrimSpace(b)
			if b == "" {
				continue
			}
			baseSets = append(baseSets, matroid.Chars(b))
		}

		opts := []matroid.Option{}
		if idealName != "" {
			opts = append(opts, matroid.WithName(idealName))
		}
		m, err := matroid.New(matroid.Chars(idealGround), baseSets, opts...)
		if err != nil {
			return fmt.Errorf("build matroid: %w", err)
		}
		return runIdeal(m, idealPresentation, idealGroebner, idealAlgorithm)
	},
}

func init() {
	idealCmd.Flags().StringVar(&idealGround, "ground", "",
		"groundset as single-character labels, e.g. abc")
	idealCmd.Flags().StringVar(&idealBases, "bases", "",
		"comma-separated bases, e.g. ab,ac")
	idealCmd.Flags().StringVar(&idealName, "name", "",
		"display name override for the matroid")
	idealCmd.Flags().StringVarP(&idealPresentation, "presentation", "p", "nonaug",
		"presentation: nonaug, fy or atomfree")
	idealCmd.Flags().BoolVarP(&idealGroebner, "groebner", "g", false,
		"also compute a Gröbner basis")
	idealCmd.Flags().StringVarP(&idealAlgorithm, "algorithm", "a", "combinatorial",
		"basis algorithm: combinatorial or fallback")
}
