package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chowring/matroid"
)

var (
	uniformPresentation string
	uniformGroebner     bool
	uniformAlgorithm    string
)

var uniformCmd = &cobra.Command{
	Use:   "uniform <rank> <size>",
	Short: "Build the Chow ring ideal of a uniform matroid U(k, n)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		k, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("rank %q: %w", args[0], err)
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("size %q: %w", args[1], err)
		}
		m, err := matroid.Uniform(k, n)
		if err != nil {
			return fmt.Errorf("build matroid: %w", err)
		}
		return runIdeal(m, uniformPresentation, uniformGroebner, uniformAlgorithm)
	},
}

func init() {
	uniformCmd.Flags().StringVarP(&uniformPresentation, "presentation", "p", "nonaug",
		"presentation: nonaug, fy or atomfree")
	uniformCmd.Flags().BoolVarP(&uniformGroebner, "groebner", "g", false,
		"also compute a Gröbner basis")
	uniformCmd.Flags().StringVarP(&uniformAlgorithm, "algorithm", "a", "combinatorial",
		"basis algorithm: combinatorial or fallback")
}
