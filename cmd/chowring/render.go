package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/katalvlaran/chowring/chow"
	"github.com/katalvlaran/chowring/logger"
	"github.com/katalvlaran/chowring/matroid"
	"github.com/katalvlaran/chowring/poly"
)

// idealReport is the JSON shape of one ideal computation.
type idealReport struct {
	Matroid      string   `json:"matroid"`
	Presentation string   `json:"presentation"`
	Ring         []string `json:"ring"`
	Generators   []string `json:"generators"`
	Algorithm    string   `json:"algorithm,omitempty"`
	Groebner     []string `json:"groebner,omitempty"`
}

// parsePresentation maps the CLI spelling onto the presentation tag.
func parsePresentation(s string) (chow.Presentation, error) {
	switch s {
	case "nonaug", "non-augmented":
		return chow.NonAugmented, nil
	case "fy", "feitchner-yuzvinsky":
		return chow.AugmentedFY, nil
	case "atomfree", "atom-free":
		return chow.AugmentedAtomFree, nil
	default:
		return 0, fmt.Errorf("unknown presentation %q (want nonaug, fy or atomfree)", s)
	}
}

// parseAlgorithm maps the CLI spelling onto the basis algorithm.
func parseAlgorithm(s string) (chow.Algorithm, error) {
	switch s {
	case "combinatorial":
		return chow.Combinatorial, nil
	case "fallback":
		return chow.Fallback, nil
	default:
		return "", fmt.Errorf("unknown algorithm %q (want combinatorial or fallback)", s)
	}
}

// runIdeal builds the ideal, optionally computes a Gröbner basis, and
// renders the result for humans or machines.
func runIdeal(m matroid.Matroid, presName string, groebner bool, algoName string) error {
	pres, err := parsePresentation(presName)
	if err != nil {
		return err
	}

	start := time.Now()
	ideal, err := chow.NewIdeal(m, pres)
	if err != nil {
		return fmt.Errorf("build ideal: %w", err)
	}
	logger.Logger.Infow("ideal constructed",
		"matroid", m.Name(),
		"presentation", pres.String(),
		"flats", ideal.Lattice().Len(),
		"generators", len(ideal.Generators()),
		"elapsed", time.Since(start))

	report := idealReport{
		Matroid:      m.Name(),
		Presentation: pres.String(),
		Ring:         ideal.Ring().Names(),
		Generators:   renderPolys(ideal.Generators()),
	}

	if groebner {
		algo, err := parseAlgorithm(algoName)
		if err != nil {
			return err
		}
		start = time.Now()
		gb, err := ideal.GroebnerBasis(algo)
		if err != nil {
			return fmt.Errorf("groebner basis: %w", err)
		}
		logger.Logger.Infow("groebner basis computed",
			"algorithm", string(algo),
			"size", len(gb),
			"elapsed", time.Since(start))
		report.Algorithm = string(algo)
		report.Groebner = renderPolys(gb)
	}

	if logger.JSONOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	renderHuman(ideal, report)
	return nil
}

func renderPolys(ps []poly.Poly) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

// renderHuman prints the report with pterm.
func renderHuman(ideal *chow.Ideal, report idealReport) {
	pterm.DefaultSection.Println(ideal.DisplayName())

	pterm.Info.Printfln("Ring: %d variables", len(report.Ring))
	pterm.Printfln("  %v", report.Ring)
	pterm.Println()

	pterm.Info.Printfln("Generators (%d):", len(report.Generators))
	for _, g := range report.Generators {
		pterm.Printfln("  %s", g)
	}

	if report.Groebner != nil {
		pterm.Println()
		pterm.Info.Printfln("Gröbner basis via %s (%d):", report.Algorithm, len(report.Groebner))
		for _, g := range report.Groebner {
			pterm.Printfln("  %s", g)
		}
	}
}
