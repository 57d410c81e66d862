// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/warpkk/kk"
	"github.com/katalvlaran/warpkk/warp"
)

var kkFlags struct {
	species  string
	bc       string
	c        float64
	modes    int
	lambdaIR float64
	exact    bool
	mixing   bool
}

// kkCmd solves one KK tower and prints it.
var kkCmd = &cobra.Command{
	Use:   "kk",
	Short: "Solve a Kaluza-Klein tower from its boundary conditions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if kkFlags.modes < 1 {
			return fmt.Errorf("--modes must be at least 1, got %d", kkFlags.modes)
		}
		field, err := parseField(kkFlags.species, kkFlags.bc, kkFlags.c)
		if err != nil {
			return err
		}
		geo, err := warp.NewGeometry(warp.DefaultK, kkFlags.lambdaIR)
		if err != nil {
			return err
		}

		opts := []kk.Option{
			kk.WithNumRoots(kkFlags.modes),
			kk.WithExact(kkFlags.exact),
			kk.WithMixing(kkFlags.mixing),
		}
		tower, err := kk.Solve(field, geo, opts...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s tower, nu = %.4g, exact=%v\n",
			field.Species(), field.BC(), tower.Nu, tower.Exact)
		if tower.HasZeroMode {
			fmt.Fprintln(out, "n=0: massless zero mode")
		}
		for i, x := range tower.Roots {
			line := fmt.Sprintf("n=%d: x = %.8g  m = %.6g GeV", i+1, x, tower.Masses[i])
			if tower.Mixing != nil && !math.IsNaN(tower.Mixing[i]) {
				line += fmt.Sprintf("  b = %.4g", tower.Mixing[i])
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

// parseField maps CLI strings onto a validated bulk field.
func parseField(species, bc string, c float64) (kk.Field, error) {
	var cond kk.BoundaryCondition
	switch bc {
	case "NN", "nn":
		cond = kk.BCNeumannNeumann
	case "++":
		cond = kk.BCPlusPlus
	case "--":
		cond = kk.BCMinusMinus
	default:
		return kk.Field{}, fmt.Errorf("unknown boundary condition %q (want NN, ++ or --)", bc)
	}
	switch species {
	case "gauge":
		return kk.NewGauge(cond)
	case "fermion":
		return kk.NewFermion(cond, c)
	default:
		return kk.Field{}, fmt.Errorf("unknown species %q (want gauge or fermion)", species)
	}
}

func init() {
	kkCmd.Flags().StringVar(&kkFlags.species, "species", "fermion", "bulk field: gauge|fermion")
	kkCmd.Flags().StringVar(&kkFlags.bc, "bc", "++", "boundary condition: NN|++|--")
	kkCmd.Flags().Float64Var(&kkFlags.c, "c", 0.45, "fermion bulk mass parameter")
	kkCmd.Flags().IntVarP(&kkFlags.modes, "modes", "n", 5, "number of massive modes")
	kkCmd.Flags().Float64Var(&kkFlags.lambdaIR, "lambda-ir", 3000, "KK scale (GeV)")
	kkCmd.Flags().BoolVar(&kkFlags.exact, "exact", false,
		"use the two-brane quantization instead of the IR-dominated one")
	kkCmd.Flags().BoolVar(&kkFlags.mixing, "mixing", false, "report Bessel mixing coefficients")
	rootCmd.AddCommand(kkCmd)
}
