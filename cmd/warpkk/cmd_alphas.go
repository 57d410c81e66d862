// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/warpkk/qcd"
)

var alphasFlags struct {
	mu    float64
	loops int
}

// alphasCmd evaluates the running strong coupling at one scale.
var alphasCmd = &cobra.Command{
	Use:   "alphas",
	Short: "Run alpha_s from alpha_s(M_Z) to a target scale",
	RunE: func(cmd *cobra.Command, args []string) error {
		if alphasFlags.loops < 1 || alphasFlags.loops > 4 {
			return fmt.Errorf("--loops must lie in 1..4, got %d", alphasFlags.loops)
		}
		a, err := qcd.AlphaS(alphasFlags.mu, qcd.WithLoops(alphasFlags.loops))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "alpha_s(%g GeV) = %.6g  (%d-loop)\n",
			alphasFlags.mu, a, alphasFlags.loops)
		return nil
	},
}

func init() {
	alphasCmd.Flags().Float64Var(&alphasFlags.mu, "mu", 1000, "renormalization scale (GeV)")
	alphasCmd.Flags().IntVar(&alphasFlags.loops, "loops", 4, "beta-function order (1-4)")
	rootCmd.AddCommand(alphasCmd)
}
