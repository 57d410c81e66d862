// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/warpkk/scan"
)

var scanFlags struct {
	configPath string
	csvPath    string
	sqlitePath string
}

// scanCmd sweeps the bulk-mass grid and persists the rows.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Sweep bulk-mass grids and filter viable points",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := scan.DefaultConfig()
		if scanFlags.configPath != "" {
			var err error
			cfg, err = scan.LoadConfig(scanFlags.configPath)
			if err != nil {
				return err
			}
		}

		res, err := scan.Run(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}

		if scanFlags.csvPath != "" {
			if err := scan.WriteCSV(scanFlags.csvPath, res.Rows); err != nil {
				return err
			}
		}
		if scanFlags.sqlitePath != "" {
			if err := scan.WriteSQLite(scanFlags.sqlitePath, res.Rows); err != nil {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "run %s: %d points, %d accepted\n",
			res.RunID, len(res.Rows), res.Accepted)
		return nil
	},
}

// reclassifyCmd re-applies filters to a stored campaign.
var reclassifyFlags struct {
	inPath, outPath string
	maxYbar         float64
	natMin, natMax  float64
	requireLFV      bool
}

var reclassifyCmd = &cobra.Command{
	Use:   "reclassify",
	Short: "Re-filter a stored scan under new thresholds",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := scan.ReclassifyOptions{
			MaxYbar:        reclassifyFlags.maxYbar,
			NaturalnessMin: reclassifyFlags.natMin,
			NaturalnessMax: reclassifyFlags.natMax,
			RequireLFV:     reclassifyFlags.requireLFV,
		}
		sum, err := scan.ReclassifyCSV(reclassifyFlags.inPath, reclassifyFlags.outPath, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d rows: accepted %d -> %d (%d flipped)\n",
			sum.Total, sum.AcceptedBefore, sum.AcceptedAfter, sum.Flipped)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanFlags.configPath, "config", "c", "",
		"YAML campaign file (defaults to the built-in grid)")
	scanCmd.Flags().StringVarP(&scanFlags.csvPath, "out", "o", "scan.csv",
		"CSV output path")
	scanCmd.Flags().StringVar(&scanFlags.sqlitePath, "sqlite", "",
		"optional SQLite output path")
	rootCmd.AddCommand(scanCmd)

	def := scan.DefaultReclassifyOptions()
	reclassifyCmd.Flags().StringVar(&reclassifyFlags.inPath, "in", "", "input CSV (required)")
	reclassifyCmd.Flags().StringVar(&reclassifyFlags.outPath, "out", "", "output CSV (required)")
	reclassifyCmd.Flags().Float64Var(&reclassifyFlags.maxYbar, "max-ybar", def.MaxYbar,
		"perturbativity bound")
	reclassifyCmd.Flags().Float64Var(&reclassifyFlags.natMin, "natural-min", def.NaturalnessMin,
		"naturalness window lower edge")
	reclassifyCmd.Flags().Float64Var(&reclassifyFlags.natMax, "natural-max", def.NaturalnessMax,
		"naturalness window upper edge")
	reclassifyCmd.Flags().BoolVar(&reclassifyFlags.requireLFV, "require-lfv", def.RequireLFV,
		"keep the mu->e gamma verdict in the combined flag")
	_ = reclassifyCmd.MarkFlagRequired("in")
	_ = reclassifyCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(reclassifyCmd)
}
