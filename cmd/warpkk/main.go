// SPDX-License-Identifier: MIT

// Command warpkk is the workbench CLI for the warped-seesaw toolkit:
// KK towers, Yukawa inversion at the benchmark point, parameter
// scans, α_s running and quick-look plots.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "warpkk",
	Short: "Warped 5D seesaw workbench",
	Long: `warpkk explores a slice of AdS5 between a UV and an IR brane:
Kaluza-Klein towers from Bessel boundary conditions, charged-lepton
and seesaw Yukawa inversion, the mu -> e gamma dipole bound, QCD
coupling running and bulk-mass parameter scans.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
