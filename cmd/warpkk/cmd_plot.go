// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/warpkk/kk"
	"github.com/katalvlaran/warpkk/qcd"
	"github.com/katalvlaran/warpkk/warp"
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render quick-look plots to PNG",
}

var plotSpectrumFlags struct {
	bc       string
	cMin     float64
	cMax     float64
	steps    int
	modes    int
	lambdaIR float64
	out      string
}

// plotSpectrumCmd draws the first KK masses against the fermion bulk
// mass parameter, one line per mode.
var plotSpectrumCmd = &cobra.Command{
	Use:   "spectrum",
	Short: "KK masses versus the fermion bulk mass parameter",
	RunE: func(cmd *cobra.Command, args []string) error {
		if plotSpectrumFlags.steps < 2 {
			return fmt.Errorf("--steps must be at least 2")
		}
		if plotSpectrumFlags.modes < 1 {
			return fmt.Errorf("--modes must be at least 1")
		}
		geo, err := warp.NewGeometry(warp.DefaultK, plotSpectrumFlags.lambdaIR)
		if err != nil {
			return err
		}

		lines := make([]plotter.XYs, plotSpectrumFlags.modes)
		step := (plotSpectrumFlags.cMax - plotSpectrumFlags.cMin) /
			float64(plotSpectrumFlags.steps-1)
		for i := 0; i < plotSpectrumFlags.steps; i++ {
			c := plotSpectrumFlags.cMin + float64(i)*step
			field, err := parseField("fermion", plotSpectrumFlags.bc, c)
			if err != nil {
				return err
			}
			spec, err := kk.Solve(field, geo, kk.WithNumRoots(plotSpectrumFlags.modes))
			if err != nil {
				return fmt.Errorf("c = %g: %w", c, err)
			}
			for n, m := range spec.Masses {
				lines[n] = append(lines[n], plotter.XY{X: c, Y: m})
			}
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("KK tower, fermion %s, Lambda_IR = %g GeV",
			plotSpectrumFlags.bc, plotSpectrumFlags.lambdaIR)
		p.X.Label.Text = "bulk mass c"
		p.Y.Label.Text = "m_n (GeV)"
		for n, pts := range lines {
			line, err := plotter.NewLine(pts)
			if err != nil {
				return err
			}
			line.Color = plotutil.Color(n)
			p.Add(line)
			p.Legend.Add(fmt.Sprintf("n=%d", n+1), line)
		}
		p.Legend.Top = true

		if err := p.Save(6*vg.Inch, 4*vg.Inch, plotSpectrumFlags.out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", plotSpectrumFlags.out)
		return nil
	},
}

var plotAlphasFlags struct {
	muMin float64
	muMax float64
	steps int
	loops int
	out   string
}

// plotAlphasCmd draws the running coupling on a log scale.
var plotAlphasCmd = &cobra.Command{
	Use:   "alphas",
	Short: "alpha_s(mu) over a log scale range",
	RunE: func(cmd *cobra.Command, args []string) error {
		if plotAlphasFlags.steps < 2 {
			return fmt.Errorf("--steps must be at least 2")
		}
		if !(plotAlphasFlags.muMin > 0) || plotAlphasFlags.muMax <= plotAlphasFlags.muMin {
			return fmt.Errorf("need 0 < --mu-min < --mu-max")
		}
		if plotAlphasFlags.loops < 1 || plotAlphasFlags.loops > 4 {
			return fmt.Errorf("--loops must lie in 1..4")
		}

		ratio := math.Pow(plotAlphasFlags.muMax/plotAlphasFlags.muMin,
			1/float64(plotAlphasFlags.steps-1))
		pts := make(plotter.XYs, 0, plotAlphasFlags.steps)
		mu := plotAlphasFlags.muMin
		for i := 0; i < plotAlphasFlags.steps; i++ {
			a, err := qcd.AlphaS(mu, qcd.WithLoops(plotAlphasFlags.loops))
			if err != nil {
				return fmt.Errorf("mu = %g: %w", mu, err)
			}
			pts = append(pts, plotter.XY{X: mu, Y: a})
			mu *= ratio
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("alpha_s, %d-loop running", plotAlphasFlags.loops)
		p.X.Label.Text = "mu (GeV)"
		p.Y.Label.Text = "alpha_s"
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		p.Add(line)

		if err := p.Save(6*vg.Inch, 4*vg.Inch, plotAlphasFlags.out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", plotAlphasFlags.out)
		return nil
	},
}

func init() {
	plotSpectrumCmd.Flags().StringVar(&plotSpectrumFlags.bc, "bc", "++",
		"boundary condition: ++|--")
	plotSpectrumCmd.Flags().Float64Var(&plotSpectrumFlags.cMin, "c-min", -1.0,
		"bulk mass range start")
	plotSpectrumCmd.Flags().Float64Var(&plotSpectrumFlags.cMax, "c-max", 1.0,
		"bulk mass range end")
	plotSpectrumCmd.Flags().IntVar(&plotSpectrumFlags.steps, "steps", 41, "grid points")
	plotSpectrumCmd.Flags().IntVarP(&plotSpectrumFlags.modes, "modes", "n", 3,
		"number of KK modes")
	plotSpectrumCmd.Flags().Float64Var(&plotSpectrumFlags.lambdaIR, "lambda-ir", 3000,
		"KK scale (GeV)")
	plotSpectrumCmd.Flags().StringVarP(&plotSpectrumFlags.out, "out", "o", "spectrum.png",
		"output image path")
	plotCmd.AddCommand(plotSpectrumCmd)

	plotAlphasCmd.Flags().Float64Var(&plotAlphasFlags.muMin, "mu-min", 2, "lower scale (GeV)")
	plotAlphasCmd.Flags().Float64Var(&plotAlphasFlags.muMax, "mu-max", 10000, "upper scale (GeV)")
	plotAlphasCmd.Flags().IntVar(&plotAlphasFlags.steps, "steps", 200, "samples")
	plotAlphasCmd.Flags().IntVar(&plotAlphasFlags.loops, "loops", 4, "beta-function order (1-4)")
	plotAlphasCmd.Flags().StringVarP(&plotAlphasFlags.out, "out", "o", "alphas.png",
		"output image path")
	plotCmd.AddCommand(plotAlphasCmd)

	rootCmd.AddCommand(plotCmd)
}
