// SPDX-License-Identifier: MIT

package scan

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/warpkk/lfv"
	"github.com/katalvlaran/warpkk/neutrino"
	"github.com/katalvlaran/warpkk/warp"
	"github.com/katalvlaran/warpkk/yukawa"
)

// progressEvery controls how often the driver logs a progress line.
const progressEvery = 250

// Result is a completed campaign.
type Result struct {
	// RunID is the campaign UUID stamped into every row.
	RunID string

	// Rows are in grid order (c_L outer, then c_N, then c_E triple).
	Rows []Row

	// Accepted counts rows passing every filter.
	Accepted int
}

// point is one grid coordinate.
type point struct {
	cL, cN float64
	cE     [3]float64
}

// Run executes the campaign. Point evaluation fans out over a bounded
// errgroup; rows are stored by grid index so the output order is
// deterministic. Per-point physics failures are recorded in the row,
// not returned; Run errors only on invalid configuration or context
// cancellation.
func Run(ctx context.Context, cfg Config, logger *zap.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	ord, err := neutrino.ParseOrdering(cfg.Ordering)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	geo, err := warp.NewGeometry(warp.DefaultK, cfg.LambdaIR)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	masses, err := neutrino.Masses(cfg.LightestNuMass, ord)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	pmns, err := neutrino.PMNS(ord, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	triples := cfg.ceTriples()
	points := make([]point, 0, cfg.TotalPoints())
	for _, cL := range cfg.CLValues {
		for _, cN := range cfg.CNValues {
			for _, ce := range triples {
				points = append(points, point{cL: cL, cN: cN, cE: ce})
			}
		}
	}

	runID := uuid.New().String()
	logger.Info("scan started",
		zap.String("run_id", runID),
		zap.Int("points", len(points)),
		zap.Float64("lambda_ir", cfg.LambdaIR),
		zap.String("ordering", ord.String()),
	)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := make([]Row, len(points))
	var done, accepted atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range points {
		i, p := i, p
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = evaluatePoint(runID, geo, masses, pmns, cfg, p)
			if rows[i].PassesAll {
				accepted.Add(1)
			}
			if n := done.Add(1); n%progressEvery == 0 {
				logger.Info("scan progress",
					zap.Int64("done", n),
					zap.Int("total", len(points)),
					zap.Int64("accepted", accepted.Load()),
				)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan: sweep aborted: %w", err)
	}

	res := &Result{RunID: runID, Rows: rows, Accepted: int(accepted.Load())}
	logger.Info("scan complete",
		zap.String("run_id", runID),
		zap.Int("points", len(rows)),
		zap.Int("accepted", res.Accepted),
	)
	return res, nil
}

// evaluatePoint inverts one grid point and applies the filters. A
// physics error rejects the point with the error recorded.
func evaluatePoint(runID string, geo warp.Geometry, massesEV [3]float64, pmns *mat.CDense, cfg Config, p point) Row {
	row := Row{
		RunID:          runID,
		CL:             p.cL,
		CN:             p.cN,
		CE:             p.cE,
		LambdaIR:       cfg.LambdaIR,
		MN:             cfg.MN,
		LightestNuMass: cfg.LightestNuMass,
		Ordering:       cfg.Ordering,
		YbarE:          nan3(),
		YbarN:          nan3(),
		FL:             math.NaN(),
		FN:             math.NaN(),
		FNUV:           math.NaN(),
		MaxYbar:        math.NaN(),
		LFVRatio:       math.NaN(),
	}

	charged, err := yukawa.Charged(geo, p.cL, p.cE, yukawa.ChargedLeptonMasses())
	if err != nil {
		row.RejectReason = "error:" + err.Error()
		return row
	}
	nu, err := yukawa.NeutrinoDirac(geo, p.cL, p.cN, massesEV, cfg.MN)
	if err != nil {
		row.RejectReason = "error:" + err.Error()
		return row
	}

	row.YbarE = charged.Ybar
	row.YbarN = nu.Ybar
	row.FL = charged.FL
	row.FN = nu.FN
	row.FNUV = nu.FNUV

	all := append(append([]float64{}, charged.Ybar[:]...), nu.Ybar[:]...)
	maxY, minY := extrema(all)
	row.MaxYbar = maxY

	var reasons []string

	row.Perturbative = maxY < cfg.MaxYbar
	if !row.Perturbative {
		reasons = append(reasons, "perturbativity")
	}

	row.Natural = minY >= cfg.NaturalnessMin && maxY <= cfg.NaturalnessMax
	if !row.Natural {
		reasons = append(reasons, "naturalness")
	}

	verdict, err := lfv.CheckRaw(nu.Ybar, pmns, cfg.LambdaIR,
		lfv.WithCoefficient(cfg.LFVC),
		lfv.WithReferenceScale(cfg.LFVReferenceScale))
	if err != nil {
		row.RejectReason = "error:" + err.Error()
		return row
	}
	row.LFVPasses = verdict.Pass
	row.LFVRatio = verdict.Ratio
	if !verdict.Pass {
		reasons = append(reasons, "mu_to_e_gamma")
	}

	row.PassesAll = len(reasons) == 0
	row.RejectReason = strings.Join(reasons, ";")
	return row
}

func nan3() [3]float64 {
	n := math.NaN()
	return [3]float64{n, n, n}
}

func extrema(vs []float64) (max, min float64) {
	max, min = math.Inf(-1), math.Inf(1)
	for _, v := range vs {
		a := math.Abs(v)
		if a > max {
			max = a
		}
		if a < min {
			min = a
		}
	}
	return max, min
}

