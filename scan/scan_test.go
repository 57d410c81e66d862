package scan_test

import (
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/katalvlaran/warpkk/scan"
)

// TestMain guards every test in the package against goroutine leaks
// from the worker pool.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// benchmarkConfig is a single-point campaign at the published
// benchmark coordinates.
func benchmarkConfig() scan.Config {
	cfg := scan.DefaultConfig()
	cfg.CLValues = []float64{0.58}
	cfg.CNValues = []float64{0.27}
	cfg.Workers = 2
	return cfg
}

// TestRun_BenchmarkPoint evaluates the benchmark point under the
// default thresholds: the tau coupling of 5.4 breaks perturbativity
// and naturalness, and the LFV element of 0.072 breaks the dipole
// bound, so all three reject reasons fire.
func TestRun_BenchmarkPoint(t *testing.T) {
	res, err := scan.Run(context.Background(), benchmarkConfig(), zap.NewNop())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)
	require.NotEmpty(t, res.RunID)

	row := res.Rows[0]
	assert.Equal(t, res.RunID, row.RunID)
	assert.InDelta(t, 0.01598, row.FL, 1e-4)
	assert.InDelta(t, 2.94, row.YbarE[0], 0.02)
	assert.InDelta(t, 5.42, row.YbarE[2], 0.02)
	assert.InDelta(t, 0.204, row.YbarN[0], 2e-3)

	assert.False(t, row.Perturbative)
	assert.False(t, row.Natural)
	assert.False(t, row.LFVPasses)
	assert.InDelta(t, 0.0723/0.02, row.LFVRatio, 0.05)
	assert.False(t, row.PassesAll)
	assert.Equal(t, "perturbativity;naturalness;mu_to_e_gamma", row.RejectReason)
	assert.Zero(t, res.Accepted)
}

// TestRun_LooseThresholdsAccept widens every filter until the
// benchmark passes.
func TestRun_LooseThresholdsAccept(t *testing.T) {
	cfg := benchmarkConfig()
	cfg.MaxYbar = 10.0
	cfg.NaturalnessMin = 0.01
	cfg.NaturalnessMax = 10.0
	cfg.LFVC = 0.1 // ratio 0.72 < 1

	res, err := scan.Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, res.Rows, 1)

	row := res.Rows[0]
	assert.True(t, row.Perturbative)
	assert.True(t, row.Natural)
	assert.True(t, row.LFVPasses)
	assert.True(t, row.PassesAll)
	assert.Empty(t, row.RejectReason)
	assert.Equal(t, 1, res.Accepted)
}

// TestRun_GridOrderDeterministic checks rows land in grid order
// (c_L outer, c_N middle, c_E triples inner) independent of worker
// count, and that two runs agree on everything except the run id.
func TestRun_GridOrderDeterministic(t *testing.T) {
	cfg := scan.DefaultConfig()
	cfg.CLValues = []float64{0.55, 0.60}
	cfg.CNValues = []float64{0.25, 0.30}
	cfg.CEGrid = [][]float64{{0.70, 0.75}, {0.60}, {0.50}}

	cfg.Workers = 1
	serial, err := scan.Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	cfg.Workers = 8
	parallel, err := scan.Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, serial.Rows, 8)
	assert.Equal(t, 0.55, serial.Rows[0].CL)
	assert.Equal(t, 0.25, serial.Rows[0].CN)
	assert.Equal(t, 0.70, serial.Rows[0].CE[0])
	assert.Equal(t, 0.75, serial.Rows[1].CE[0], "c_E triple is the innermost axis")
	assert.Equal(t, 0.30, serial.Rows[2].CN)
	assert.Equal(t, 0.60, serial.Rows[4].CL)

	diff := cmp.Diff(serial.Rows, parallel.Rows,
		cmpopts.IgnoreFields(scan.Row{}, "RunID"),
		cmpopts.EquateNaNs(),
	)
	assert.Empty(t, diff)
}

// TestRun_Cancelled aborts the sweep on a dead context.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := scan.DefaultConfig()
	cfg.Workers = 2
	_, err := scan.Run(ctx, cfg, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestRun_InvalidConfig rejects broken campaigns up front.
func TestRun_InvalidConfig(t *testing.T) {
	cfg := scan.DefaultConfig()
	cfg.CEFixed = []float64{0.75}

	_, err := scan.Run(context.Background(), cfg, zap.NewNop())
	assert.ErrorIs(t, err, scan.ErrInvalidConfig)
}

// TestConfig_Validate walks the gate table.
func TestConfig_Validate(t *testing.T) {
	mutations := map[string]func(*scan.Config){
		"zero lambda":     func(c *scan.Config) { c.LambdaIR = 0 },
		"bad ordering":    func(c *scan.Config) { c.Ordering = "diagonal" },
		"empty c_L grid":  func(c *scan.Config) { c.CLValues = nil },
		"short c_e":       func(c *scan.Config) { c.CEFixed = []float64{1, 2} },
		"short c_e grid":  func(c *scan.Config) { c.CEGrid = [][]float64{{0.7}} },
		"zero max Y":      func(c *scan.Config) { c.MaxYbar = 0 },
		"inverted window": func(c *scan.Config) { c.NaturalnessMin = 2; c.NaturalnessMax = 1 },
		"zero lfv C":      func(c *scan.Config) { c.LFVC = 0 },
		"negative worker": func(c *scan.Config) { c.Workers = -1 },
	}
	for name, mutate := range mutations {
		cfg := scan.DefaultConfig()
		mutate(&cfg)
		assert.ErrorIs(t, cfg.Validate(), scan.ErrInvalidConfig, name)
	}

	assert.NoError(t, scan.DefaultConfig().Validate())
}

// TestConfig_TotalPoints counts both grid shapes.
func TestConfig_TotalPoints(t *testing.T) {
	cfg := scan.DefaultConfig()
	assert.Equal(t, 121, cfg.TotalPoints())

	cfg.CEGrid = [][]float64{{0.7, 0.75}, {0.6, 0.65}, {0.5}}
	assert.Equal(t, 121*4, cfg.TotalPoints())
}

// TestLoadConfig reads YAML over the defaults.
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.yaml")
	yaml := []byte(`
lambda_ir: 5000
ordering: inverted
c_l_values: [0.55]
c_n_values: [0.30]
workers: 4
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o644))

	cfg, err := scan.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5000.0, cfg.LambdaIR)
	assert.Equal(t, "inverted", cfg.Ordering)
	assert.Equal(t, []float64{0.55}, cfg.CLValues)
	assert.Equal(t, 4, cfg.Workers)
	// Untouched defaults survive.
	assert.Equal(t, 1.22e18, cfg.MN)
	assert.Equal(t, []float64{0.75, 0.60, 0.50}, cfg.CEFixed)

	_, err = scan.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

// TestCSV_Roundtrip writes and re-reads rows, including a failed
// point full of NaNs.
func TestCSV_Roundtrip(t *testing.T) {
	cfg := benchmarkConfig()
	res, err := scan.Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	rows := append([]scan.Row{}, res.Rows...)
	failed := rows[0]
	failed.YbarE = [3]float64{math.NaN(), math.NaN(), math.NaN()}
	failed.YbarN = [3]float64{math.NaN(), math.NaN(), math.NaN()}
	failed.FL, failed.FN, failed.FNUV = math.NaN(), math.NaN(), math.NaN()
	failed.MaxYbar, failed.LFVRatio = math.NaN(), math.NaN()
	failed.PassesAll = false
	failed.RejectReason = "error:yukawa: zero-mode overlap vanishes"
	rows = append(rows, failed)

	path := filepath.Join(t.TempDir(), "rows.csv")
	require.NoError(t, scan.WriteCSV(path, rows))

	back, err := scan.ReadCSV(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(rows, back, cmpopts.EquateNaNs()))
}

// TestReclassify tightens thresholds over synthetic rows and checks
// the verdict delta.
func TestReclassify(t *testing.T) {
	cfg := benchmarkConfig()
	cfg.MaxYbar = 10.0
	cfg.NaturalnessMin = 0.01
	cfg.NaturalnessMax = 10.0
	cfg.LFVC = 0.1
	res, err := scan.Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	require.Equal(t, 1, res.Accepted)

	rows := res.Rows

	// Re-apply the strict defaults: the benchmark flips to rejected.
	sum, err := scan.Reclassify(rows, scan.DefaultReclassifyOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.AcceptedBefore)
	assert.Equal(t, 0, sum.AcceptedAfter)
	assert.Equal(t, 1, sum.Flipped)
	assert.False(t, rows[0].PassesAll)
	assert.Contains(t, rows[0].RejectReason, "perturbativity")

	// Loosening again flips it back; the stored LFV ratio (0.72 under
	// the loose campaign coefficient) passes as-is.
	loose := scan.ReclassifyOptions{
		MaxYbar:        10,
		NaturalnessMin: 0.01,
		NaturalnessMax: 10,
		RequireLFV:     true,
	}
	sum, err = scan.Reclassify(rows, loose)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.AcceptedAfter)
	assert.True(t, rows[0].PassesAll)
}

// TestReclassify_ErrorRowsStayRejected keeps failed evaluations out
// regardless of thresholds.
func TestReclassify_ErrorRowsStayRejected(t *testing.T) {
	rows := []scan.Row{{
		RunID:        "r",
		Ordering:     "normal",
		YbarE:        [3]float64{math.NaN(), math.NaN(), math.NaN()},
		YbarN:        [3]float64{math.NaN(), math.NaN(), math.NaN()},
		RejectReason: "error:boom",
	}}

	sum, err := scan.Reclassify(rows, scan.DefaultReclassifyOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, sum.AcceptedAfter)
	assert.False(t, rows[0].PassesAll)
	assert.Equal(t, "error:boom", rows[0].RejectReason)
}

// TestReclassifyCSV runs the file-to-file path end to end.
func TestReclassifyCSV(t *testing.T) {
	cfg := benchmarkConfig()
	res, err := scan.Run(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")
	require.NoError(t, scan.WriteCSV(in, res.Rows))

	opts := scan.ReclassifyOptions{
		MaxYbar:        10,
		NaturalnessMin: 0.01,
		NaturalnessMax: 10,
		RequireLFV:     false,
	}
	sum, err := scan.ReclassifyCSV(in, out, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 0, sum.AcceptedBefore)
	assert.Equal(t, 1, sum.AcceptedAfter)

	back, err := scan.ReadCSV(out)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.True(t, back[0].PassesAll)
}
