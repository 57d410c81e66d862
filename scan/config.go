// SPDX-License-Identifier: MIT

package scan

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/warpkk/neutrino"
)

// Sentinel errors.
var (
	// ErrInvalidConfig is returned when a campaign configuration
	// fails validation.
	ErrInvalidConfig = errors.New("scan: invalid configuration")

	// ErrBadRow is returned when a CSV row cannot be parsed back into
	// a Row.
	ErrBadRow = errors.New("scan: malformed result row")
)

// Config describes one scan campaign. The zero value is not usable;
// start from DefaultConfig or a YAML file.
type Config struct {
	// LambdaIR is the fixed KK scale (GeV).
	LambdaIR float64 `yaml:"lambda_ir"`

	// MN is the fixed UV Majorana mass (GeV).
	MN float64 `yaml:"m_n"`

	// LightestNuMass is the lightest neutrino mass (eV).
	LightestNuMass float64 `yaml:"lightest_nu_mass"`

	// Ordering is "normal" or "inverted".
	Ordering string `yaml:"ordering"`

	// CLValues and CNValues are the bulk-mass grids.
	CLValues []float64 `yaml:"c_l_values"`
	CNValues []float64 `yaml:"c_n_values"`

	// CEFixed pins the three charged-lepton bulk masses; ignored when
	// CEGrid is set.
	CEFixed []float64 `yaml:"c_e_fixed"`

	// CEGrid optionally scans the three charged-lepton bulk masses
	// independently (three grids).
	CEGrid [][]float64 `yaml:"c_e_grid"`

	// MaxYbar is the perturbativity bound.
	MaxYbar float64 `yaml:"max_y_bar"`

	// NaturalnessMin and NaturalnessMax bound every |Ȳ|.
	NaturalnessMin float64 `yaml:"naturalness_min"`
	NaturalnessMax float64 `yaml:"naturalness_max"`

	// LFVC and LFVReferenceScale parameterize the μ→eγ bound.
	LFVC              float64 `yaml:"lfv_c"`
	LFVReferenceScale float64 `yaml:"lfv_reference_scale"`

	// Workers bounds the parallel evaluators; 0 selects GOMAXPROCS.
	Workers int `yaml:"workers"`
}

// DefaultConfig is the 11×11 benchmark-neighborhood campaign.
func DefaultConfig() Config {
	return Config{
		LambdaIR:          3000.0,
		MN:                1.22e18,
		LightestNuMass:    0.002,
		Ordering:          "normal",
		CLValues:          linspace(0.50, 0.70, 11),
		CNValues:          linspace(0.20, 0.50, 11),
		CEFixed:           []float64{0.75, 0.60, 0.50},
		MaxYbar:           4.0,
		NaturalnessMin:    0.1,
		NaturalnessMax:    4.0,
		LFVC:              0.02,
		LFVReferenceScale: 3000.0,
	}
}

// LoadConfig reads a YAML campaign file over the defaults and
// validates it.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("scan: read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("scan: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the campaign invariants.
func (c Config) Validate() error {
	if !(c.LambdaIR > 0) || !(c.MN > 0) || c.LightestNuMass < 0 {
		return fmt.Errorf("%w: scales must be positive", ErrInvalidConfig)
	}
	if _, err := neutrino.ParseOrdering(c.Ordering); err != nil {
		return fmt.Errorf("%w: ordering %q", ErrInvalidConfig, c.Ordering)
	}
	if len(c.CLValues) == 0 || len(c.CNValues) == 0 {
		return fmt.Errorf("%w: empty c_L or c_N grid", ErrInvalidConfig)
	}
	if len(c.CEGrid) != 0 {
		if len(c.CEGrid) != 3 {
			return fmt.Errorf("%w: c_e_grid needs exactly 3 grids, got %d",
				ErrInvalidConfig, len(c.CEGrid))
		}
		for i, g := range c.CEGrid {
			if len(g) == 0 {
				return fmt.Errorf("%w: c_e_grid[%d] is empty", ErrInvalidConfig, i)
			}
		}
	} else if len(c.CEFixed) != 3 {
		return fmt.Errorf("%w: c_e_fixed needs exactly 3 values, got %d",
			ErrInvalidConfig, len(c.CEFixed))
	}
	if !(c.MaxYbar > 0) {
		return fmt.Errorf("%w: max_y_bar must be positive", ErrInvalidConfig)
	}
	if !(c.NaturalnessMin > 0) || c.NaturalnessMax < c.NaturalnessMin {
		return fmt.Errorf("%w: naturalness window must satisfy 0 < min <= max",
			ErrInvalidConfig)
	}
	if !(c.LFVC > 0) || !(c.LFVReferenceScale > 0) {
		return fmt.Errorf("%w: LFV bound parameters must be positive", ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be non-negative", ErrInvalidConfig)
	}
	return nil
}

// TotalPoints is the grid cardinality.
func (c Config) TotalPoints() int {
	n := len(c.CLValues) * len(c.CNValues)
	if len(c.CEGrid) == 3 {
		for _, g := range c.CEGrid {
			n *= len(g)
		}
	}
	return n
}

// ceTriples materializes the charged-lepton grid (a single triple in
// the fixed case).
func (c Config) ceTriples() [][3]float64 {
	if len(c.CEGrid) != 3 {
		return [][3]float64{{c.CEFixed[0], c.CEFixed[1], c.CEFixed[2]}}
	}
	out := make([][3]float64, 0, len(c.CEGrid[0])*len(c.CEGrid[1])*len(c.CEGrid[2]))
	for _, a := range c.CEGrid[0] {
		for _, b := range c.CEGrid[1] {
			for _, d := range c.CEGrid[2] {
				out = append(out, [3]float64{a, b, d})
			}
		}
	}
	return out
}

// linspace returns n evenly spaced samples over [lo, hi].
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	return out
}
