// SPDX-License-Identifier: MIT

package scan

import (
	"fmt"
	"strconv"
)

// Row is one evaluated grid point. The field order mirrors the CSV
// schema.
type Row struct {
	// RunID identifies the campaign the row belongs to.
	RunID string

	// Inputs.
	CL, CN         float64
	CE             [3]float64
	LambdaIR       float64
	MN             float64
	LightestNuMass float64
	Ordering       string

	// Inverted couplings and overlaps (NaN when evaluation failed).
	YbarE, YbarN [3]float64
	FL, FN, FNUV float64
	MaxYbar      float64

	// Filter verdicts.
	Perturbative bool
	Natural      bool
	LFVPasses    bool
	LFVRatio     float64

	// PassesAll is true when every filter passed; RejectReason joins
	// the failed filter labels with ";".
	PassesAll    bool
	RejectReason string
}

// csvHeader is the stable column schema.
var csvHeader = []string{
	"run_id",
	"c_L", "c_N", "c_E1", "c_E2", "c_E3",
	"Lambda_IR", "M_N", "lightest_nu_mass", "ordering",
	"Y_E_bar_1", "Y_E_bar_2", "Y_E_bar_3",
	"Y_N_bar_1", "Y_N_bar_2", "Y_N_bar_3",
	"f_L", "f_N", "f_N_UV", "max_Y_bar",
	"perturbative", "natural", "lfv_passes", "lfv_ratio",
	"passes_all", "reject_reason",
}

// record flattens the row in header order.
func (r Row) record() []string {
	return []string{
		r.RunID,
		ftoa(r.CL), ftoa(r.CN), ftoa(r.CE[0]), ftoa(r.CE[1]), ftoa(r.CE[2]),
		ftoa(r.LambdaIR), ftoa(r.MN), ftoa(r.LightestNuMass), r.Ordering,
		ftoa(r.YbarE[0]), ftoa(r.YbarE[1]), ftoa(r.YbarE[2]),
		ftoa(r.YbarN[0]), ftoa(r.YbarN[1]), ftoa(r.YbarN[2]),
		ftoa(r.FL), ftoa(r.FN), ftoa(r.FNUV), ftoa(r.MaxYbar),
		btoa(r.Perturbative), btoa(r.Natural), btoa(r.LFVPasses), ftoa(r.LFVRatio),
		btoa(r.PassesAll), r.RejectReason,
	}
}

// parseRecord rebuilds a Row from a CSV record.
func parseRecord(rec []string) (Row, error) {
	if len(rec) != len(csvHeader) {
		return Row{}, fmt.Errorf("%w: got %d columns, want %d",
			ErrBadRow, len(rec), len(csvHeader))
	}
	fields := make([]float64, 0, 18)
	for _, idx := range []int{1, 2, 3, 4, 5, 6, 7, 8,
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19} {
		v, err := atof(rec[idx])
		if err != nil {
			return Row{}, fmt.Errorf("%w: column %q: %v", ErrBadRow, csvHeader[idx], err)
		}
		fields = append(fields, v)
	}
	bools := make([]bool, 0, 4)
	for _, idx := range []int{20, 21, 22, 24} {
		v, err := strconv.ParseBool(rec[idx])
		if err != nil {
			return Row{}, fmt.Errorf("%w: column %q: %v", ErrBadRow, csvHeader[idx], err)
		}
		bools = append(bools, v)
	}
	lfvRatio, err := atof(rec[23])
	if err != nil {
		return Row{}, fmt.Errorf("%w: column lfv_ratio: %v", ErrBadRow, err)
	}
	return Row{
		RunID:          rec[0],
		CL:             fields[0],
		CN:             fields[1],
		CE:             [3]float64{fields[2], fields[3], fields[4]},
		LambdaIR:       fields[5],
		MN:             fields[6],
		LightestNuMass: fields[7],
		Ordering:       rec[9],
		YbarE:          [3]float64{fields[8], fields[9], fields[10]},
		YbarN:          [3]float64{fields[11], fields[12], fields[13]},
		FL:             fields[14],
		FN:             fields[15],
		FNUV:           fields[16],
		MaxYbar:        fields[17],
		Perturbative:   bools[0],
		Natural:        bools[1],
		LFVPasses:      bools[2],
		LFVRatio:       lfvRatio,
		PassesAll:      bools[3],
		RejectReason:   rec[25],
	}, nil
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func btoa(v bool) string { return strconv.FormatBool(v) }

func atof(s string) (float64, error) { return strconv.ParseFloat(s, 64) }
