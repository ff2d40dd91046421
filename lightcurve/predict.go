// Public domain.

package lightcurve

import (
	"math"

	"github.com/JulienPeloton/activity-for-brokers/activity"
)

// Prediction pairs a light-curve row with a model magnitude.  Err is
// set per row; a bad row never invalidates the rest of the curve.
type Prediction struct {
	Row Row
	Mag float64
	Err error
}

// Predict evaluates m over each row.  Results are identical to calling
// m.Magnitude row by row.
func Predict(m activity.Model, rows []Row) []Prediction {
	ps := make([]Prediction, len(rows))
	for i, r := range rows {
		ps[i].Row = r
		ps[i].Mag, ps[i].Err = m.Magnitude(r.Geometry)
	}
	return ps
}

// Residuals returns observed-minus-computed magnitudes for the rows m
// evaluates on, with a count of rows skipped for evaluation errors.
func Residuals(m activity.Model, rows []Row) (oc []float64, skipped int) {
	for _, p := range Predict(m, rows) {
		if p.Err != nil {
			skipped++
			continue
		}
		oc = append(oc, p.Row.Mag-p.Mag)
	}
	return oc, skipped
}

// RMS is the root mean square of a residual set, 0 for an empty set.
func RMS(oc []float64) float64 {
	if len(oc) == 0 {
		return 0
	}
	var s float64
	for _, r := range oc {
		s += r * r
	}
	return math.Sqrt(s / float64(len(oc)))
}
