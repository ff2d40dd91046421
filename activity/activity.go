// Public domain.

// Package activity implements closed-form photometric brightness models
// for comets.  Each model is a pure function taking fit parameters and
// observing geometry and returning a predicted apparent magnitude.
//
// Models are value types implementing Model.  They hold no state, so a
// single value may be shared freely between goroutines and evaluated
// over a whole light curve.
package activity

import (
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// Geometry holds the observing geometry of a single measurement.
// Distances are in AU and must be strictly positive; the magnitude
// formulas take logarithms of both.
type Geometry struct {
	RH    float64    // Sun-object distance, AU
	Delta float64    // observer-object distance, AU
	Phase unit.Angle // Sun-object-observer angle
}

// Check verifies the formula preconditions: RH and Delta strictly
// positive and finite, Phase finite.  The phase function is poorly
// constrained near 180° but still evaluates; no upper limit is imposed.
func (g Geometry) Check() error {
	switch {
	case !(g.RH > 0) || math.IsInf(g.RH, 0):
		return &RangeError{"rh", g.RH}
	case !(g.Delta > 0) || math.IsInf(g.Delta, 0):
		return &RangeError{"delta", g.Delta}
	case math.IsNaN(g.Phase.Rad()) || math.IsInf(g.Phase.Rad(), 0):
		return &RangeError{"phase", g.Phase.Deg()}
	}
	return nil
}

// RangeError is the domain error for geometry the magnitude formulas
// are undefined on.  Callers evaluating a batch of observations should
// handle it per observation; one bad row says nothing about the rest
// of a light curve.
type RangeError struct {
	Name  string
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("activity: %s = %g out of range", e.Name, e.Value)
}

// ParamError reports a non-finite model coefficient.
type ParamError struct {
	Model string
	Name  string
	Value float64
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("activity: %s parameter %s = %g not finite",
		e.Model, e.Name, e.Value)
}

// Model is the common surface of the magnitude models, for callers
// that switch model variants polymorphically.  Magnitude returns the
// predicted apparent magnitude for the given geometry, or a
// *RangeError or *ParamError.
type Model interface {
	Magnitude(Geometry) (float64, error)
}

func checkParams(model string, ps ...param) error {
	for _, p := range ps {
		if math.IsNaN(p.v) || math.IsInf(p.v, 0) {
			return &ParamError{model, p.name, p.v}
		}
	}
	return nil
}

type param struct {
	name string
	v    float64
}

// Hy is the classic cometary power-law brightening model with the
// log-log slope as a free parameter,
//
//	m = H + 5 log10(delta) + 2.5 n log10(rh)
//
// No phase dependence is modeled; the variant is meant for
// single-filter datasets observed at roughly constant phase.
type Hy struct {
	H float64 // absolute magnitude at rh = delta = 1 AU
	N float64 // power-law index of the activity
}

func (p Hy) Magnitude(g Geometry) (float64, error) {
	if err := g.Check(); err != nil {
		return 0, err
	}
	if err := checkParams("Hy", param{"H", p.H}, param{"n", p.N}); err != nil {
		return 0, err
	}
	return p.H + 5*math.Log10(g.Delta) + 2.5*p.N*math.Log10(g.RH), nil
}

// Hab generalizes Hy with a power-law index that itself varies
// linearly with heliocentric distance,
//
//	n = a + b rh
//	m = H + 5 log10(delta) + 2.5 n log10(rh)
//
// capturing comets whose activity slope steepens or flattens with
// distance from the Sun.  The index is evaluated at the rh of each
// observation; A alone, the index extrapolated to rh = 0, has no
// physical meaning.
type Hab struct {
	H float64 // absolute magnitude at rh = delta = 1 AU
	A float64 // power-law index at rh = 0
	B float64 // index change per AU
}

func (p Hab) Magnitude(g Geometry) (float64, error) {
	if err := checkParams("Hab",
		param{"H", p.H}, param{"a", p.A}, param{"b", p.B}); err != nil {
		return 0, err
	}
	// With b = 0 this reduces exactly to Hy with n = a.
	return Hy{H: p.H, N: p.A + p.B*g.RH}.Magnitude(g)
}

// DefaultNucleusPhaseCoef is the linear phase coefficient applied to
// the HnHy nucleus term when Beta is left zero, in magnitudes per
// degree.  Dark comet nuclei cluster around this value.
const DefaultNucleusPhaseCoef = 0.04

// HnHy models a low-activity object as a phase-darkened nucleus plus a
// Hy coma.  The two components are combined in flux space,
//
//	m_n = Hn + 5 log10(rh delta) + beta alpha
//	m_c = H + 5 log10(delta) + 2.5 n log10(rh)
//	m = -2.5 log10(10^(-0.4 m_n) + 10^(-0.4 m_c))
//
// Only fluxes are additive; summing the components in magnitude space
// would bias predictions whenever the nucleus is comparable to the
// coma.  The nucleus term scales with rh*delta, the full inverse
// square of the Sun-nucleus-observer path.
type HnHy struct {
	Hn   float64 // nucleus absolute magnitude
	Beta float64 // nucleus phase coefficient, mag/deg; 0 selects DefaultNucleusPhaseCoef
	H    float64 // coma absolute magnitude
	N    float64 // coma power-law index
}

func (p HnHy) Magnitude(g Geometry) (float64, error) {
	if err := g.Check(); err != nil {
		return 0, err
	}
	if err := checkParams("HnHy", param{"Hn", p.Hn}, param{"beta", p.Beta},
		param{"H", p.H}, param{"n", p.N}); err != nil {
		return 0, err
	}
	beta := p.Beta
	if beta == 0 {
		beta = DefaultNucleusPhaseCoef
	}
	mn := p.Hn + 5*math.Log10(g.RH*g.Delta) + beta*g.Phase.Deg()
	mc := p.H + 5*math.Log10(g.Delta) + 2.5*p.N*math.Log10(g.RH)
	f := math.Pow(10, -.4*mn) + math.Pow(10, -.4*mc)
	return -2.5 * math.Log10(f), nil
}

// HyPhi is the phase-corrected activity model fit to broker photometry,
// with activity varying as rh^y,
//
//	m = H + 5 log10(rh delta) - 2.5 y log10(rh) - 2.5 log10(Phi(alpha))
//
// where Phi is the SchleicherMarcus coma phase function.  An inactive
// object has y = 0; a typical comet has y < 0.
type HyPhi struct {
	H float64 // absolute magnitude
	Y float64 // activity power-law exponent
}

func (p HyPhi) Magnitude(g Geometry) (float64, error) {
	if err := g.Check(); err != nil {
		return 0, err
	}
	if err := checkParams("HyPhi", param{"H", p.H}, param{"y", p.Y}); err != nil {
		return 0, err
	}
	return p.H + 5*math.Log10(g.RH*g.Delta) - 2.5*p.Y*math.Log10(g.RH) -
		2.5*math.Log10(SchleicherMarcus(g.Phase)), nil
}
