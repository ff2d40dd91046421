// Public domain.

package activity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/soniakeys/unit"
	xrand "golang.org/x/exp/rand"

	"github.com/JulienPeloton/activity-for-brokers/activity"
)

func geom(rh, delta, alphaDeg float64) activity.Geometry {
	return activity.Geometry{
		RH:    rh,
		Delta: delta,
		Phase: unit.AngleFromDeg(alphaDeg),
	}
}

// All logarithmic terms vanish at rh = delta = 1 AU.
func TestHyUnitDistance(t *testing.T) {
	m, err := activity.Hy{H: 10, N: 4}.Magnitude(geom(1, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	if m != 10.0 {
		t.Fatalf("Hy(1, 1, H=10, n=4) = %g, want exactly 10", m)
	}
}

// Increasing observer distance never increases brightness for n >= 0.
func TestHyDeltaMonotonic(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for i := 0; i < 1000; i++ {
		rh := .1 + 40*rnd.Float64()
		d1 := .1 + 40*rnd.Float64()
		d2 := d1 + 10*rnd.Float64()
		h := 5 + 15*rnd.Float64()
		n := 8 * rnd.Float64()
		p := activity.Hy{H: h, N: n}
		m1, err := p.Magnitude(geom(rh, d1, 0))
		if err != nil {
			t.Fatal(err)
		}
		m2, err := p.Magnitude(geom(rh, d2, 0))
		if err != nil {
			t.Fatal(err)
		}
		if m2 < m1 {
			t.Fatalf("Hy brightened with distance: "+
				"rh %g, delta %g -> %g, m %g -> %g", rh, d1, d2, m1, m2)
		}
	}
}

// With b = 0 the distance-varying index collapses to a constant and
// Hab must equal Hy exactly.
func TestHabDegenerate(t *testing.T) {
	g := geom(2, 1, 0)
	mh, err := activity.Hy{H: 10, N: 4}.Magnitude(g)
	if err != nil {
		t.Fatal(err)
	}
	mab, err := activity.Hab{H: 10, A: 4, B: 0}.Magnitude(g)
	if err != nil {
		t.Fatal(err)
	}
	if mab != mh {
		t.Fatalf("Hab(b=0) = %g, Hy = %g", mab, mh)
	}

	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for i := 0; i < 1000; i++ {
		g := geom(.1+40*rnd.Float64(), .1+40*rnd.Float64(), 0)
		h := 5 + 15*rnd.Float64()
		a := -4 + 12*rnd.Float64()
		mh, err := activity.Hy{H: h, N: a}.Magnitude(g)
		if err != nil {
			t.Fatal(err)
		}
		mab, err := activity.Hab{H: h, A: a, B: 0}.Magnitude(g)
		if err != nil {
			t.Fatal(err)
		}
		if mab != mh {
			t.Fatalf("Hab(b=0) = %g, Hy = %g at %+v", mab, mh, g)
		}
	}
}

// The index must be evaluated at the rh of each observation.
func TestHabIndexVaries(t *testing.T) {
	p := activity.Hab{H: 10, A: 2, B: 1}
	// at rh = 3 the effective index is 5
	g := geom(3, 1, 0)
	m, err := p.Magnitude(g)
	if err != nil {
		t.Fatal(err)
	}
	want, err := activity.Hy{H: 10, N: 5}.Magnitude(g)
	if err != nil {
		t.Fatal(err)
	}
	if m != want {
		t.Fatalf("Hab = %g, want %g", m, want)
	}
}

// Summing two flux contributions must be strictly brighter than either
// component alone.
func TestHnHyBrighter(t *testing.T) {
	g := geom(3, 2.5, 12)
	p := activity.HnHy{Hn: 16, Beta: .04, H: 12, N: 4}
	m, err := p.Magnitude(g)
	if err != nil {
		t.Fatal(err)
	}
	mn := p.Hn + 5*math.Log10(g.RH*g.Delta) + p.Beta*g.Phase.Deg()
	mc, err := activity.Hy{H: p.H, N: p.N}.Magnitude(g)
	if err != nil {
		t.Fatal(err)
	}
	if !(m < mn && m < mc) {
		t.Fatalf("combined %g not brighter than nucleus %g and coma %g",
			m, mn, mc)
	}
}

// Zero Beta selects the documented default coefficient.
func TestHnHyBetaDefault(t *testing.T) {
	g := geom(3, 2.5, 30)
	m0, err := activity.HnHy{Hn: 16, H: 12, N: 4}.Magnitude(g)
	if err != nil {
		t.Fatal(err)
	}
	md, err := activity.HnHy{
		Hn: 16, Beta: activity.DefaultNucleusPhaseCoef, H: 12, N: 4,
	}.Magnitude(g)
	if err != nil {
		t.Fatal(err)
	}
	if m0 != md {
		t.Fatalf("default beta: %g, explicit: %g", m0, md)
	}
}

func TestHyPhi(t *testing.T) {
	g := geom(2, 1.5, 20)
	p := activity.HyPhi{H: 8, Y: -1.5}
	m, err := p.Magnitude(g)
	if err != nil {
		t.Fatal(err)
	}
	want := p.H + 5*math.Log10(g.RH*g.Delta) - 2.5*p.Y*math.Log10(g.RH) -
		2.5*math.Log10(activity.SchleicherMarcus(g.Phase))
	if math.Abs(m-want) > 1e-12 {
		t.Fatalf("HyPhi = %g, want %g", m, want)
	}

	// y = 0 at zero phase is plain inverse-square dimming of Phi(0)
	m, err = activity.HyPhi{H: 8}.Magnitude(geom(2, 1, 0))
	if err != nil {
		t.Fatal(err)
	}
	want = 8 + 5*math.Log10(2.0) -
		2.5*math.Log10(activity.SchleicherMarcus(0))
	if math.Abs(m-want) > 1e-12 {
		t.Fatalf("inactive HyPhi = %g, want %g", m, want)
	}
}

// Evaluating twice with identical inputs yields bit-identical output.
func TestDeterminism(t *testing.T) {
	g := geom(2.345, 1.678, 23.4)
	for _, m := range []activity.Model{
		activity.Hy{H: 10.1, N: 3.7},
		activity.Hab{H: 10.1, A: 2.2, B: .31},
		activity.HnHy{Hn: 16.2, Beta: .05, H: 11.3, N: 4.4},
		activity.HyPhi{H: 9.9, Y: -1.1},
	} {
		m1, err := m.Magnitude(g)
		if err != nil {
			t.Fatal(err)
		}
		m2, err := m.Magnitude(g)
		if err != nil {
			t.Fatal(err)
		}
		if m1 != m2 {
			t.Fatalf("%T: %g != %g", m, m1, m2)
		}
	}
}

// Non-positive distances are a domain error, never -Inf.
func TestDomainErrors(t *testing.T) {
	models := []activity.Model{
		activity.Hy{H: 10, N: 4},
		activity.Hab{H: 10, A: 4, B: .1},
		activity.HnHy{Hn: 16, H: 10, N: 4},
		activity.HyPhi{H: 10, Y: -1},
	}
	bad := []activity.Geometry{
		geom(0, 1, 0),
		geom(-1, 1, 0),
		geom(1, 0, 0),
		geom(1, -2, 0),
		geom(math.NaN(), 1, 0),
		geom(1, math.Inf(1), 0),
		{RH: 1, Delta: 1, Phase: unit.Angle(math.NaN())},
	}
	for _, m := range models {
		for _, g := range bad {
			v, err := m.Magnitude(g)
			if err == nil {
				t.Fatalf("%T at %+v: no error, got %g", m, g, v)
			}
			var re *activity.RangeError
			if !errors.As(err, &re) {
				t.Fatalf("%T at %+v: %v is not a RangeError", m, g, err)
			}
		}
	}
}

func TestParamErrors(t *testing.T) {
	g := geom(2, 1, 0)
	for _, m := range []activity.Model{
		activity.Hy{H: math.NaN(), N: 4},
		activity.Hab{H: 10, A: 4, B: math.Inf(1)},
		activity.HnHy{Hn: 16, Beta: math.NaN(), H: 10, N: 4},
		activity.HyPhi{H: 10, Y: math.NaN()},
	} {
		_, err := m.Magnitude(g)
		var pe *activity.ParamError
		if !errors.As(err, &pe) {
			t.Fatalf("%T: %v is not a ParamError", m, err)
		}
	}
}
