// Public domain.

package activity

import (
	"math"

	"github.com/soniakeys/unit"
)

// SchleicherMarcus evaluates the Schleicher-Marcus phase function for
// cometary comae, a composite of comet Halley at low phase angles and
// near-Sun comets at high phase angles.  For details see
// https://asteroid.lowell.edu/comet/dustphase/.
//
// The implementation is a polynomial fit to log10 Phi as a function of
// phase angle in degrees.  Phi is near 1 at zero phase and decreases
// through mid phase angles before forward scattering takes over.
func SchleicherMarcus(phase unit.Angle) float64 {
	p := phase.Deg()
	logPhi := ((((-8.1755e-11*p+1.6782e-8)*p-1.3820e-6)*p+
		2.205e-4)*p-1.85308e-2)*p + 9.6156e-4
	return math.Pow(10, logPhi)
}
