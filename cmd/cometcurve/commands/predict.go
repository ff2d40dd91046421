// Public domain.

package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/JulienPeloton/activity-for-brokers/activity"
	"github.com/JulienPeloton/activity-for-brokers/lightcurve"
)

func predictCmd() *cobra.Command {
	var (
		model      string
		h, n, a, b float64
		hn, beta   float64
		y          float64
	)
	cmd := &cobra.Command{
		Use:   "predict <lightcurve.csv>",
		Short: "Evaluate an activity model over a light curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := buildModel(model, h, n, a, b, hn, beta, y)
			if err != nil {
				return err
			}
			rows, err := lightcurve.ReadFile(args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%11s %7s %7s %7s %8s %8s %8s\n",
				"mjd", "rh", "delta", "alpha", "mag", "model", "o-c")
			var oc []float64
			for _, p := range lightcurve.Predict(m, rows) {
				if p.Err != nil {
					log.Printf("skipping mjd %.5f: %v", p.Row.MJD, p.Err)
					continue
				}
				r := p.Row.Mag - p.Mag
				fmt.Printf("%11.5f %7.3f %7.3f %7.2f %8.3f %8.3f %+8.3f\n",
					p.Row.MJD, p.Row.RH, p.Row.Delta, p.Row.Phase.Deg(),
					p.Row.Mag, p.Mag, r)
				oc = append(oc, r)
			}
			fmt.Printf("rms %.3f over %d of %d rows\n",
				lightcurve.RMS(oc), len(oc), len(rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&model, "model", "hy",
		"model variant: hy, hab, hnhy or hyphi")
	cmd.Flags().Float64Var(&h, "H", 10, "absolute magnitude")
	cmd.Flags().Float64Var(&n, "n", 4, "activity power-law index (hy, hnhy)")
	cmd.Flags().Float64Var(&a, "a", 4, "index at rh = 0 (hab)")
	cmd.Flags().Float64Var(&b, "b", 0, "index change per AU (hab)")
	cmd.Flags().Float64Var(&hn, "Hn", 16, "nucleus absolute magnitude (hnhy)")
	cmd.Flags().Float64Var(&beta, "beta", 0,
		"nucleus phase coefficient, mag/deg; 0 uses the default (hnhy)")
	cmd.Flags().Float64Var(&y, "y", 0, "activity exponent (hyphi)")
	return cmd
}

func buildModel(name string, h, n, a, b, hn, beta, y float64) (activity.Model, error) {
	switch name {
	case "hy":
		return activity.Hy{H: h, N: n}, nil
	case "hab":
		return activity.Hab{H: h, A: a, B: b}, nil
	case "hnhy":
		return activity.HnHy{Hn: hn, Beta: beta, H: h, N: n}, nil
	case "hyphi":
		return activity.HyPhi{H: h, Y: y}, nil
	}
	return nil, fmt.Errorf("unknown model %q", name)
}
