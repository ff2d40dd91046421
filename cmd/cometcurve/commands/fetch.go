// Public domain.

package commands

import (
	"context"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JulienPeloton/activity-for-brokers/fink"
	"github.com/JulienPeloton/activity-for-brokers/horizons"
	"github.com/JulienPeloton/activity-for-brokers/lightcurve"
)

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch <object>...",
		Short: "Fetch broker photometry and Horizons geometry, write light-curve CSVs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fc := &fink.Client{BaseURL: finkBase}
			hc := &horizons.Client{BaseURL: horizonsBase, Site: siteCode}
			for _, name := range args {
				if err := fetchObject(cmd.Context(), fc, hc, name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func fetchObject(ctx context.Context, fc *fink.Client, hc *horizons.Client,
	name string) error {

	log.Printf("starting Fink and Horizons queries for %s", name)
	alerts, err := fc.SSO(ctx, name)
	if err != nil {
		return err
	}

	mjds := make([]float64, len(alerts))
	for i, a := range alerts {
		mjds[i] = a.MJD()
	}
	eph, err := hc.Observer(ctx, name, mjds)
	if err != nil {
		return err
	}

	rows := make([]lightcurve.Row, len(alerts))
	for i, a := range alerts {
		rows[i] = lightcurve.Row{
			MJD:      a.MJD(),
			Geometry: eph[i].Geometry,
			// alerts carry PSF photometry, no aperture
			AperArcsec: 0,
			Mag:        a.MagPSF,
			MagErr:     a.SigPSF,
			Filter:     a.Filter(),
		}
	}

	out := outputName(name)
	if err := lightcurve.WriteFile(out, rows); err != nil {
		return err
	}
	log.Printf("wrote %s, %d rows", out, len(rows))
	return nil
}

// outputName cleans an object designation into a file name,
// "C/2017 K2" -> "C2017K2_ZTF_FINK.csv".
func outputName(object string) string {
	clean := strings.NewReplacer("/", "", " ", "").Replace(object)
	return clean + "_ZTF_FINK.csv"
}
