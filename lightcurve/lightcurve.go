// Public domain.

// Package lightcurve reads and writes the broker light-curve CSV
// format and evaluates activity models over it.
//
// A light curve is one row per observation with columns
//
//	mjd, rh, delta, alpha, aper_arcsec, mag, mag_err, filter
//
// as written by the fetch tooling.  Files written by pandas carry a
// leading unnamed index column and sometimes trailing bookkeeping
// columns; the reader keys on the header and ignores both.
package lightcurve

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/unit"

	"github.com/JulienPeloton/activity-for-brokers/activity"
)

// JDOffset converts between Julian date and modified Julian date:
// MJD = JD - JDOffset.
const JDOffset = 2400000.5

// Columns is the on-disk column order.
var Columns = []string{
	"mjd", "rh", "delta", "alpha", "aper_arcsec", "mag", "mag_err", "filter",
}

// Row is a single photometric observation.
type Row struct {
	MJD float64 // epoch, modified Julian date
	activity.Geometry
	AperArcsec float64 // photometric aperture; 0 for PSF photometry
	Mag        float64 // observed apparent magnitude
	MagErr     float64 // 1-sigma magnitude uncertainty
	Filter     string  // band name, e.g. g or r
}

// Time returns the row's epoch as UTC civil time.
func (r Row) Time() time.Time {
	return julian.JDToTime(r.MJD + JDOffset)
}

// TimeToMJD converts civil time to a modified Julian date.
func TimeToMJD(t time.Time) float64 {
	return julian.TimeToJD(t) - JDOffset
}

// Read parses light-curve rows from CSV.  Column order is taken from
// the header; columns beyond the required eight are ignored.
func Read(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("lightcurve: read header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	for _, name := range Columns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("lightcurve: missing column %q", name)
		}
	}
	var rows []Row
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("lightcurve: %w", err)
		}
		row, err := parseRow(rec, col)
		if err != nil {
			return nil, fmt.Errorf("lightcurve: line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadFile reads a light-curve CSV file.
func ReadFile(name string) ([]Row, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

func parseRow(rec []string, col map[string]int) (Row, error) {
	var r Row
	var alpha float64
	for _, f := range []struct {
		name string
		p    *float64
	}{
		{"mjd", &r.MJD},
		{"rh", &r.RH},
		{"delta", &r.Delta},
		{"alpha", &alpha},
		{"aper_arcsec", &r.AperArcsec},
		{"mag", &r.Mag},
		{"mag_err", &r.MagErr},
	} {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[col[f.name]]), 64)
		if err != nil {
			return r, fmt.Errorf("column %s: %w", f.name, err)
		}
		*f.p = v
	}
	r.Phase = unit.AngleFromDeg(alpha)
	r.Filter = strings.TrimSpace(rec[col["filter"]])
	return r, nil
}

// Write writes rows as CSV in the standard column order.
func Write(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			fs(r.MJD), fs(r.RH), fs(r.Delta), fs(r.Phase.Deg()),
			fs(r.AperArcsec), fs(r.Mag), fs(r.MagErr), r.Filter,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteFile writes rows to a light-curve CSV file.
func WriteFile(name string, rows []Row) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Write(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fs(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
