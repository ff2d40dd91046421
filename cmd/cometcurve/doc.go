// Public domain.

/*
Command cometcurve fetches comet light curves from the Fink alert
broker and evaluates photometric activity models over them.

Fetch photometry and observing geometry for one or more objects:

	cometcurve fetch "C/2017 K2"

For each object this queries the Fink portal for ZTF alerts, queries
JPL Horizons for rh, delta and phase angle at every alert epoch, and
writes a light-curve CSV named after the object, for example
C2017K2_ZTF_FINK.csv.

Evaluate a model over a stored light curve:

	cometcurve predict --model hy --H 10 --n 4 C2017K2_ZTF_FINK.csv

prints per-row model magnitudes with observed-minus-computed residuals
and a summary rms.  Rows with unusable geometry are reported and
skipped; they do not abort the rest of the curve.

Service endpoints and the observer site may be set by flags or the
environment variables FINK_BASE_URL, HORIZONS_BASE_URL and
HORIZONS_SITE_CODE, optionally from a .env file in the working
directory.
*/
package main
