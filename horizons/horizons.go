// Public domain.

// Package horizons queries the JPL Horizons API for observer
// ephemerides: the heliocentric distance, observer distance and phase
// angle of a target at given epochs, as seen from an observatory site.
package horizons

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/soniakeys/unit"

	"github.com/JulienPeloton/activity-for-brokers/activity"
	"github.com/JulienPeloton/activity-for-brokers/internal/webapi"
)

// DefaultBaseURL is the public Horizons API endpoint.
const DefaultBaseURL = "https://ssd.jpl.nasa.gov/api/horizons.api"

// DefaultSite is the ZTF observatory code at Palomar.
const DefaultSite = "I41"

const jdOffset = 2400000.5

// Horizons caps discrete time lists; stay under it per request.
const tlistMax = 25

// Ephemeris is the observing geometry of a target at one epoch.
type Ephemeris struct {
	MJD float64
	activity.Geometry
}

// Client queries a Horizons endpoint.  The zero value uses the public
// API, the ZTF site code and http.DefaultClient.
type Client struct {
	BaseURL string
	Site    string // MPC observatory code of the observer location
	HTTP    *http.Client
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) site() string {
	if c.Site != "" {
		return c.Site
	}
	return DefaultSite
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

// Observer fetches rh, delta and phase angle for the object at each
// given epoch, observed from the client's site.  Results are in input
// order, one per epoch.
func (c *Client) Observer(ctx context.Context, object string,
	mjds []float64) ([]Ephemeris, error) {

	eph := make([]Ephemeris, 0, len(mjds))
	for len(mjds) > 0 {
		n := len(mjds)
		if n > tlistMax {
			n = tlistMax
		}
		chunk, err := c.observerChunk(ctx, object, mjds[:n])
		if err != nil {
			return nil, err
		}
		eph = append(eph, chunk...)
		mjds = mjds[n:]
	}
	return eph, nil
}

func (c *Client) observerChunk(ctx context.Context, object string,
	mjds []float64) ([]Ephemeris, error) {

	jds := make([]string, len(mjds))
	for i, mjd := range mjds {
		jds[i] = strconv.FormatFloat(mjd+jdOffset, 'f', 8, 64)
	}

	q := url.Values{}
	q.Set("format", "text")
	q.Set("COMMAND", quote(object))
	q.Set("OBJ_DATA", quote("NO"))
	q.Set("MAKE_EPHEM", quote("YES"))
	q.Set("EPHEM_TYPE", quote("OBSERVER"))
	q.Set("CENTER", quote(c.site()))
	q.Set("TLIST_TYPE", quote("JD"))
	q.Set("TLIST", quote(strings.Join(jds, " ")))
	// 19: heliocentric range, 20: observer range, 24: S-T-O phase angle
	q.Set("QUANTITIES", quote("19,20,24"))
	q.Set("CSV_FORMAT", quote("YES"))

	resp, err := webapi.DoWithRetry(ctx, c.httpClient(),
		func() (*http.Request, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet,
				c.base()+"?"+q.Encode(), nil)
			if err != nil {
				return nil, err
			}
			return req, nil
		})
	if err != nil {
		return nil, fmt.Errorf("horizons: query for %q: %w", object, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("horizons: read response: %w", err)
	}
	eph, err := parseObserver(string(body), mjds)
	if err != nil {
		return nil, fmt.Errorf("horizons: %q: %w", object, err)
	}
	return eph, nil
}

func quote(s string) string { return "'" + s + "'" }

// parseObserver extracts the ephemeris lines between the $$SOE and
// $$EOE markers of a Horizons observer-table response.  With CSV
// format and quantities 19,20,24 each line is
//
//	date, sun flag, moon flag, r, rdot, delta, deldot, S-T-O,
//
// one line per requested epoch, in request order.
func parseObserver(body string, mjds []float64) ([]Ephemeris, error) {
	lines := strings.Split(body, "\n")
	soe := -1
	eoe := -1
	for i, ln := range lines {
		switch strings.TrimSpace(ln) {
		case "$$SOE":
			soe = i
		case "$$EOE":
			eoe = i
		}
	}
	if soe < 0 || eoe < soe {
		return nil, fmt.Errorf("no ephemeris in response: %s", firstLine(body))
	}
	data := lines[soe+1 : eoe]
	if len(data) != len(mjds) {
		return nil, fmt.Errorf("%d ephemeris lines for %d epochs",
			len(data), len(mjds))
	}
	eph := make([]Ephemeris, len(data))
	for i, ln := range data {
		fields := strings.Split(ln, ",")
		if len(fields) < 8 {
			return nil, fmt.Errorf("short ephemeris line: %s", ln)
		}
		rh, err := parseField(fields[3], "r")
		if err != nil {
			return nil, err
		}
		delta, err := parseField(fields[5], "delta")
		if err != nil {
			return nil, err
		}
		sto, err := parseField(fields[7], "S-T-O")
		if err != nil {
			return nil, err
		}
		eph[i] = Ephemeris{
			MJD: mjds[i],
			Geometry: activity.Geometry{
				RH:    rh,
				Delta: delta,
				Phase: unit.AngleFromDeg(sto),
			},
		}
	}
	return eph, nil
}

func parseField(s, name string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}
	return v, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
