// Public domain.

// Package fink queries the Fink alert broker for solar system object
// photometry.
package fink

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/JulienPeloton/activity-for-brokers/internal/webapi"
)

// DefaultBaseURL is the public Fink portal.
const DefaultBaseURL = "https://fink-portal.org"

// ErrNoData means the broker has no alerts for the requested object.
var ErrNoData = errors.New("fink: no such object or no data found at broker")

// Alert is one ZTF photometric alert for a solar system object, with
// field names as served by the broker.
type Alert struct {
	JD     float64 `json:"i:jd"`       // epoch, Julian date
	MagPSF float64 `json:"i:magpsf"`   // PSF-fit apparent magnitude
	SigPSF float64 `json:"i:sigmapsf"` // 1-sigma magnitude uncertainty
	FID    int     `json:"i:fid"`      // ZTF filter id
}

const jdOffset = 2400000.5

// MJD returns the alert epoch as a modified Julian date.
func (a Alert) MJD() float64 { return a.JD - jdOffset }

// Filter maps the ZTF filter id to its band name.
func (a Alert) Filter() string {
	switch a.FID {
	case 1:
		return "g"
	case 2:
		return "r"
	}
	return "fid" + strconv.Itoa(a.FID)
}

// Client queries a Fink portal instance.  The zero value uses the
// public portal and http.DefaultClient.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}

type ssoRequest struct {
	NOrD         string `json:"n_or_d"`
	WithEphem    bool   `json:"withEphem"`
	OutputFormat string `json:"output-format"`
}

// SSO fetches all alerts the broker holds for a solar system object,
// identified by name or designation.  Returns ErrNoData if the broker
// answers with an empty set.
func (c *Client) SSO(ctx context.Context, name string) ([]Alert, error) {
	body, err := json.Marshal(ssoRequest{
		NOrD:         name,
		WithEphem:    true,
		OutputFormat: "json",
	})
	if err != nil {
		return nil, err
	}
	resp, err := webapi.DoWithRetry(ctx, c.httpClient(),
		func() (*http.Request, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodPost,
				c.base()+"/api/v1/sso", bytes.NewReader(body))
			if err != nil {
				return nil, err
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Accept", "application/json")
			return req, nil
		})
	if err != nil {
		return nil, fmt.Errorf("fink: sso query for %q: %w", name, err)
	}
	defer resp.Body.Close()

	var alerts []Alert
	if err := json.NewDecoder(resp.Body).Decode(&alerts); err != nil {
		return nil, fmt.Errorf("fink: decode sso response: %w", err)
	}
	if len(alerts) == 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrNoData)
	}
	return alerts, nil
}
