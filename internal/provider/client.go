// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/staranto/holidayctl/internal/holiday"
	"github.com/staranto/holidayctl/internal/version"
)

const (
	// DefaultBaseURL is the public Nager.Date v3 API.
	DefaultBaseURL = "https://date.nager.at/api/v3"
	DefaultTimeout = 10 * time.Second
)

// Client fetches a year of public holidays for a country.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a Client for baseURL. Empty values fall back to the defaults.
func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// URL returns the endpoint for countryCode and year.
func (c *Client) URL(countryCode string, year int) string {
	return fmt.Sprintf("%s/PublicHolidays/%d/%s", strings.TrimRight(c.BaseURL, "/"), year, countryCode)
}

// PublicHolidays performs a single GET, no retries. Failures are wrapped in
// holiday.ErrNetwork, holiday.ErrParse or holiday.ErrUnsupportedCountry.
func (c *Client) PublicHolidays(ctx context.Context, countryCode string, year int) (holiday.YearSet, error) {
	url := c.URL(countryCode, year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return holiday.YearSet{}, fmt.Errorf("%w: failed to create request: %w", holiday.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "holidayctl/"+version.Version)

	hc := c.HTTP
	if hc == nil {
		hc = &http.Client{Timeout: DefaultTimeout}
	}

	log.Debugf("GET %s", url)
	resp, err := hc.Do(req)
	if err != nil {
		return holiday.YearSet{}, friendlyTransport(err)
	}
	defer resp.Body.Close()

	var doc bytes.Buffer
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return holiday.YearSet{}, fmt.Errorf("%w: failed to read response: %w", holiday.ErrNetwork, err)
	}
	log.Debugf("status: %d, bytes: %d", resp.StatusCode, doc.Len())

	if err := checkStatus(resp.StatusCode, countryCode); err != nil {
		return holiday.YearSet{}, err
	}

	holidays, err := decode(doc.Bytes(), countryCode, year)
	if err != nil {
		return holiday.YearSet{}, err
	}

	return holiday.YearSet{
		CountryCode: countryCode,
		Year:        year,
		Holidays:    holidays,
	}, nil
}

// checkStatus maps the response status onto the error taxonomy.
func checkStatus(code int, countryCode string) error {
	switch {
	case code == http.StatusNoContent, code == http.StatusNotFound:
		return fmt.Errorf("%w: no holidays known for %q", holiday.ErrUnsupportedCountry, countryCode)
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: bad request", holiday.ErrNetwork)
	case code == http.StatusInternalServerError:
		return fmt.Errorf("%w: internal server error", holiday.ErrNetwork)
	case code == http.StatusServiceUnavailable:
		return fmt.Errorf("%w: service unavailable", holiday.ErrNetwork)
	default:
		return fmt.Errorf("%w: unexpected HTTP status: %d %s", holiday.ErrNetwork, code, http.StatusText(code))
	}
}

// requiredFields must be present on every holiday in a response.
var requiredFields = []string{"date", "localName", "name", "countryCode"}

// decode validates the body shape with gjson before the typed unmarshal so
// the caller gets a useful message instead of a bare json error.
func decode(body []byte, countryCode string, year int) ([]holiday.Holiday, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: no holidays known for %q", holiday.ErrUnsupportedCountry, countryCode)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: response is not valid JSON", holiday.ErrParse)
	}

	doc := gjson.ParseBytes(body)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: expected a JSON array, got %s", holiday.ErrParse, doc.Type)
	}

	items := doc.Array()
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no holidays known for %q", holiday.ErrUnsupportedCountry, countryCode)
	}

	for i, item := range items {
		for _, field := range requiredFields {
			if !item.Get(field).Exists() {
				return nil, fmt.Errorf("%w: holiday %d has no %q", holiday.ErrParse, i, field)
			}
		}
	}

	var holidays []holiday.Holiday
	if err := json.Unmarshal(body, &holidays); err != nil {
		return nil, fmt.Errorf("%w: %w", holiday.ErrParse, err)
	}

	for _, h := range holidays {
		if h.Date.Year != year {
			return nil, fmt.Errorf("%w: %s (%s) is outside %d", holiday.ErrParse, h.Date, h.Name, year)
		}
	}

	return holidays, nil
}

// friendlyTransport classifies a client.Do failure.
func friendlyTransport(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%w: request timed out, please try again later: %w", holiday.ErrNetwork, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: request canceled: %w", holiday.ErrNetwork, err)
	default:
		return fmt.Errorf("%w: unable to reach the holiday provider, check your connection: %w", holiday.ErrNetwork, err)
	}
}
