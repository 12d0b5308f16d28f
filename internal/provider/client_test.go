// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/holidayctl/internal/holiday"
)

const deHolidays = `[
  {"date":"2025-01-01","localName":"Neujahr","name":"New Year's Day","countryCode":"DE","fixed":false,"global":true,"counties":null,"launchYear":null,"types":["Public"]},
  {"date":"2025-01-06","localName":"Heilige Drei Könige","name":"Epiphany","countryCode":"DE","fixed":false,"global":false,"counties":["DE-BW","DE-BY","DE-ST"],"launchYear":null,"types":["Public"]}
]`

func newServer(t *testing.T, status int, body string) (*httptest.Server, *[]string) {
	t.Helper()
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &paths
}

func TestPublicHolidays(t *testing.T) {
	srv, paths := newServer(t, http.StatusOK, deHolidays)
	c := New(srv.URL+"/", time.Second)

	set, err := c.PublicHolidays(context.Background(), "DE", 2025)
	require.NoError(t, err)

	assert.Equal(t, []string{"/PublicHolidays/2025/DE"}, *paths)
	assert.Equal(t, "DE", set.CountryCode)
	assert.Equal(t, 2025, set.Year)
	require.Len(t, set.Holidays, 2)
	assert.Equal(t, holiday.NewDate(2025, time.January, 6), set.Holidays[1].Date)
	assert.Equal(t, "Heilige Drei Könige", set.Holidays[1].LocalName)
	assert.Equal(t, []string{"DE-BW", "DE-BY", "DE-ST"}, set.Holidays[1].Counties)
}

func TestPublicHolidaysErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, body: ``, wantErr: holiday.ErrUnsupportedCountry},
		{name: "no content", status: http.StatusNoContent, body: ``, wantErr: holiday.ErrUnsupportedCountry},
		{name: "empty array", status: http.StatusOK, body: `[]`, wantErr: holiday.ErrUnsupportedCountry},
		{name: "empty body", status: http.StatusOK, body: ``, wantErr: holiday.ErrUnsupportedCountry},
		{name: "bad request", status: http.StatusBadRequest, body: `{}`, wantErr: holiday.ErrNetwork},
		{name: "server error", status: http.StatusInternalServerError, body: ``, wantErr: holiday.ErrNetwork},
		{name: "unavailable", status: http.StatusServiceUnavailable, body: ``, wantErr: holiday.ErrNetwork},
		{name: "teapot", status: http.StatusTeapot, body: ``, wantErr: holiday.ErrNetwork},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: holiday.ErrParse},
		{name: "object", status: http.StatusOK, body: `{"date":"2025-01-01"}`, wantErr: holiday.ErrParse},
		{name: "missing name", status: http.StatusOK, body: `[{"date":"2025-01-01","localName":"x","countryCode":"DE"}]`, wantErr: holiday.ErrParse},
		{name: "missing localName", status: http.StatusOK, body: `[{"date":"2025-01-01","name":"x","countryCode":"DE"}]`, wantErr: holiday.ErrParse},
		{name: "missing countryCode", status: http.StatusOK, body: `[{"date":"2025-01-01","localName":"x","name":"x"}]`, wantErr: holiday.ErrParse},
		{name: "missing date", status: http.StatusOK, body: `[{"localName":"x","name":"x","countryCode":"DE"}]`, wantErr: holiday.ErrParse},
		{name: "bad date", status: http.StatusOK, body: `[{"date":"soon","localName":"x","name":"x","countryCode":"DE"}]`, wantErr: holiday.ErrParse},
		{name: "wrong year", status: http.StatusOK, body: `[{"date":"2024-12-31","localName":"x","name":"x","countryCode":"DE"}]`, wantErr: holiday.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newServer(t, tt.status, tt.body)
			c := New(srv.URL, time.Second)

			_, err := c.PublicHolidays(context.Background(), "ZZ", 2025)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPublicHolidaysUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, time.Second).PublicHolidays(context.Background(), "DE", 2025)
	assert.ErrorIs(t, err, holiday.ErrNetwork)
}

func TestPublicHolidaysTimeout(t *testing.T) {
	done := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(done) })

	_, err := New(srv.URL, 50*time.Millisecond).PublicHolidays(context.Background(), "DE", 2025)
	assert.ErrorIs(t, err, holiday.ErrNetwork)
	assert.Contains(t, err.Error(), "timed out")
}

func TestNewDefaults(t *testing.T) {
	c := New("", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
	assert.Equal(t, "https://date.nager.at/api/v3/PublicHolidays/2026/AT", c.URL("AT", 2026))
}
