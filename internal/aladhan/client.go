package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	baseURL = "https://api.aladhan.com"
	appName = "RamadanApp"

	requestTimeout = 10 * time.Second
)

// Client is a client for the AlAdhan prayer-times API.

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new AlAdhan API client.

func NewClient() *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// FetchTimings queries one calculation method for one location and date.
// It never returns an error: timeouts, non-2xx statuses and malformed payloads
// are all captured in the SourceResult so each method fails independently.

func (c *Client) FetchTimings(ctx context.Context, method Method, loc Location, date time.Time) SourceResult {
	url := fmt.Sprintf("%s/v1/timings/%s?latitude=%f&longitude=%f&method=%d",
		c.BaseURL, date.Format("02-01-2006"), loc.Latitude, loc.Longitude, method.ID)

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return failure(method, fmt.Sprintf("error creating request: %v", err))
	}
	req.Header.Set("User-Agent", fmt.Sprintf("%s/1.0", appName))
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return failure(method, fmt.Sprintf("error making request: %v", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return failure(method, fmt.Sprintf("HTTP %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(method, fmt.Sprintf("error reading response body: %v", err))
	}

	var parsed timingsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return failure(method, fmt.Sprintf("invalid JSON response: %v", err))
	}
	if parsed.Code != http.StatusOK {
		return failure(method, fmt.Sprintf("API error: %s", parsed.Status))
	}

	t := parsed.Data.Timings
	return SourceResult{
		Method: method,
		Times: &Times{
			Fajr:    cleanTime(t.Fajr),
			Dhuhr:   cleanTime(t.Dhuhr),
			Asr:     cleanTime(t.Asr),
			Maghrib: cleanTime(t.Maghrib),
			Isha:    cleanTime(t.Isha),
			Date:    displayDate(parsed),
		},
	}
}

func failure(method Method, msg string) SourceResult {
	return SourceResult{Method: method, Err: msg}
}

// cleanTime strips a trailing timezone annotation like " (EET)", keeping HH:MM.
func cleanTime(raw string) string {
	if i := strings.IndexByte(raw, ' '); i >= 0 {
		return raw[:i]
	}
	return raw
}

// displayDate renders the Gregorian readable date plus the Hijri date when present.
func displayDate(parsed timingsResponse) string {
	hijri := parsed.Data.Date.Hijri
	if hijri.Day == "" {
		return parsed.Data.Date.Readable
	}
	return fmt.Sprintf("%s — %s %s %s",
		parsed.Data.Date.Readable, hijri.Day, hijri.Month.Ar, hijri.Year)
}
