// Package api holds the upstream HTTP clients: the remote species
// metadata (dex) index and the one-shot page fetches for the scraping
// importers.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"tourney-graphics/internal/constants"
	"tourney-graphics/internal/domain"
)

// Scrape targets are fixed: a single known host with one path prefix
// per page shape. Anything else is rejected before a network call.
const (
	ScrapeHost         = "rk9.gg"
	TeamListPathPrefix = "/teamlist/"
	RosterPathPrefix   = "/roster/"
)

type Client struct {
	http *fasthttp.Client
}

func NewClient() *Client {
	return &Client{
		http: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
			MaxResponseBodySize: constants.MaxScrapeBodyBytes,
		},
	}
}

// DexEntry is one row of the remote species metadata index: a display
// name and the numeric sprite identifier it maps to.
type DexEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FetchDexIndex retrieves the remote metadata index from indexURL.
func (c *Client) FetchDexIndex(ctx context.Context, indexURL string) ([]DexEntry, error) {
	return doRequest[[]DexEntry](ctx, c, indexURL)
}

// ValidateTeamListURL checks a user-supplied team-list URL against the
// allowlist, synchronously and without any network traffic.
func ValidateTeamListURL(raw string) error {
	return validateScrapeURL(raw, TeamListPathPrefix)
}

// ValidateRosterURL checks a user-supplied roster URL the same way.
func ValidateRosterURL(raw string) error {
	return validateScrapeURL(raw, RosterPathPrefix)
}

func validateScrapeURL(raw, prefix string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return domain.NewFault(domain.ErrMalformedInput, "invalid URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return domain.NewFault(domain.ErrMalformedInput, "invalid URL: unsupported scheme %q", u.Scheme)
	}
	if !strings.EqualFold(u.Hostname(), ScrapeHost) {
		return domain.NewFault(domain.ErrMalformedInput, "invalid URL: host %q is not %s", u.Hostname(), ScrapeHost)
	}
	if !strings.HasPrefix(u.Path, prefix) {
		return domain.NewFault(domain.ErrMalformedInput, "invalid URL: path must start with %s", prefix)
	}
	return nil
}

// FetchPage performs the one-shot, non-retried page fetch behind the
// scraping importers. The response body is size-capped by the client.
func (c *Client) FetchPage(ctx context.Context, pageURL string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(pageURL)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := c.do(ctx, req, resp); err != nil {
		return nil, domain.NewFault(domain.ErrUpstreamFailure, "fetch %s: %v", pageURL, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, domain.NewUpstreamFault(resp.StatusCode(), "fetch %s", pageURL)
	}

	body := make([]byte, len(resp.Body()))
	copy(body, resp.Body())
	return body, nil
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if deadline, ok := ctx.Deadline(); ok {
		return c.http.DoDeadline(req, resp, deadline)
	}
	return c.http.Do(req, resp)
}

func doRequest[T any](ctx context.Context, client *Client, url string) (T, error) {
	var result T

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := client.do(ctx, req, resp); err != nil {
		return result, domain.NewFault(domain.ErrUpstreamFailure, "fetch %s: %v", url, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return result, domain.NewUpstreamFault(resp.StatusCode(), "fetch %s", url)
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return result, fmt.Errorf("decode %s: %w", url, err)
	}
	return result, nil
}
