// Package web finds the sitemaps of websites.
package web

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
	"golang.org/x/sync/errgroup"

	"github.com/quickrecipe/console/internal/domain"
	"github.com/quickrecipe/console/internal/trace"
	"github.com/quickrecipe/console/internal/usage"
)

const (
	sitemapPath = "/sitemap.xml"
	robotsPath  = "/robots.txt"

	DefaultUserAgent = "Mozilla/5.0 (compatible; qconsole/1.0)"
	DefaultTimeout   = 15 * time.Second
	DefaultWorkers   = 4

	maxBodySize = 10 << 20
)

// Resolver fetches sitemap.xml and robots.txt over HTTP.
type Resolver struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	workers   int
	log       domain.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) { r.client = c }
}

// WithUserAgent sets the User-Agent header of every request.
func WithUserAgent(ua string) Option {
	return func(r *Resolver) {
		if ua != "" {
			r.userAgent = ua
		}
	}
}

// WithTimeout sets the timeout of each request. A client given with
// WithHTTPClient is copied, never modified.
func WithTimeout(d time.Duration) Option {
	return func(r *Resolver) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithWorkers bounds how many sites ResolveAll fetches at once.
func WithWorkers(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithLogger records fetch failures to the diagnostics log.
func WithLogger(l domain.Logger) Option {
	return func(r *Resolver) { r.log = l }
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		client:    &http.Client{Timeout: DefaultTimeout},
		userAgent: DefaultUserAgent,
		workers:   DefaultWorkers,
		log:       trace.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.timeout > 0 {
		client := *r.client
		client.Timeout = r.timeout
		r.client = &client
	}
	return r
}

// ResolveSitemaps returns the sitemap URLs of the site hosting rawURL.
//
// /sitemap.xml is tried first: a sitemap index yields its child sitemaps,
// any other document yields the sitemap.xml URL itself. Otherwise the
// Sitemap: lines of /robots.txt are returned.
func (r *Resolver) ResolveSitemaps(ctx context.Context, rawURL string) ([]string, error) {
	base, err := baseURL(rawURL)
	if err != nil {
		return nil, err
	}

	sitemaps, sitemapErr := r.fromSitemap(ctx, base+sitemapPath)
	if sitemapErr == nil {
		return sitemaps, nil
	}
	r.log.Debug("web: %s%s: %v", base, sitemapPath, sitemapErr)

	sitemaps, robotsErr := r.fromRobots(ctx, base+robotsPath)
	if robotsErr == nil && len(sitemaps) > 0 {
		return sitemaps, nil
	}
	if robotsErr != nil {
		r.log.Debug("web: %s%s: %v", base, robotsPath, robotsErr)
	}

	return nil, usage.SitemapNotFound(rawURL, errors.Join(sitemapErr, robotsErr))
}

// ResolveAll resolves every URL, at most the configured number at a time.
// Results keep the order of urls; a failed site carries its error.
func (r *Resolver) ResolveAll(ctx context.Context, urls []string) []domain.SitemapResult {
	results := make([]domain.SitemapResult, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, u := range urls {
		g.Go(func() error {
			sitemaps, err := r.ResolveSitemaps(gctx, u)
			results[i] = domain.SitemapResult{URL: u, Sitemaps: sitemaps, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// baseURL reduces rawURL to scheme://host.
func baseURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf("web: parse %q: %w", rawURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("web: %q is not an http(s) URL", rawURL)
	}
	return u.Scheme + "://" + u.Host, nil
}

func (r *Resolver) fromSitemap(ctx context.Context, sitemapURL string) ([]string, error) {
	rc, err := r.get(ctx, sitemapURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	doc, err := goquery.NewDocumentFromReader(rc)
	if err != nil {
		return nil, fmt.Errorf("parse sitemap: %w", err)
	}

	index := doc.Find("sitemapindex").First()
	if index.Length() == 0 {
		return []string{sitemapURL}, nil
	}

	var children []string
	index.ChildrenFiltered("sitemap").Each(func(_ int, s *goquery.Selection) {
		if loc := strings.TrimSpace(s.ChildrenFiltered("loc").First().Text()); loc != "" {
			children = append(children, loc)
		}
	})
	if len(children) == 0 {
		return []string{sitemapURL}, nil
	}
	return children, nil
}

func (r *Resolver) fromRobots(ctx context.Context, robotsURL string) ([]string, error) {
	rc, err := r.get(ctx, robotsURL)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	return ParseRobots(rc)
}

// ParseRobots returns the values of the Sitemap: lines of a robots.txt.
func ParseRobots(rd io.Reader) ([]string, error) {
	var sitemaps []string

	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		key, value, found := strings.Cut(line, ":")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "sitemap") {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			sitemaps = append(sitemaps, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read robots.txt: %w", err)
	}
	return sitemaps, nil
}

type decodedBody struct {
	io.Reader
	io.Closer
}

// get returns the decoded body of a 200 response.
func (r *Resolver) get(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%s returned %d", target, resp.StatusCode)
	}

	decoded, err := charset.NewReader(io.LimitReader(resp.Body, maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("decode %s: %w", target, err)
	}
	return decodedBody{Reader: decoded, Closer: resp.Body}, nil
}

var _ domain.SitemapResolver = (*Resolver)(nil)
