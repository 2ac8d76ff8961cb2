// Package mediawiki provides an HTTP client for the MediaWiki web API
// and an importer for MediaWiki XML exports. Both produce the same
// record shape as the offline SQL dump parser.
package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wikidex/wikidex"
)

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

const defaultUserAgent = "wikidex/1.0 (https://github.com/wikidex/wikidex)"

// listLimit is the allpages page size; 500 is the API maximum for
// anonymous clients.
const listLimit = "500"

// Ensure Client implements the producer interfaces at compile time.
var (
	_ wikidex.PageLister  = (*Client)(nil)
	_ wikidex.PageFetcher = (*Client)(nil)
)

// Client talks to a MediaWiki installation over its web API.
type Client struct {
	baseURL   string
	client    *http.Client
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithUserAgent sets the User-Agent header sent with API requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a Client for the wiki rooted at baseURL
// (e.g. https://example.com/wiki).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}
	return c
}

// BaseURL returns the wiki's base page URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// PageURL derives the canonical public URL for a page title.
func (c *Client) PageURL(title string) string {
	return c.baseURL + "/" + strings.ReplaceAll(title, " ", "_")
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api.php?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d for %s", resp.StatusCode, req.URL)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

type allPagesResponse struct {
	Continue struct {
		APContinue string `json:"apcontinue"`
	} `json:"continue"`
	Query struct {
		AllPages []struct {
			PageID int    `json:"pageid"`
			Title  string `json:"title"`
		} `json:"allpages"`
	} `json:"query"`
}

// ListPages enumerates all content pages via list=allpages, following
// apcontinue pagination until the listing is exhausted.
func (c *Client) ListPages(ctx context.Context) ([]wikidex.PageRef, error) {
	var pages []wikidex.PageRef
	cont := ""

	for {
		params := url.Values{
			"action":  {"query"},
			"format":  {"json"},
			"list":    {"allpages"},
			"aplimit": {listLimit},
		}
		if cont != "" {
			params.Set("apcontinue", cont)
		}

		var out allPagesResponse
		if err := c.get(ctx, params, &out); err != nil {
			return nil, err
		}

		for _, p := range out.Query.AllPages {
			pages = append(pages, wikidex.PageRef{PageID: p.PageID, Title: p.Title})
		}

		if out.Continue.APContinue == "" {
			break
		}
		cont = out.Continue.APContinue
	}

	return pages, nil
}

type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  struct {
			Content string `json:"*"`
		} `json:"text"`
	} `json:"parse"`
	Error struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// FetchPage returns the rendered HTML of the page's lead section via
// action=parse. Returns ENOTFOUND if the wiki reports a missing page.
func (c *Client) FetchPage(ctx context.Context, title string) (string, error) {
	params := url.Values{
		"action":  {"parse"},
		"format":  {"json"},
		"page":    {title},
		"prop":    {"text"},
		"section": {"0"},
	}

	var out parseResponse
	if err := c.get(ctx, params, &out); err != nil {
		return "", err
	}

	if out.Error.Code != "" {
		return "", wikidex.Errorf(wikidex.ENOTFOUND, "page %q: %s", title, out.Error.Info)
	}
	if out.Parse.Text.Content == "" {
		return "", wikidex.Errorf(wikidex.ENOTFOUND, "no parsed text for page %q", title)
	}

	return out.Parse.Text.Content, nil
}
