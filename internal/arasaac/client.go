// Package arasaac talks to the ARASAAC pictogram service: keyword search,
// image download with a local file cache, and a background resolver that
// reports results over a channel.
//
// Pictograms by Sergio Palao, from ARASAAC (https://arasaac.org),
// licensed under CC BY-NC-SA 3.0.
package arasaac

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

const (
	apiBase   = "https://api.arasaac.org/v1"
	imageBase = "https://static.arasaac.org/pictograms"
	userAgent = "pictoplan/0.2.0"

	// DefaultImageSize is the pixel size requested from the static server.
	DefaultImageSize = 500

	// MaxResults caps how many search hits are returned.
	MaxResults = 60
)

// Attribution is the credit line shown wherever ARASAAC results appear.
const Attribution = "Pictograms by Sergio Palao, from ARASAAC (https://arasaac.org), licensed under CC BY-NC-SA 3.0"

// Keyword is one localized term attached to a pictogram.
type Keyword struct {
	Keyword string `json:"keyword"`
	Locale  string `json:"locale"`
}

// Pictogram is a single search result.
type Pictogram struct {
	ID       int       `json:"_id"`
	Keywords []Keyword `json:"keywords"`
}

// BestKeyword returns the keyword matching lang, falling back to the first
// keyword and finally to the numeric id.
func (p Pictogram) BestKeyword(lang string) string {
	for _, kw := range p.Keywords {
		if kw.Locale == lang {
			return kw.Keyword
		}
	}
	if len(p.Keywords) > 0 {
		return p.Keywords[0].Keyword
	}
	return fmt.Sprintf("%d", p.ID)
}

// Client queries the ARASAAC API. Searches in the dictionary language are
// answered locally without a network round trip.
type Client struct {
	httpClient *http.Client
	apiBase    string
	imageBase  string
	dict       *Dictionary
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURLs overrides the API and image endpoints, used in tests.
func WithBaseURLs(api, image string) Option {
	return func(c *Client) {
		c.apiBase = api
		c.imageBase = image
	}
}

// WithDictionary installs a local term lookup for one language.
func WithDictionary(d *Dictionary) Option {
	return func(c *Client) {
		c.dict = d
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		apiBase:    apiBase,
		imageBase:  imageBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns pictograms matching keyword, at most MaxResults. When the
// requested language is covered by the installed dictionary the lookup is
// answered locally.
func (c *Client) Search(ctx context.Context, keyword, lang string) ([]Pictogram, error) {
	if c.dict != nil && c.dict.Lang() == lang {
		return c.dict.Lookup(keyword), nil
	}

	u := fmt.Sprintf("%s/pictograms/%s/search/%s", c.apiBase, url.PathEscape(lang), url.PathEscape(keyword))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("searching pictograms: %w", err)
	}
	defer resp.Body.Close()

	// The API answers an empty search with 404.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var results []Pictogram
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding search results: %w", err)
	}
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results, nil
}

// ImageURL returns the static server URL for a pictogram at the given size.
func (c *Client) ImageURL(pictogramID, size int) string {
	return fmt.Sprintf("%s/%d/%d_%d.png", c.imageBase, pictogramID, pictogramID, size)
}

// CacheFilename is the local file name used for a downloaded pictogram.
func CacheFilename(pictogramID int) string {
	return fmt.Sprintf("arasaac_%d.png", pictogramID)
}

// DownloadImage fetches a pictogram PNG into destDir and returns the file
// name. An already cached file short-circuits the download.
func (c *Client) DownloadImage(ctx context.Context, pictogramID int, destDir string) (string, error) {
	filename := CacheFilename(pictogramID)
	dest := filepath.Join(destDir, filename)
	if _, err := os.Stat(dest); err == nil {
		return filename, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.ImageURL(pictogramID, DefaultImageSize), nil)
	if err != nil {
		return "", fmt.Errorf("building image request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("downloading pictogram %d: %w", pictogramID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("pictogram %d download returned status %d", pictogramID, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading pictogram %d: %w", pictogramID, err)
	}

	if err := os.MkdirAll(destDir, 0700); err != nil {
		return "", fmt.Errorf("creating image directory: %w", err)
	}
	if err := os.WriteFile(dest, data, 0600); err != nil {
		return "", fmt.Errorf("caching pictogram %d: %w", pictogramID, err)
	}
	return filename, nil
}
