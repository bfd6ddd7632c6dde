// Package posting fetches job posting pages and reduces them to readable
// text, so a posting can be reviewed locally before applying through the
// backend.
package posting

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout for posting fetches.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for posting fetches.
const DefaultUserAgent = "Mozilla/5.0 (compatible; JobPilot/1.0)"

// Page holds the raw and extracted content of a fetched posting.
type Page struct {
	URL         string
	HTML        string
	Text        string
	StatusCode  int
	UsedBrowser bool
}

// Error represents a failure while fetching or extracting a posting.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("posting fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("posting fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures posting fetches.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	UseBrowser bool // allow headless-browser fallback for SPA job boards
	Verbose    bool
}

// DefaultOptions returns sensible defaults for fetching postings.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Preview fetches a posting URL and returns its readable text. When the plain
// HTTP fetch yields too little text and opts.UseBrowser is set, the page is
// re-rendered in a headless browser before extraction.
func Preview(ctx context.Context, urlStr string, opts *Options) (*Page, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	page, err := fetchHTML(ctx, urlStr, opts)
	if err != nil {
		return page, err
	}

	text, err := extractText(page.HTML)
	if err != nil {
		return page, &Error{URL: urlStr, Message: "failed to extract text", Cause: err}
	}
	page.Text = text

	if opts.UseBrowser && tooShort(text) {
		html, berr := renderWithBrowser(ctx, urlStr, opts.Timeout, opts.Verbose)
		if berr != nil {
			// Keep the plain-HTTP result when the browser is unavailable.
			return page, nil
		}
		rendered, terr := extractText(html)
		if terr == nil && len(rendered) > len(text) {
			page.HTML = html
			page.Text = rendered
			page.UsedBrowser = true
		}
	}

	return page, nil
}

// fetchHTML retrieves the raw HTML of a posting page.
func fetchHTML(ctx context.Context, urlStr string, opts *Options) (*Page, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: opts.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	page := &Page{
		URL:        urlStr,
		HTML:       string(body),
		StatusCode: resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return page, &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}
	return page, nil
}

// postingSelectors are tried in order to find the posting body.
var postingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// extractText parses HTML and returns the posting's main text.
func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()

	var content *goquery.Selection
	for _, selector := range postingSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace normalizes whitespace in extracted text.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
