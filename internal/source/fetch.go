// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pdiddy/recipes/internal/httputil"
)

// ErrExhausted signals that a search page does not exist. The site answers
// an out-of-range page with a redirect rather than an error status.
var ErrExhausted = errors.New("no more search results")

// Page is one fetched search results page. The caller closes Body.
type Page struct {
	Body io.ReadCloser

	// ContentType is the response Content-Type header, used to pick the
	// document encoding. It may be empty.
	ContentType string
}

// PageFetcher returns the HTML of one search results page.
type PageFetcher interface {
	Fetch(ctx context.Context, ingredient string, page int) (Page, error)
}

// Fetcher queries the live search endpoint.
type Fetcher struct {
	// Client performs the requests. Redirects are never followed regardless
	// of the client's own policy.
	Client *http.Client

	// SearchURL is the search endpoint, e.g. "https://recipes.lewagon.com/".
	SearchURL string

	// Out receives one progress line per page. Nil discards it.
	Out io.Writer
}

// SearchPageURL builds the URL for page of the search for ingredient.
func SearchPageURL(searchURL, ingredient string, page int) (string, error) {
	u, err := url.Parse(searchURL)
	if err != nil {
		return "", fmt.Errorf("parsing search URL %q: %w", searchURL, err)
	}
	q := u.Query()
	q.Set("search[query]", ingredient)
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Fetch requests one page of search results. It returns ErrExhausted when
// the server redirects; otherwise the response body, whatever its status.
func (f *Fetcher) Fetch(ctx context.Context, ingredient string, page int) (Page, error) {
	if f.Out != nil {
		fmt.Fprintf(f.Out, "Scraping page %d\n", page)
	}

	pageURL, err := SearchPageURL(f.SearchURL, ingredient, page)
	if err != nil {
		return Page{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Page{}, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.NoRedirect(f.Client).Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("fetching page %d: %w", page, err)
	}

	if httputil.IsRedirect(resp) {
		httputil.Discard(resp)
		return Page{}, ErrExhausted
	}
	return Page{Body: resp.Body, ContentType: resp.Header.Get("Content-Type")}, nil
}
