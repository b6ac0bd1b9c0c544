// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

const (
	DefaultSearchURL  = "https://recipes.lewagon.com/"
	DefaultPages      = 3
	DefaultPagesDir   = "pages"
	DefaultRecipesDir = "recipes"
)

// HTTPConfig holds HTTP settings for the network phase.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the client default
	// in place, which never times out.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// ScrapeConfig holds settings for a single scrape run.
type ScrapeConfig struct {
	HTTPConfig `yaml:",inline"`

	// SearchURL is the search endpoint queried with search[query] and page.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// Pages is the number of result pages walked in the network phase (default 3).
	Pages int `json:"pages" yaml:"pages"`

	// PagesDir holds pre-fetched search pages named <ingredient>.html.
	PagesDir string `json:"pages_dir" yaml:"pages_dir"`

	// RecipesDir receives <ingredient>.csv. It must already exist.
	RecipesDir string `json:"recipes_dir" yaml:"recipes_dir"`
}

// DefaultScrapeConfig returns the configuration used when nothing is overridden.
func DefaultScrapeConfig() ScrapeConfig {
	return ScrapeConfig{
		SearchURL:  DefaultSearchURL,
		Pages:      DefaultPages,
		PagesDir:   DefaultPagesDir,
		RecipesDir: DefaultRecipesDir,
	}
}

// WithDefaults fills zero-valued fields from DefaultScrapeConfig.
func (c ScrapeConfig) WithDefaults() ScrapeConfig {
	d := DefaultScrapeConfig()
	if c.SearchURL == "" {
		c.SearchURL = d.SearchURL
	}
	if c.Pages <= 0 {
		c.Pages = d.Pages
	}
	if c.PagesDir == "" {
		c.PagesDir = d.PagesDir
	}
	if c.RecipesDir == "" {
		c.RecipesDir = d.RecipesDir
	}
	return c
}
