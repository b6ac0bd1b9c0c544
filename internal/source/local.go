// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package source provides the two inputs of a scrape run: a search page
// saved to disk ahead of time, and live search pages fetched over HTTP.
package source

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// MissingPageError reports that the pre-fetched page for an ingredient is
// not on disk. Command is the shell command that produces it.
type MissingPageError struct {
	Ingredient string
	Path       string
	Command    string
}

func (e *MissingPageError) Error() string {
	return fmt.Sprintf("missing search page for %q: %s not found", e.Ingredient, e.Path)
}

// Instructions returns the operator-facing remediation text, one line per
// element.
func (e *MissingPageError) Instructions() []string {
	return []string{
		"Please, run the following command first:",
		e.Command,
	}
}

// PagePath returns <dir>/<ingredient>.html.
func PagePath(dir, ingredient string) string {
	return filepath.Join(dir, ingredient+".html")
}

// FetchCommand returns the curl command that saves the first search page
// for ingredient to PagePath(dir, ingredient).
func FetchCommand(searchURL, dir, ingredient string) string {
	return fmt.Sprintf(`curl -g "%s?search[query]=%s" > %s`, searchURL, ingredient, PagePath(dir, ingredient))
}

// OpenLocal opens the saved search page for ingredient. The caller must
// close the returned reader. A missing file yields *MissingPageError.
func OpenLocal(dir, searchURL, ingredient string) (io.ReadCloser, error) {
	path := PagePath(dir, ingredient)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingPageError{
				Ingredient: ingredient,
				Path:       path,
				Command:    FetchCommand(searchURL, dir, ingredient),
			}
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return f, nil
}
