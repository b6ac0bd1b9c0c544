// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scrape runs the two phases of a scrape: the local phase parses
// the saved search page and writes the CSV; the network phase walks the
// live search pages until the site runs out of results.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/recipes/internal/export"
	"github.com/pdiddy/recipes/internal/parse"
	"github.com/pdiddy/recipes/internal/source"
	"github.com/pdiddy/recipes/pkg/types"
)

// Result holds the outcome of a full run.
type Result struct {
	// CSVPath is the file written by the local phase.
	CSVPath string

	// Local holds the records written to CSVPath.
	Local []types.Recipe

	// Network holds the records accumulated from live pages. They are not
	// written anywhere.
	Network []types.Recipe

	// PagesFetched counts live pages parsed before the run stopped.
	PagesFetched int
}

// LocalPhase parses the saved page for ingredient and writes its recipes
// to the CSV file. It returns the CSV path and the records written.
func LocalPhase(cfg types.ScrapeConfig, ingredient string) (string, []types.Recipe, error) {
	rc, err := source.OpenLocal(cfg.PagesDir, cfg.SearchURL, ingredient)
	if err != nil {
		return "", nil, err
	}
	recipes, err := parse.Parse(rc, parse.UTF8ContentType)
	rc.Close()
	if err != nil {
		return "", nil, fmt.Errorf("parsing %s: %w", source.PagePath(cfg.PagesDir, ingredient), err)
	}

	path, err := export.WriteCSV(cfg.RecipesDir, ingredient, recipes)
	if err != nil {
		return "", nil, err
	}
	return path, recipes, nil
}

// NetworkPhase fetches pages 1 through pages in order and accumulates
// their recipes. It stops without error at the first page the fetcher
// reports as exhausted; later pages are not requested.
func NetworkPhase(ctx context.Context, fetcher source.PageFetcher, ingredient string, pages int) ([]types.Recipe, int, error) {
	var recipes []types.Recipe
	fetched := 0
	for page := 1; page <= pages; page++ {
		fetchedPage, err := fetcher.Fetch(ctx, ingredient, page)
		if errors.Is(err, source.ErrExhausted) {
			break
		}
		if err != nil {
			return recipes, fetched, err
		}

		pageRecipes, err := parse.Parse(fetchedPage.Body, fetchedPage.ContentType)
		fetchedPage.Body.Close()
		if err != nil {
			return recipes, fetched, fmt.Errorf("parsing page %d: %w", page, err)
		}
		recipes = append(recipes, pageRecipes...)
		fetched++
	}
	return recipes, fetched, nil
}

// Run executes the local phase and then the network phase, and reports the
// CSV file on w. Only the local phase's records reach the CSV file.
func Run(ctx context.Context, cfg types.ScrapeConfig, fetcher source.PageFetcher, ingredient string, w io.Writer) (Result, error) {
	cfg = cfg.WithDefaults()

	path, local, err := LocalPhase(cfg, ingredient)
	if err != nil {
		return Result{}, err
	}
	result := Result{CSVPath: path, Local: local}

	network, fetched, err := NetworkPhase(ctx, fetcher, ingredient, cfg.Pages)
	result.Network = network
	result.PagesFetched = fetched
	if err != nil {
		return result, err
	}

	fmt.Fprintf(w, "Wrote recipes to %s\n", path)
	return result, nil
}
