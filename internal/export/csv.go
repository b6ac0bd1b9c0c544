// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export writes scraped recipes to recipes/<ingredient>.csv.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/recipes/pkg/types"
)

// ErrNoRecipes is returned when asked to write an empty record set. The
// header is only written alongside at least one row.
var ErrNoRecipes = errors.New("no recipes to write")

// CSVPath returns <dir>/<ingredient>.csv.
func CSVPath(dir, ingredient string) string {
	return filepath.Join(dir, ingredient+".csv")
}

// WriteCSV writes recipes to CSVPath(dir, ingredient), replacing any
// existing file, and returns the path written. dir must already exist.
func WriteCSV(dir, ingredient string, recipes []types.Recipe) (string, error) {
	if len(recipes) == 0 {
		return "", ErrNoRecipes
	}

	path := CSVPath(dir, ingredient)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}

	writeErr := Encode(f, recipes)
	closeErr := f.Close()
	if writeErr != nil {
		return "", fmt.Errorf("writing %s: %w", path, writeErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("closing %s: %w", path, closeErr)
	}
	return path, nil
}

// Encode writes a header row and one row per recipe to w.
func Encode(w io.Writer, recipes []types.Recipe) error {
	if len(recipes) == 0 {
		return ErrNoRecipes
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(types.RecipeFields()); err != nil {
		return err
	}
	for _, r := range recipes {
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
