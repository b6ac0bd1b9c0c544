// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the recipes scraper.
// Implements: Recipe Record (name, difficulty, prep_time) and the scrape
// configuration consumed by the CLI and the internal stages.
package types

// Field names in output order. The CSV header is derived from these.
const (
	FieldName       = "name"
	FieldDifficulty = "difficulty"
	FieldPrepTime   = "prep_time"
)

// Recipe is one recipe card extracted from a search results page. All
// values are trimmed text; no format or vocabulary is enforced.
type Recipe struct {
	// Name is the recipe title as shown on the card.
	Name string `json:"name" yaml:"name"`

	// Difficulty is the free-text difficulty label (e.g. "Easy").
	Difficulty string `json:"difficulty" yaml:"difficulty"`

	// PrepTime is the free-text preparation time (e.g. "20 min").
	PrepTime string `json:"prep_time" yaml:"prep_time"`
}

// RecipeFields returns the record field names in output order.
func RecipeFields() []string {
	return []string{FieldName, FieldDifficulty, FieldPrepTime}
}

// Row returns the record values in the order given by RecipeFields.
func (r Recipe) Row() []string {
	return []string{r.Name, r.Difficulty, r.PrepTime}
}
