// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package parse extracts recipe records from a search results page.
// A page lists recipe cards; each card carries a name, a difficulty and a
// prep time. A card missing any of the three fails the whole parse.
package parse

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/pdiddy/recipes/pkg/types"
)

// Selectors for the recipe card markup on the search results page.
const (
	CardSelector       = "div.recipe-details"
	NameSelector       = "p.recipe-name"
	DifficultySelector = "span.recipe-difficulty"
	PrepTimeSelector   = "span.recipe-cooktime"
)

// UTF8ContentType is the content type of a page known to be UTF-8, such
// as a search page saved to disk.
const UTF8ContentType = "text/html; charset=utf-8"

// sniffLen is how much of the document is inspected for a BOM or a
// <meta charset> declaration.
const sniffLen = 1024

// MissingFieldError reports a recipe card without one of its sub-fields.
type MissingFieldError struct {
	// Card is the zero-based index of the card in document order.
	Card int
	// Field is the record field that could not be located.
	Field string
	// Selector is the CSS selector that matched nothing.
	Selector string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("recipe card %d: no %s element (%s)", e.Card, e.Field, e.Selector)
}

// Parse reads an HTML document and returns one Recipe per card, in
// document order. The input is decoded to UTF-8 first. The encoding comes
// from a BOM, then the charset parameter of contentType, then a
// <meta charset> declaration; a document with none of these is UTF-8.
func Parse(r io.Reader, contentType string) ([]types.Recipe, error) {
	utf8Reader, err := decodeUTF8(r, contentType)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	cards := doc.Find(CardSelector)
	recipes := make([]types.Recipe, 0, cards.Length())
	for i := 0; i < cards.Length(); i++ {
		recipe, err := parseCard(i, cards.Eq(i))
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

// ParseString is Parse over an in-memory document with no content type.
func ParseString(html string) ([]types.Recipe, error) {
	return Parse(strings.NewReader(html), "")
}

// decodeUTF8 wraps r so it yields UTF-8. charset.DetermineEncoding guesses
// windows-1252 for an undeclared document whose first bytes are ASCII;
// that guess is replaced with UTF-8.
func decodeUTF8(r io.Reader, contentType string) (io.Reader, error) {
	br := bufio.NewReaderSize(r, sniffLen)
	head, err := br.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	_, name, certain := charset.DetermineEncoding(head, contentType)
	if !certain && name == "windows-1252" && !declaresCharset(head) {
		name = "utf-8"
	}

	decoded, err := charset.NewReaderLabel(name, br)
	if err != nil {
		return nil, fmt.Errorf("decoding %s document: %w", name, err)
	}
	return decoded, nil
}

// declaresCharset reports whether head may carry a <meta> charset
// declaration, which is the only way the prescan picks an encoding.
func declaresCharset(head []byte) bool {
	return bytes.Contains(bytes.ToLower(head), []byte("charset"))
}

func parseCard(index int, card *goquery.Selection) (types.Recipe, error) {
	var recipe types.Recipe
	fields := []struct {
		name     string
		selector string
		dst      *string
	}{
		{types.FieldName, NameSelector, &recipe.Name},
		{types.FieldDifficulty, DifficultySelector, &recipe.Difficulty},
		{types.FieldPrepTime, PrepTimeSelector, &recipe.PrepTime},
	}

	for _, f := range fields {
		sel := card.Find(f.selector).First()
		if sel.Length() == 0 {
			return types.Recipe{}, &MissingFieldError{Card: index, Field: f.name, Selector: f.selector}
		}
		*f.dst = strings.TrimSpace(sel.Text())
	}
	return recipe, nil
}
