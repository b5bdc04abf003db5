// Package wordbank holds the secret-word lists, grouped by category.
package wordbank

import (
	"math/rand"
	"sort"

	"github.com/gosimple/slug"
)

// DefaultCategory is used whenever an unknown category is requested.
const DefaultCategory = "animales"

// Entry is one playable secret word plus the words players must avoid
// saying while giving clues for it.
type Entry struct {
	Word  string   `json:"word"`
	Taboo []string `json:"taboo,omitempty"`
}

// Categories returns all category keys, sorted.
func Categories() []string {
	keys := make([]string, 0, len(words))
	for k := range words {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the category exists. Keys are compared in slug form,
// so "Películas" matches "peliculas".
func Has(category string) bool {
	_, ok := words[slug.Make(category)]
	return ok
}

// Pick selects a uniformly random entry from the category, falling back to
// the default category for unknown ones.
func Pick(rng *rand.Rand, category string) (string, []string) {
	entries, ok := words[slug.Make(category)]
	if !ok {
		entries = words[DefaultCategory]
	}
	e := entries[rng.Intn(len(entries))]
	return e.Word, append([]string(nil), e.Taboo...)
}
