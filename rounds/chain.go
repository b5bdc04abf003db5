package rounds

import (
	"strings"

	"github.com/gosimple/unidecode"
	"golang.org/x/text/unicode/norm"

	"impostor-game-server/models"
)

// Chained-clues mode ties each clue to the previous one: the first letter of
// the new clue must match the last letter of the previous text clue,
// comparing case- and diacritic-insensitively ("ó" chains like "O").

// foldLetters strips diacritics and upcases, so letter comparison survives
// accents and decomposed unicode input.
func foldLetters(s string) string {
	return strings.ToUpper(unidecode.Unidecode(norm.NFC.String(strings.TrimSpace(s))))
}

func firstLetter(s string) string {
	folded := foldLetters(s)
	if folded == "" {
		return ""
	}
	return folded[:1]
}

func lastLetter(s string) string {
	folded := foldLetters(s)
	if folded == "" {
		return ""
	}
	return folded[len(folded)-1:]
}

// chainLetter returns the letter the next clue must start with, given the
// clues of the round in turn order. Empty when the round has no clues yet or
// the latest turn was a confirmation or timeout rather than text.
func chainLetter(clues []models.Clue) string {
	if len(clues) == 0 {
		return ""
	}
	latest := clues[0]
	for _, c := range clues[1:] {
		if c.Order > latest.Order {
			latest = c
		}
	}
	if !latest.HasText() {
		return ""
	}
	return lastLetter(latest.Text)
}

// checkChain validates a new clue against the chain. Returns nil when the
// chain imposes nothing (no prior text clue).
func checkChain(clues []models.Clue, clueText string) error {
	required := chainLetter(clues)
	if required == "" {
		return nil
	}
	if firstLetter(clueText) != required {
		return errValidationFailed("clue must start with %q", required)
	}
	return nil
}
