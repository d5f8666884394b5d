package domain

import (
	"strings"
	"unicode"
)

// Genre is a member of the fixed genre vocabulary used for filtering.
type Genre string

const (
	GenreAction      Genre = "Action"
	GenreComedy      Genre = "Comedy"
	GenreDocumentary Genre = "Documentary"
	GenreDrama       Genre = "Drama"
	GenreHorror      Genre = "Horror"
	GenreRomance     Genre = "Romance"
	GenreSciFi       Genre = "SciFi"
	GenreThriller    Genre = "Thriller"
)

// Genres lists the full vocabulary in display order.
func Genres() []Genre {
	return []Genre{
		GenreAction, GenreComedy, GenreDocumentary, GenreDrama,
		GenreHorror, GenreRomance, GenreSciFi, GenreThriller,
	}
}

// ParseGenre resolves a case-insensitive genre name.
// Returns false for names outside the vocabulary.
func ParseGenre(name string) (Genre, bool) {
	for _, g := range Genres() {
		if strings.EqualFold(string(g), name) {
			return g, true
		}
	}
	return "", false
}

// GenreSet holds the boolean genre flags of one catalog item.
type GenreSet map[Genre]bool

// Has reports whether the genre flag is set.
func (s GenreSet) Has(g Genre) bool {
	return s[g]
}

// CatalogItem represents one discoverable title.
// Items are immutable once fetched.
type CatalogItem struct {
	// ID is unique within the catalog.
	ID int

	// Title is the display title; it also derives the cover asset key.
	Title string

	// Genres holds the item's genre flags.
	Genres GenreSet

	// Rating is the aggregate rating, nil when the item is unrated.
	Rating *float64
}

// AssetKey derives the cover asset key from a title.
// Characters outside the conservative allow-list (letters, digits, space)
// are stripped and the result is trimmed. An empty key means the item has
// no resolvable cover and must be treated as a failed probe.
func AssetKey(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// RawPage is the result of one catalog fetch: an ordered page of items
// plus the total count used to compute total pages. For Browse/Search the
// total is server-reported; for TagScan it is the locally filtered length.
type RawPage struct {
	Items []CatalogItem
	Total int
}

// VerifiedPage is the ordered subsequence of a RawPage whose cover probes
// succeeded. Relative order is preserved from the RawPage.
type VerifiedPage struct {
	Items []CatalogItem
}

// TotalPages computes the page count for a total item count and page size.
func TotalPages(total, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
