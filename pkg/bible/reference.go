package bible

import (
	"fmt"
	"regexp"
	"strconv"
)

// VerseRef is the decoded form of a verse identifier.
type VerseRef struct {
	BookID  string `json:"book_id"`
	Chapter int    `json:"chapter"`
	Verse   int    `json:"verse"`
}

var verseIDPattern = regexp.MustCompile(`^([a-z0-9]+)_(\d+)_(\d+)$`)

// CreateVerseID encodes a verse as "{book}_{chapter}_{verse}".
func CreateVerseID(bookID string, chapter, verse int) string {
	return fmt.Sprintf("%s_%d_%d", bookID, chapter, verse)
}

// ParseVerseID decodes an identifier built by CreateVerseID. It reports false
// for anything that does not have the book_digits_digits shape, including
// numbers too large for an int. Ranges are not validated.
func ParseVerseID(id string) (VerseRef, bool) {
	m := verseIDPattern.FindStringSubmatch(id)
	if m == nil {
		return VerseRef{}, false
	}
	chapter, err := strconv.Atoi(m[2])
	if err != nil {
		return VerseRef{}, false
	}
	verse, err := strconv.Atoi(m[3])
	if err != nil {
		return VerseRef{}, false
	}
	return VerseRef{BookID: m[1], Chapter: chapter, Verse: verse}, true
}

// String returns the identifier form of r.
func (r VerseRef) String() string {
	return CreateVerseID(r.BookID, r.Chapter, r.Verse)
}

// FormatVerseReference renders a citation such as "Gênesis 1:3".
func FormatVerseReference(bookName string, chapter, verse int) string {
	return fmt.Sprintf("%s %d:%d", bookName, chapter, verse)
}
