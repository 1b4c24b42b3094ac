package store

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"gorm.io/datatypes"
)

// GORM models mapped onto the externally managed tables. Table names come
// from Tables at query time, so the models carry no TableName method.
type BookModel struct {
	ID         string `gorm:"primaryKey"`
	Name       string
	Testament  string
	OrderIndex int
}

type VerseModel struct {
	ID              string `gorm:"primaryKey"`
	BookID          string
	Chapter         int
	Verse           int
	Text            string
	Versions        datatypes.JSONMap
	CrossReferences StringList
	Themes          StringList
}

type ArticleModel struct {
	ID                string `gorm:"primaryKey"`
	ContentStructured sql.NullString
}

// Tables names the three tables read by the store.
type Tables struct {
	Books    string
	Verses   string
	Articles string
}

// DefaultTables are used for any name left empty.
var DefaultTables = Tables{
	Books:    "books",
	Verses:   "verses",
	Articles: "articles",
}

func (t Tables) withDefaults() Tables {
	if t.Books == "" {
		t.Books = DefaultTables.Books
	}
	if t.Verses == "" {
		t.Verses = DefaultTables.Verses
	}
	if t.Articles == "" {
		t.Articles = DefaultTables.Articles
	}
	return t
}

// StringList scans an optional list column stored either as a jsonb array or
// as a Postgres text[]. NULL scans to a nil list.
type StringList []string

// GormDataType reports the column type to GORM's schema parser.
func (StringList) GormDataType() string {
	return "text[]"
}

func (l *StringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		*l = nil
		return nil
	}
	var items []string
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("scan string list: %w", err)
		}
	} else if err := pgtype.NewMap().SQLScanner(&items).Scan(raw); err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	*l = items
	return nil
}
