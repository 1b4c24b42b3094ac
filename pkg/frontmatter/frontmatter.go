// Package frontmatter splits a leading YAML metadata block from a markdown body.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const delimiter = "---"

// Meta is the decoded metadata block. Lookups on missing keys are safe.
type Meta map[string]any

// String returns the value at key rendered as text, or fallback when the key
// is missing, null or blank.
func (m Meta) String(key, fallback string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return fallback
	}
	var s string
	switch t := v.(type) {
	case string:
		s = t
	default:
		s = fmt.Sprint(t)
	}
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// Document is a parsed content blob.
type Document struct {
	Meta Meta
	Body string
}

// Parse splits content into metadata and body. A blob without an opening
// "---" line, or without a closing one, has no metadata and is all body.
// When the block is not a YAML mapping, Parse still returns the body with
// empty metadata alongside the error.
func Parse(content string) (Document, error) {
	doc := Document{Meta: Meta{}, Body: content}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	first, rest, found := strings.Cut(normalized, "\n")
	if !found || strings.TrimSpace(first) != delimiter {
		return doc, nil
	}

	lines := strings.Split(rest, "\n")
	end := -1
	for i, line := range lines {
		if strings.TrimRight(line, " \t") == delimiter {
			end = i
			break
		}
	}
	if end < 0 {
		return doc, nil
	}

	block := strings.Join(lines[:end], "\n")
	doc.Body = strings.TrimLeft(strings.Join(lines[end+1:], "\n"), "\n")
	if strings.TrimSpace(block) == "" {
		return doc, nil
	}
	var meta map[string]any
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return doc, fmt.Errorf("parse front matter: %w", err)
	}
	if meta != nil {
		doc.Meta = meta
	}
	return doc, nil
}
