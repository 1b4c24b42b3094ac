package main

import (
	"reflect"
	"strings"
	"testing"

	"mananciall/pkg/domain"
)

func TestReaderDocumentMatchesServedJSON(t *testing.T) {
	doc, err := loadDoc("../../../../api/openapi.yaml")
	if err != nil {
		t.Fatalf("load doc: %v", err)
	}
	if err := check(doc); err != nil {
		t.Fatalf("check: %v", err)
	}
}

func TestEnsureMatchesTypeDetectsDrift(t *testing.T) {
	bounds := reflect.TypeOf((*domain.ChapterBounds)(nil)).Elem()
	tests := []struct {
		name    string
		schema  schema
		wantErr string
	}{
		{
			name: "missing property",
			schema: schema{Type: "object", Required: []string{"book_id"}, Properties: map[string]schema{
				"book_id": {Type: "string"},
			}},
			wantErr: `missing property "max_chapter"`,
		},
		{
			name: "wrong type",
			schema: schema{Type: "object", Required: []string{"book_id", "max_chapter"}, Properties: map[string]schema{
				"book_id":     {Type: "string"},
				"max_chapter": {Type: "string"},
			}},
			wantErr: "max_chapter type",
		},
		{
			name: "extra property",
			schema: schema{Type: "object", Required: []string{"book_id", "max_chapter"}, Properties: map[string]schema{
				"book_id":     {Type: "string"},
				"max_chapter": {Type: "integer"},
				"min_chapter": {Type: "integer"},
			}},
			wantErr: "never encoded",
		},
		{
			name: "not required",
			schema: schema{Type: "object", Required: []string{"book_id"}, Properties: map[string]schema{
				"book_id":     {Type: "string"},
				"max_chapter": {Type: "integer"},
			}},
			wantErr: "max_chapter required",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ensureMatchesType("ChapterBounds", tc.schema, bounds)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("err = %v, want containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateRoutes(t *testing.T) {
	doc := openAPIDoc{Paths: map[string]map[string]any{
		"/healthz":           {"get": nil},
		"/api/bible/books":   {"get": nil},
		"/api/bible/verse":   {"post": nil},
		"/api/bible/unknown": {"get": nil},
	}}
	err := validateRoutes(doc)
	if err == nil || !strings.Contains(err.Error(), "/api/bible/unknown") {
		t.Fatalf("err = %v", err)
	}
	delete(doc.Paths, "/api/bible/unknown")
	err = validateRoutes(doc)
	if err == nil || !strings.Contains(err.Error(), "GET /api/bible/verse") || !strings.Contains(err.Error(), "/api/bible/chapters") {
		t.Fatalf("err = %v", err)
	}
}
