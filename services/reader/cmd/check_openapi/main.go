// Command check_openapi verifies that api/openapi.yaml matches the JSON the
// reader actually serves: the error envelope, the documented routes and the
// fields of every response schema.
package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"slices"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"mananciall/pkg/bible"
	"mananciall/pkg/domain"
	"mananciall/services/reader/internal/server"
)

type openAPIDoc struct {
	Paths      map[string]map[string]any `yaml:"paths"`
	Components struct {
		Schemas map[string]schema `yaml:"schemas"`
	} `yaml:"components"`
}

type schema struct {
	Type       string            `yaml:"type"`
	Ref        string            `yaml:"$ref"`
	Properties map[string]schema `yaml:"properties"`
	Required   []string          `yaml:"required"`
	Items      *schema           `yaml:"items"`
}

// responseTypes maps schema names to the Go types encoded in responses.
var responseTypes = map[string]reflect.Type{
	"Book":          reflect.TypeOf((*domain.Book)(nil)).Elem(),
	"VerseView":     reflect.TypeOf((*domain.VerseView)(nil)).Elem(),
	"Version":       reflect.TypeOf((*bible.Version)(nil)).Elem(),
	"ChapterBounds": reflect.TypeOf((*domain.ChapterBounds)(nil)).Elem(),
}

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <reader-openapi.yaml>\n", os.Args[0])
		os.Exit(2)
	}
	doc, err := loadDoc(os.Args[1])
	if err != nil {
		exitErr(err)
	}
	if err := check(doc); err != nil {
		exitErr(err)
	}
	fmt.Println("OpenAPI consistency check passed.")
}

func check(doc openAPIDoc) error {
	var errs []error
	if err := validateRoutes(doc); err != nil {
		errs = append(errs, err)
	}
	errResp, err := getSchema(doc, "ErrorResponse")
	if err != nil {
		errs = append(errs, err)
	} else if err := validateErrorResponse(errResp); err != nil {
		errs = append(errs, err)
	}
	names := make([]string, 0, len(responseTypes))
	for name := range responseTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		s, err := getSchema(doc, name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := ensureMatchesType(name, s, responseTypes[name]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func loadDoc(path string) (openAPIDoc, error) {
	var doc openAPIDoc
	raw, err := os.ReadFile(path)
	if err != nil {
		return doc, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return doc, fmt.Errorf("parse %s: %w", path, err)
	}
	return doc, nil
}

func getSchema(doc openAPIDoc, name string) (schema, error) {
	if doc.Components.Schemas == nil {
		return schema{}, errors.New("components.schemas missing")
	}
	s, ok := doc.Components.Schemas[name]
	if !ok {
		return schema{}, fmt.Errorf("schema %q missing", name)
	}
	return s, nil
}

func validateRoutes(doc openAPIDoc) error {
	var missing []string
	for _, route := range server.JSONRoutes {
		ops, ok := doc.Paths[route]
		if !ok {
			missing = append(missing, route)
			continue
		}
		if _, ok := ops["get"]; !ok {
			missing = append(missing, "GET "+route)
		}
	}
	for route := range doc.Paths {
		if !slices.Contains(server.JSONRoutes, route) {
			return fmt.Errorf("documented path %q is not served", route)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("paths missing from document: %s", strings.Join(missing, ", "))
	}
	return nil
}

func validateErrorResponse(s schema) error {
	if s.Type != "object" {
		return errors.New("ErrorResponse must be object")
	}
	required := makeSet(s.Required)
	for _, field := range []string{"error", "code"} {
		if !required[field] {
			return fmt.Errorf("ErrorResponse.required must include %q", field)
		}
	}
	for _, field := range []string{"error", "code", "requestId"} {
		prop, ok := s.Properties[field]
		if !ok || prop.Type != "string" {
			return fmt.Errorf("ErrorResponse.%s must be string", field)
		}
	}
	return nil
}

// ensureMatchesType compares schema properties with the JSON fields of t.
// Fields tagged omitempty must not be listed as required; all others must.
func ensureMatchesType(name string, s schema, t reflect.Type) error {
	if s.Type != "object" {
		return fmt.Errorf("%s must be object", name)
	}
	required := makeSet(s.Required)
	seen := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonName, omitEmpty, ok := jsonField(field)
		if !ok {
			continue
		}
		seen[jsonName] = true
		prop, ok := s.Properties[jsonName]
		if !ok {
			return fmt.Errorf("%s missing property %q", name, jsonName)
		}
		if want := openAPIType(field.Type); prop.Type != want {
			return fmt.Errorf("%s.%s type = %q, want %q", name, jsonName, prop.Type, want)
		}
		if required[jsonName] == omitEmpty {
			return fmt.Errorf("%s.%s required = %v, want %v", name, jsonName, required[jsonName], !omitEmpty)
		}
	}
	for prop := range s.Properties {
		if !seen[prop] {
			return fmt.Errorf("%s documents %q which is never encoded", name, prop)
		}
	}
	return nil
}

func jsonField(field reflect.StructField) (name string, omitEmpty bool, ok bool) {
	if !field.IsExported() {
		return "", false, false
	}
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", false, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = field.Name
	}
	return name, slices.Contains(strings.Split(opts, ","), "omitempty"), true
}

func openAPIType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

func makeSet(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out[item] = true
	}
	return out
}

func exitErr(err error) {
	fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
