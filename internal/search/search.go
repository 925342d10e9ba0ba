// Package search narrows record lists for the public listing and admin inbox
// views. All functions are pure and return the input slice unchanged when the
// filter is empty.
package search

import "strings"

// Fielded is a record exposing its fields by JSON name. List fields return one
// value per element.
type Fielded interface {
	FieldValues(name string) []string
}

// All is the category/role value meaning no filter.
const All = "all"

// ByText keeps records where any of fields contains query, ignoring case.
func ByText[T Fielded](records []T, query string, fields ...string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}
	return keep(records, func(r T) bool {
		for _, f := range fields {
			for _, v := range r.FieldValues(f) {
				if strings.Contains(strings.ToLower(v), q) {
					return true
				}
			}
		}
		return false
	})
}

// ByCategory keeps records whose field equals category, ignoring case.
func ByCategory[T Fielded](records []T, category, field string) []T {
	if isAll(category) {
		return records
	}
	c := strings.TrimSpace(category)
	return keep(records, func(r T) bool {
		for _, v := range r.FieldValues(field) {
			if strings.EqualFold(v, c) {
				return true
			}
		}
		return false
	})
}

// ByRole keeps records whose role list contains role.
func ByRole[T Fielded](records []T, role string) []T {
	return ByCategory(records, role, "role")
}

// Query bundles the filters of one listing request.
type Query struct {
	Text          string
	TextFields    []string
	Category      string
	CategoryField string
	Role          string
}

// Apply filters by role, then category, then text.
func Apply[T Fielded](records []T, q Query) []T {
	out := ByRole(records, q.Role)
	if q.CategoryField != "" {
		out = ByCategory(out, q.Category, q.CategoryField)
	}
	return ByText(out, q.Text, q.TextFields...)
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, All)
}

func keep[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}
