package search

import (
	"testing"

	"github.com/Zachkp/portfolio/internal/content"

	"github.com/stretchr/testify/assert"
)

var projectText = []string{"title", "description", "tags"}

func titles(ps []content.Project) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Title
	}
	return out
}

func fixtures() []content.Project {
	return []content.Project{
		{ID: "1", Title: "URL Shortener", Category: "backend", Role: []string{"developer"}, Tags: []string{"Go", "SQLite"}},
		{ID: "2", Title: "Portfolio Site", Category: "fullstack", Role: []string{"developer", "designer"}, Tags: []string{"HTMX"}},
		{ID: "3", Title: "Brand Refresh", Category: "Design", Role: []string{"designer"}, Description: "logo and go-to-market kit"},
	}
}

func TestByText_EmptyIsIdentity(t *testing.T) {
	in := fixtures()
	for _, q := range []string{"", "   ", "\t"} {
		assert.Equal(t, in, ByText(in, q, projectText...))
	}
}

func TestByText_CaseInsensitive(t *testing.T) {
	in := fixtures()

	lower := ByText(in, "portfolio", projectText...)
	upper := ByText(in, "PORTFOLIO", projectText...)

	assert.Equal(t, []string{"Portfolio Site"}, titles(lower))
	assert.Equal(t, lower, upper)
}

func TestByText_MatchesListElements(t *testing.T) {
	got := ByText(fixtures(), "sql", projectText...)
	assert.Equal(t, []string{"URL Shortener"}, titles(got))
}

func TestByText_AnyField(t *testing.T) {
	got := ByText(fixtures(), "go", projectText...)
	assert.Equal(t, []string{"URL Shortener", "Brand Refresh"}, titles(got))
}

func TestByText_OnlyNamedFields(t *testing.T) {
	got := ByText(fixtures(), "go", "title")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestByCategory(t *testing.T) {
	in := fixtures()

	assert.Equal(t, in, ByCategory(in, "all", "category"))
	assert.Equal(t, in, ByCategory(in, "ALL", "category"))
	assert.Equal(t, in, ByCategory(in, "", "category"))

	assert.Equal(t, []string{"Brand Refresh"}, titles(ByCategory(in, "design", "category")))
	// exact match, not substring
	assert.Empty(t, ByCategory(in, "full", "category"))
}

func TestByRole(t *testing.T) {
	in := fixtures()

	assert.Equal(t, in, ByRole(in, "all"))
	assert.Equal(t, []string{"Portfolio Site", "Brand Refresh"}, titles(ByRole(in, "designer")))
	assert.Empty(t, ByRole(in, "manager"))
}

func TestApply(t *testing.T) {
	in := fixtures()

	assert.Equal(t, in, Apply(in, Query{}))

	got := Apply(in, Query{
		Role:          "developer",
		Category:      "fullstack",
		CategoryField: "category",
		Text:          "htmx",
		TextFields:    projectText,
	})
	assert.Equal(t, []string{"Portfolio Site"}, titles(got))

	got = Apply(in, Query{Role: "designer", Text: "brand", TextFields: projectText})
	assert.Equal(t, []string{"Brand Refresh"}, titles(got))
}

func TestMessagesByStatus(t *testing.T) {
	msgs := []content.Message{{ID: "1"}, {ID: "2", Read: true}}

	unread := ByCategory(msgs, "unread", "status")
	assert.Len(t, unread, 1)
	assert.Equal(t, "1", unread[0].ID)
	assert.Equal(t, msgs, ByCategory(msgs, "all", "status"))
}
