package tablecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/django2gorm/internal/models"
)

func TestCompare(t *testing.T) {
	decls := []*models.Declaration{
		{Name: "Author", DefaultTable: "app_authors"},
		{Name: "Book", DefaultTable: "app_books", ExplicitTable: "Library_Book"},
		{Name: "Tag", DefaultTable: "app_tags"},
	}
	existing := []string{"library_book", "blog_tag", "tag", "app_authors"}

	statuses := Compare(decls, existing)
	require.Len(t, statuses, 3)

	assert.Equal(t, Status{Declaration: "Author", Table: "app_authors", Exists: true}, statuses[0])
	assert.Equal(t, Status{Declaration: "Book", Table: "Library_Book", Explicit: true, Exists: true}, statuses[1])
	assert.Equal(t, Status{
		Declaration: "Tag",
		Table:       "app_tags",
		Suggestions: []string{"blog_tag", "tag"},
	}, statuses[2])
}

func TestCompare_EmptyCatalog(t *testing.T) {
	statuses := Compare([]*models.Declaration{{Name: "A", DefaultTable: "app_as"}}, nil)

	require.Len(t, statuses, 1)
	assert.False(t, statuses[0].Exists)
	assert.Nil(t, statuses[0].Suggestions)
}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		existing []string
		want     []string
	}{
		{"app label", "UserProfile", []string{"accounts_userprofile", "profile"}, []string{"accounts_userprofile"}},
		{"bare name", "Tag", []string{"tag", "tags"}, []string{"tag"}},
		{"sorted", "Tag", []string{"z_tag", "a_tag"}, []string{"a_tag", "z_tag"}},
		{"no match", "Tag", []string{"hashtag"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.model, tt.existing))
		})
	}
}
