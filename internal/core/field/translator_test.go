package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/django2gorm/internal/core/lexer"
	"github.com/example/django2gorm/internal/models"
)

func translateLine(raw string, ctx Context) Result {
	return Translate(lexer.Classify(raw, 4), ctx)
}

func TestTranslate_Scalars(t *testing.T) {
	tests := []struct {
		raw      string
		wantName string
		wantType string
		wantCol  string
	}{
		{"    is_active = models.BooleanField(default=True)", "Is_active", "bool", "is_active"},
		{"    age = models.IntegerField()", "Age", "int", "age"},
		{"    views = models.BigIntegerField()", "Views", "int64", "views"},
		{"    name = models.CharField(max_length=100)", "Name", "string", "name"},
		{"    bio = models.TextField(blank=True)", "Bio", "string", "bio"},
		{"    created = models.DateTimeField(auto_now_add=True)", "Created", "time.Time", "created"},
		{"    verified = models.NullBooleanField()", "Verified", "sql.NullBool", "verified"},
		{"    blob = models.BinaryField()", "Blob", "[]byte", "blob"},
		{"    homePage = models.CharField()", "Homepage", "string", "homepage"},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			res := translateLine(tt.raw, Context{Declaration: "Profile"})
			require.Len(t, res.Entries, 1)
			assert.Empty(t, res.Diagnostics)

			e := res.Entries[0]
			assert.Equal(t, models.KindScalar, e.Kind)
			assert.Equal(t, tt.wantName, e.Name)
			assert.Equal(t, tt.wantType, e.Type)
			assert.Equal(t, tt.wantCol, e.Column)
			assert.Equal(t, 4, e.Line)
			assert.Empty(t, e.Tag, "tags are rendered at close")
		})
	}
}

func TestTranslate_PrimaryKey(t *testing.T) {
	for _, name := range []string{"id", "pk", "ID", "PK"} {
		t.Run(name, func(t *testing.T) {
			res := translateLine("    "+name+" = models.AutoField(primary_key=True)", Context{})
			require.Len(t, res.Entries, 1)

			e := res.Entries[0]
			assert.Equal(t, models.KindPrimaryKey, e.Kind)
			assert.Equal(t, "int64", e.Type)
			assert.Equal(t, map[string]string{"id": "ID", "pk": "PK", "ID": "ID", "PK": "PK"}[name], e.Name)
		})
	}
}

func TestTranslate_IDWithoutPrimaryKeyIsScalar(t *testing.T) {
	res := translateLine("    id = models.BigIntegerField()", Context{})
	require.Len(t, res.Entries, 1)
	assert.Equal(t, models.KindScalar, res.Entries[0].Kind)
	assert.Equal(t, "Id", res.Entries[0].Name)
}

func TestTranslate_Unknown(t *testing.T) {
	res := translateLine("    slug = models.SlugField(unique=True)", Context{PrevTrimmed: "name = models.CharField()"})

	require.Len(t, res.Entries, 1)
	e := res.Entries[0]
	assert.Equal(t, models.KindUnknown, e.Kind)
	assert.Equal(t, "!! unknown type in line 4, original: slug = models.SlugField(unique=True)", e.Note)

	require.Len(t, res.Diagnostics, 1)
	d := res.Diagnostics[0]
	assert.Equal(t, models.SeverityWarning, d.Severity)
	assert.Equal(t, models.CodeUnresolvedFieldKind, d.Code)
	assert.Equal(t, "4: Unknown/unhandled line: SlugField", d.String())
}

func TestTranslate_SkipsContinuationAndIgnorable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		prev string
	}{
		{"after comma", "    choices = models.TextChoices('A B')", "name = models.CharField(max_length=10,"},
		{"after backslash", "    other = models.SlugField()", `x = 1 + \`},
		{"logger", "    log = logging.getLogger(models.__name__)", ""},
		{"bad line after comma", "    2bad = models.CharField()", "a = models.ForeignKey(B,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := translateLine(tt.raw, Context{PrevTrimmed: tt.prev})
			assert.Empty(t, res.Entries)
			assert.Empty(t, res.Diagnostics)
		})
	}
}

func TestTranslate_Unparseable(t *testing.T) {
	res := translateLine("    2bad = models.CharField()", Context{})

	require.Len(t, res.Entries, 1)
	assert.Equal(t, models.KindUnknown, res.Entries[0].Kind)
	assert.Equal(t, "!! Unhandled item in line 4, original: 2bad = models.CharField()", res.Entries[0].Note)

	require.Len(t, res.Diagnostics, 1)
	assert.Equal(t, models.SeverityError, res.Diagnostics[0].Severity)
	assert.Equal(t, models.CodeUnparseableFieldLine, res.Diagnostics[0].Code)
}

func TestCommentEntry(t *testing.T) {
	doc := CommentEntry(lexer.Classify(`    """Profile data."""`, 2))
	assert.Equal(t, models.KindComment, doc.Kind)
	assert.Equal(t, "Profile data.", doc.Note)

	hash := CommentEntry(lexer.Classify("    # audit fields", 3))
	assert.Equal(t, " audit fields", hash.Note)
	assert.Equal(t, 3, hash.Line)
}

func TestCapitalize(t *testing.T) {
	tests := map[string]string{
		"name":       "Name",
		"last_login": "Last_login",
		"homePage":   "Homepage",
		"":           "",
		"émail":      "Émail",
	}
	for in, want := range tests {
		if got := Capitalize(in); got != want {
			t.Errorf("Capitalize(%q) = %q, want %q", in, got, want)
		}
	}
}
