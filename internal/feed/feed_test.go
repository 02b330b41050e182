package feed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const atomFeed = `<?xml version="1.0" encoding="utf-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>Fungal Biology Reviews</title>
  <entry>
    <title>Mycelium Composites for Packaging</title>
    <link href="https://example.org/articles/1"/>
    <author><name>Jones M.</name></author>
    <author><name>Appels F.</name></author>
    <published>2023-05-01T00:00:00Z</published>
    <category term="Biomaterials"/>
    <category term="packaging"/>
    <summary>&lt;p&gt;Grown   composites replace &lt;b&gt;polystyrene&lt;/b&gt;.&lt;/p&gt;</summary>
  </entry>
  <entry>
    <title>Spent Substrate Reuse on Small Farms</title>
    <link href="https://example.org/articles/2"/>
    <updated>2021-03-10T00:00:00Z</updated>
    <summary>Harvest yields after compost amendment.</summary>
  </entry>
  <entry>
    <title>Duplicate of the first</title>
    <link href="https://example.org/articles/1"/>
  </entry>
  <entry>
    <title></title>
    <link href="https://example.org/articles/3"/>
  </entry>
</feed>`

func TestParseAtom(t *testing.T) {
	articles, err := NewParser(nil).Parse(strings.NewReader(atomFeed))
	require.NoError(t, err)
	require.Len(t, articles, 2)

	first := articles[0]
	assert.Equal(t, "Mycelium Composites for Packaging", first.Title)
	assert.Equal(t, "Jones M., Appels F.", first.Authors)
	assert.Equal(t, "Fungal Biology Reviews", first.Journal)
	assert.Equal(t, 2023, first.Year)
	assert.Equal(t, "Biomaterials", first.Category)
	assert.Equal(t, []string{"packaging"}, first.Keywords)
	assert.Equal(t, "Grown composites replace polystyrene.", first.Summary)
	assert.Equal(t, "https://example.org/articles/1", first.URL)

	second := articles[1]
	assert.Equal(t, 2021, second.Year)
	// No category in the feed: the classifier fills it in.
	assert.Equal(t, "Agriculture", second.Category)
	assert.Empty(t, second.Keywords)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.atom")
	require.NoError(t, os.WriteFile(path, []byte(atomFeed), 0o644))

	articles, err := NewParser(nil).ParseFile(path)
	require.NoError(t, err)
	assert.Len(t, articles, 2)
}

func TestParseInvalid(t *testing.T) {
	_, err := NewParser(nil).Parse(strings.NewReader("not a feed"))
	assert.Error(t, err)
}

func TestArticleID(t *testing.T) {
	id1 := articleID("https://example.com/post-1")
	id2 := articleID("https://example.com/post-2")
	id1again := articleID("https://example.com/post-1")

	if id1 == id2 {
		t.Error("different URLs should produce different IDs")
	}
	if id1 != id1again {
		t.Error("same URL should produce same ID")
	}
	if len(id1) != 36 {
		t.Errorf("expected 36-char uuid, got %d chars: %s", len(id1), id1)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"short", 10, "short"},
		{"this is a long string", 10, "this is..."},
		{"abcd", 3, "abc"},
		{"", 5, ""},
		{"こんにちは世界です", 5, "こん..."},
	}
	for _, tt := range tests {
		got := truncate(tt.input, tt.n)
		if got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestStripHTML(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<p>Hello</p>", "Hello"},
		{"<b>Bold</b> and <i>italic</i>", "Bold and italic"},
		{"No tags here", "No tags here"},
		{"<div>  Multiple   spaces  </div>", "Multiple spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		got := stripHTML(tt.input)
		if got != tt.want {
			t.Errorf("stripHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
