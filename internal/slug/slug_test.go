package slug

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var slugShape = regexp.MustCompile(`^[a-z0-9-]{1,37}$`)

func TestGenerate_Shape(t *testing.T) {
	g := New()

	titles := []string{
		"Website Project",
		"Briefing para Desenvolvimento de Website!!!",
		"A",
		"UPPER case TITLE with   runs of    spaces",
		"1234567890 1234567890 1234567890 1234567890",
	}
	for _, title := range titles {
		got := g.Generate(title)
		assert.Regexp(t, slugShape, got, "title %q", title)
	}
}

func TestGenerate_BasePrefix(t *testing.T) {
	g := New()

	got := g.Generate("Website Project")
	assert.True(t, strings.HasPrefix(got, "website-project-"), "got %q", got)
}

func TestGenerate_StripsAndCollapses(t *testing.T) {
	g := New()

	got := g.Generate("Olá, Mundo!  (v2)")
	// Non [a-z0-9\s] runes are stripped before hyphenation.
	assert.True(t, strings.HasPrefix(got, "ol-mundo-v2-"), "got %q", got)
}

func TestGenerate_TruncatesBaseTo30(t *testing.T) {
	g := New()

	got := g.Generate(strings.Repeat("a", 64))
	// 30-char base + hyphen + 6-char suffix
	assert.Len(t, got, 37)
	assert.Equal(t, strings.Repeat("a", 30), got[:30])
}

func TestGenerate_SameTitleDifferentSlugs(t *testing.T) {
	g := New()

	first := g.Generate("Website Project")
	second := g.Generate("Website Project")
	assert.NotEqual(t, first, second)
}

func TestGenerate_DeterministicWithFixedSource(t *testing.T) {
	a := NewWithSource(rand.NewSource(42))
	b := NewWithSource(rand.NewSource(42))

	assert.Equal(t, a.Generate("Website Project"), b.Generate("Website Project"))
}
