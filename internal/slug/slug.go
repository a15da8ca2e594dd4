package slug

import (
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"
)

const (
	maxBaseLen    = 30
	suffixLen     = 6
	base36Letters = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var (
	nonSlugChars   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// Generator derives URL-safe briefing slugs. The random suffix makes a slug
// non-guessable from its title; uniqueness is probabilistic, not checked
// against storage before insert (the slug column's unique index catches the
// unlikely collision).
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// New returns a Generator seeded from the current time.
func New() *Generator {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()))
}

// NewWithSource returns a Generator drawing from src. With a fixed source the
// output is deterministic, which the tests rely on.
func NewWithSource(src rand.Source) *Generator {
	return &Generator{rnd: rand.New(src)}
}

// Generate lower-cases the title, strips everything outside [a-z0-9\s],
// collapses whitespace runs to single hyphens, truncates the base to 30
// characters and appends a hyphen plus a 6-character base-36 suffix.
func (g *Generator) Generate(title string) string {
	base := strings.ToLower(title)
	base = nonSlugChars.ReplaceAllString(base, "")
	base = whitespaceRuns.ReplaceAllString(base, "-")
	if len(base) > maxBaseLen {
		base = base[:maxBaseLen]
	}
	return base + "-" + g.suffix()
}

func (g *Generator) suffix() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	b := make([]byte, suffixLen)
	for i := range b {
		b[i] = base36Letters[g.rnd.Intn(len(base36Letters))]
	}
	return string(b)
}
