package slug

import (
	"fmt"
	"strings"
)

// Slugify derives the anchor for a heading title using standard Markdown
// anchor rules: lowercase, strip every character outside [a-z0-9- ], then
// replace spaces with hyphens. The result is idempotent — slugifying a slug
// returns it unchanged.
func Slugify(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}

// Anchors assigns a unique anchor to each title, in order. Titles whose base
// slug is unique keep the bare form. When several titles collide on the same
// base slug, each occurrence is suffixed -1, -2, ... in order of appearance
// and the bare form identifies none of them.
func Anchors(titles []string) []string {
	counts := make(map[string]int, len(titles))
	for _, t := range titles {
		counts[Slugify(t)]++
	}

	anchors := make([]string, len(titles))
	seen := make(map[string]int, len(titles))
	for i, t := range titles {
		base := Slugify(t)
		if counts[base] == 1 {
			anchors[i] = base
			continue
		}
		seen[base]++
		anchors[i] = fmt.Sprintf("%s-%d", base, seen[base])
	}
	return anchors
}

// Collisions returns the set of base slugs shared by more than one title.
// An anchor targeting a collided base slug is ambiguous: it names several
// headings at once.
func Collisions(titles []string) map[string]bool {
	counts := make(map[string]int, len(titles))
	for _, t := range titles {
		counts[Slugify(t)]++
	}
	collided := make(map[string]bool)
	for s, n := range counts {
		if n > 1 {
			collided[s] = true
		}
	}
	return collided
}
