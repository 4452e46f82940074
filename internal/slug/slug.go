// Package slug derives URL-safe slugs from thread names and generates the
// random word aliases used to anonymize authors.
package slug

import (
	"math/rand/v2"
	"strings"
)

var adjectives = []string{
	"amber", "bold", "calm", "clever", "crimson", "eager", "fuzzy", "gentle",
	"golden", "happy", "jolly", "lucky", "mellow", "nimble", "quiet", "rapid",
	"silent", "sunny", "swift", "witty",
}

var nouns = []string{
	"badger", "beacon", "canyon", "comet", "falcon", "harbor", "lantern",
	"meadow", "otter", "panda", "pebble", "raven", "river", "sparrow",
	"thicket", "tiger", "trail", "walrus", "willow", "wren",
}

// Create turns a display name into a lowercase dash-separated slug.
func Create(name string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		case !lastDash:
			sb.WriteByte('-')
			lastDash = true
		}
	}
	s := strings.Trim(sb.String(), "-")
	if s == "" {
		return "unknown"
	}
	return s
}

// RandomWords returns an adjective-adjective-noun alias.
func RandomWords() string {
	return strings.Join([]string{
		adjectives[rand.IntN(len(adjectives))],
		adjectives[rand.IntN(len(adjectives))],
		nouns[rand.IntN(len(nouns))],
	}, "-")
}
