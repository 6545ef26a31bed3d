// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog holds the built-in descriptor catalog: the genre and style
// tags the generator pairs with input items to form bad-descriptor terms.
// The catalog is a single comma-delimited block parsed once at startup.
// Order is preserved, and duplicate spellings (for example "K-Pop" and
// "K-pop") are kept as distinct entries.
package catalog

import "strings"

// rawBlock is the canonical descriptor list. Edit this block, not the parsed
// slice; parsing trims whitespace and drops empty segments, so line breaks
// here are purely cosmetic.
const rawBlock = `
Horrorcore, Rockabilly, Soundtrack, kid's, children's, Christmas, holiday,
jingle, oldies, Teen, Vocaloid, idol, K-Pop, mandarin, LGBT, Swing, Country,
Anime, Black Metal, Straight Edge, Psychobilly, mediocre, Parody, humorous,
Comedy, Reggaetón, Drill, Future Bass, Big Room House, Dubstep, Bounce,
Hardstyle, Trance, Jersey Club, Footwork, Chiptune, Psytrance, Moombahton,
Riddim Dubstep, Tech-House, Phonk, Electro-swing, Cumbia, Tango, Bossa Nova,
Samba, Dancehall, Bhangra, Disco, Polka, Vaporwave, Minimal Techno, Blues,
Sea Shanty, Lo-fi Hip-Hop, Synthwave, K-pop
`

var descriptors = parse(rawBlock)

// parse splits a comma-delimited block into trimmed, non-empty entries.
func parse(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, ",") {
		if d := strings.TrimSpace(piece); d != "" {
			out = append(out, d)
		}
	}
	return out
}

// Descriptors returns a fresh copy of the catalog. Callers shuffle or
// otherwise mutate their copy freely.
func Descriptors() []string {
	out := make([]string, len(descriptors))
	copy(out, descriptors)
	return out
}

// Size returns the number of catalog entries, duplicates included.
func Size() int {
	return len(descriptors)
}
