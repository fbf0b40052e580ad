package screen

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Clusters splits s into grapheme clusters.
func Clusters(s string) []string {
	var out []string
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}

// TextWidth returns the number of columns s occupies.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}
