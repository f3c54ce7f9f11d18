package meme

import "strings"

// SplitHeadings splits a quote into top and bottom meme texts by word count.
// The first half (floor division, so the shorter half on odd counts) becomes
// the top text and the remainder the bottom text, each rejoined with single
// spaces. An empty or whitespace-only quote yields two empty strings.
func SplitHeadings(quote string) (top, bottom string) {
	words := strings.Fields(quote)
	half := len(words) / 2

	top = strings.Join(words[:half], " ")
	bottom = strings.Join(words[half:], " ")

	return top, bottom
}
