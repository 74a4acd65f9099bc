package rag

import "unicode/utf8"

// Assembler packs retrieved passages into a context bounded by a character
// budget.
type Assembler struct {
	budget int
}

// NewAssembler creates an assembler with the given character budget.
func NewAssembler(budget int) *Assembler {
	return &Assembler{budget: budget}
}

// Assemble walks the passages in their given order and includes each one in
// full while it fits the remaining budget. The first passage that does not
// fit is truncated to the remaining budget and ends the walk, so truncation
// happens at most once, on the last included passage. Passages sharing a
// source ID are collapsed to their first occurrence before the walk.
//
// An empty input produces an empty context, not an error.
func (a *Assembler) Assemble(passages []RetrievedPassage) AssembledContext {
	deduped := dedupeBySource(passages)

	included := []RetrievedPassage{}
	remaining := a.budget

	for _, p := range deduped {
		if remaining <= 0 {
			break
		}
		if len(p.Text) > remaining {
			p.Text = truncateAtRuneBoundary(p.Text, remaining)
			if p.Text != "" {
				included = append(included, p)
			}
			break
		}
		remaining -= len(p.Text)
		included = append(included, p)
	}

	return AssembledContext{Passages: included}
}

// truncateAtRuneBoundary cuts s to at most n bytes, backing the cut off to
// the nearest rune start so precedent text in Devanagari or Kannada script
// is never split mid-rune.
func truncateAtRuneBoundary(s string, n int) string {
	if n >= len(s) {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// dedupeBySource keeps the first (highest-ranked) passage for each source ID,
// preserving the original order.
func dedupeBySource(passages []RetrievedPassage) []RetrievedPassage {
	seen := make(map[string]bool, len(passages))
	out := make([]RetrievedPassage, 0, len(passages))
	for _, p := range passages {
		if seen[p.SourceID] {
			continue
		}
		seen[p.SourceID] = true
		out = append(out, p)
	}
	return out
}
