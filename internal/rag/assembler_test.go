package rag

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestAssembler_Assemble(t *testing.T) {
	tests := []struct {
		name      string
		budget    int
		passages  []RetrievedPassage
		wantTexts []string
	}{
		{
			name:      "empty input yields empty context",
			budget:    500,
			passages:  []RetrievedPassage{},
			wantTexts: []string{},
		},
		{
			name:   "all passages fit",
			budget: 100,
			passages: []RetrievedPassage{
				{SourceID: "a", Text: "first passage", Score: 0.9, Rank: 0},
				{SourceID: "b", Text: "second passage", Score: 0.8, Rank: 1},
			},
			wantTexts: []string{"first passage", "second passage"},
		},
		{
			name:   "duplicate source collapses to first occurrence",
			budget: 100,
			passages: []RetrievedPassage{
				{SourceID: "a", Text: "top ranked", Score: 0.9, Rank: 0},
				{SourceID: "b", Text: "middle", Score: 0.8, Rank: 1},
				{SourceID: "a", Text: "lower ranked duplicate", Score: 0.5, Rank: 2},
			},
			wantTexts: []string{"top ranked", "middle"},
		},
		{
			name:   "overflowing passage truncated to remaining budget",
			budget: 20,
			passages: []RetrievedPassage{
				{SourceID: "a", Text: "0123456789", Score: 0.9, Rank: 0},
				{SourceID: "b", Text: "abcdefghijklmnop", Score: 0.8, Rank: 1},
				{SourceID: "c", Text: "never included", Score: 0.7, Rank: 2},
			},
			wantTexts: []string{"0123456789", "abcdefghij"},
		},
		{
			name:   "first passage alone exceeds budget",
			budget: 5,
			passages: []RetrievedPassage{
				{SourceID: "a", Text: "0123456789", Score: 0.9, Rank: 0},
			},
			wantTexts: []string{"01234"},
		},
		{
			name:   "passage filling budget exactly is kept whole",
			budget: 10,
			passages: []RetrievedPassage{
				{SourceID: "a", Text: "0123456789", Score: 0.9, Rank: 0},
				{SourceID: "b", Text: "excluded", Score: 0.8, Rank: 1},
			},
			wantTexts: []string{"0123456789"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assembler := NewAssembler(tt.budget)
			got := assembler.Assemble(tt.passages)

			if got.Length() > tt.budget {
				t.Errorf("Assemble() total length = %d, exceeds budget %d", got.Length(), tt.budget)
			}

			if len(got.Passages) != len(tt.wantTexts) {
				t.Fatalf("Assemble() included %d passages, want %d", len(got.Passages), len(tt.wantTexts))
			}
			for i, want := range tt.wantTexts {
				if got.Passages[i].Text != want {
					t.Errorf("Assemble() passage %d text = %q, want %q", i, got.Passages[i].Text, want)
				}
			}
		})
	}
}

func TestAssembler_AssembleIdempotent(t *testing.T) {
	passages := []RetrievedPassage{
		{SourceID: "a", Text: strings.Repeat("x", 30), Score: 0.9, Rank: 0},
		{SourceID: "b", Text: strings.Repeat("y", 30), Score: 0.8, Rank: 1},
		{SourceID: "c", Text: strings.Repeat("z", 30), Score: 0.7, Rank: 2},
	}

	assembler := NewAssembler(50)
	first := assembler.Assemble(passages)
	second := assembler.Assemble(first.Passages)

	if len(first.Passages) != len(second.Passages) {
		t.Fatalf("re-assembly changed passage count: %d vs %d", len(first.Passages), len(second.Passages))
	}
	for i := range first.Passages {
		if first.Passages[i] != second.Passages[i] {
			t.Errorf("re-assembly changed passage %d: %+v vs %+v", i, first.Passages[i], second.Passages[i])
		}
	}
}

func TestAssembler_TruncatesAtRuneBoundary(t *testing.T) {
	// Devanagari codepoints are three bytes each; a byte-index cut would
	// split one of them and feed invalid UTF-8 into the prompt.
	hindi := "मामले के तथ्य इस प्रकार हैं"

	for budget := 1; budget < len(hindi); budget++ {
		got := NewAssembler(budget).Assemble([]RetrievedPassage{
			{SourceID: "a", Text: hindi, Score: 0.9, Rank: 0},
		})

		if got.Length() > budget {
			t.Fatalf("budget %d: total length %d exceeds budget", budget, got.Length())
		}
		for _, p := range got.Passages {
			if !utf8.ValidString(p.Text) {
				t.Fatalf("budget %d: truncated passage is invalid UTF-8: %q", budget, p.Text)
			}
			if !strings.HasPrefix(hindi, p.Text) {
				t.Fatalf("budget %d: truncation is not a prefix of the original: %q", budget, p.Text)
			}
		}
	}
}

func TestAssembler_PreservesOrder(t *testing.T) {
	passages := []RetrievedPassage{
		{SourceID: "s3", Text: "third", Score: 0.7, Rank: 2},
		{SourceID: "s1", Text: "first", Score: 0.9, Rank: 0},
		{SourceID: "s2", Text: "second", Score: 0.8, Rank: 1},
	}

	got := NewAssembler(1000).Assemble(passages)

	wantOrder := []string{"s3", "s1", "s2"}
	for i, want := range wantOrder {
		if got.Passages[i].SourceID != want {
			t.Errorf("passage %d source = %q, want %q (assembler must not re-sort)", i, got.Passages[i].SourceID, want)
		}
	}
}
