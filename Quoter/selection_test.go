package Quoter

import "testing"

func TestTotalLivesSumsAllBrackets(t *testing.T) {
	selection := selectionOf(map[AgeRange]int{
		Range0_18:   2,
		Range29_33:  1,
		Range59Plus: 3,
	})

	if got := selection.TotalLives(); got != 6 {
		t.Errorf("TotalLives = %d, want 6", got)
	}
}

func TestNewSelectionHasEveryBracketZeroed(t *testing.T) {
	selection := NewSelection()
	if len(selection) != len(AgeRanges) {
		t.Fatalf("selection has %d brackets, want %d", len(selection), len(AgeRanges))
	}
	for _, ageRange := range AgeRanges {
		if count, ok := selection[ageRange]; !ok || count != 0 {
			t.Errorf("bracket %s: count=%d present=%v, want 0 and present", ageRange, count, ok)
		}
	}
}

func TestIsSoloMinor(t *testing.T) {
	cases := []struct {
		name   string
		counts map[AgeRange]int
		want   bool
	}{
		{"three minors only", map[AgeRange]int{Range0_18: 3}, true},
		{"minors with one adult", map[AgeRange]int{Range0_18: 2, Range29_33: 1}, false},
		{"empty selection", map[AgeRange]int{}, false},
		{"adults only", map[AgeRange]int{Range34_38: 2}, false},
	}

	for _, tc := range cases {
		if got := selectionOf(tc.counts).IsSoloMinor(); got != tc.want {
			t.Errorf("%s: IsSoloMinor = %v, want %v", tc.name, got, tc.want)
		}
	}
}
