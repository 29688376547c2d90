package Quoter

import "testing"

func TestCanAdvance(t *testing.T) {
	cases := []struct {
		name     string
		category Category
		counts   map[AgeRange]int
		want     AdvanceBlock
	}{
		{"no lives", CategoryPF, map[AgeRange]int{}, BlockNoLives},
		{"PF single adult", CategoryPF, map[AgeRange]int{Range29_33: 1}, BlockNone},
		{"PF solo minor may advance", CategoryPF, map[AgeRange]int{Range0_18: 1}, BlockNone},
		{"PME_1 exactly one life", CategoryPME1, map[AgeRange]int{Range34_38: 1}, BlockNone},
		{"PME_1 two lives", CategoryPME1, map[AgeRange]int{Range34_38: 2}, BlockPME1Limit},
		{"PME_2 one life", CategoryPME2, map[AgeRange]int{Range34_38: 1}, BlockPME2Minimum},
		{"PME_2 two lives", CategoryPME2, map[AgeRange]int{Range34_38: 2}, BlockNone},
		{"PME_1 solo minor", CategoryPME1, map[AgeRange]int{Range0_18: 1}, BlockPMEMinor},
		{"PME_2 solo minors", CategoryPME2, map[AgeRange]int{Range0_18: 3}, BlockPMEMinor},
		{"PME_30 solo minors", CategoryPME30, map[AgeRange]int{Range0_18: 2}, BlockPMEMinor},
		{"PME_30 mixed group", CategoryPME30, map[AgeRange]int{Range0_18: 2, Range44_48: 1}, BlockNone},
	}

	for _, tc := range cases {
		selection := selectionOf(tc.counts)
		if got := Validate(tc.category, selection); got != tc.want {
			t.Errorf("%s: Validate = %q, want %q", tc.name, got, tc.want)
		}
		if got := CanAdvance(tc.category, selection); got != (tc.want == BlockNone) {
			t.Errorf("%s: CanAdvance = %v, want %v", tc.name, got, tc.want == BlockNone)
		}
	}
}
