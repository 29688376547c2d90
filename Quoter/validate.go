package Quoter

// AdvanceBlock explains why a selection cannot advance to results, so the
// caller can show the matching warning.
type AdvanceBlock string

const (
	BlockNone        AdvanceBlock = ""
	BlockNoLives     AdvanceBlock = "no_lives"
	BlockPME1Limit   AdvanceBlock = "pme1_over_one_life"
	BlockPME2Minimum AdvanceBlock = "pme2_under_two_lives"
	BlockPMEMinor    AdvanceBlock = "pme_solo_minor"
)

// Validate checks the selection against the category's contracting rules:
// at least one life; single-life business takes exactly one; small-group
// business takes at least two; any business tier requires a non-minor.
func Validate(category Category, selection Selection) AdvanceBlock {
	total := selection.TotalLives()
	if total == 0 {
		return BlockNoLives
	}
	if category.IsPME() && selection.IsSoloMinor() {
		return BlockPMEMinor
	}
	if category == CategoryPME1 && total > 1 {
		return BlockPME1Limit
	}
	if category == CategoryPME2 && total < 2 {
		return BlockPME2Minimum
	}
	return BlockNone
}

// CanAdvance reports whether the flow may move from bracket input to results.
func CanAdvance(category Category, selection Selection) bool {
	return Validate(category, selection) == BlockNone
}
