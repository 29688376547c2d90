package Quoter

// AgeRange identifies one pricing tier of a plan price table.
type AgeRange string

const (
	Range0_18   AgeRange = "0-18"
	Range19_23  AgeRange = "19-23"
	Range24_28  AgeRange = "24-28"
	Range29_33  AgeRange = "29-33"
	Range34_38  AgeRange = "34-38"
	Range39_43  AgeRange = "39-43"
	Range44_48  AgeRange = "44-48"
	Range49_53  AgeRange = "49-53"
	Range54_58  AgeRange = "54-58"
	Range59Plus AgeRange = "59+"
)

// AgeRanges is the canonical display and iteration order of the brackets.
var AgeRanges = []AgeRange{
	Range0_18,
	Range19_23,
	Range24_28,
	Range29_33,
	Range34_38,
	Range39_43,
	Range44_48,
	Range49_53,
	Range54_58,
	Range59Plus,
}

// Selection maps each age bracket to the number of beneficiaries in it.
type Selection map[AgeRange]int

// NewSelection returns a selection with every bracket present and zeroed.
func NewSelection() Selection {
	selection := make(Selection, len(AgeRanges))
	for _, ageRange := range AgeRanges {
		selection[ageRange] = 0
	}
	return selection
}

func (s Selection) TotalLives() int {
	total := 0
	for _, count := range s {
		total += count
	}
	return total
}

// IsSoloMinor reports whether every selected beneficiary is in the 0-18
// bracket, with no adult titleholder present. An empty selection is not
// solo-minor.
func (s Selection) IsSoloMinor() bool {
	total := s.TotalLives()
	if total == 0 {
		return false
	}
	return s[Range0_18] == total
}
