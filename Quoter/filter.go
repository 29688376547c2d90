package Quoter

import "strings"

// FilterEligible narrows the catalog to the plans that may be quoted for the
// given category and selection, preserving catalog order.
//
// Business rule: Fênix Medical does not sell individual (PF) contracts to
// minors without an adult titleholder, so a PF solo-minor selection drops
// that operator. Business categories handle solo-minor upstream, in
// CanAdvance, and keep the full catalog here.
func FilterEligible(catalog []Plan, category Category, selection Selection) []Plan {
	eligible := make([]Plan, 0, len(catalog))
	for _, plan := range catalog {
		if !plan.EligibleFor(category) {
			continue
		}
		eligible = append(eligible, plan)
	}

	if category == CategoryPF && selection.IsSoloMinor() {
		filtered := eligible[:0]
		for _, plan := range eligible {
			if isFenix(plan.Operator) {
				continue
			}
			filtered = append(filtered, plan)
		}
		eligible = filtered
	}

	return eligible
}

func isFenix(operator string) bool {
	op := strings.ToLower(operator)
	return strings.Contains(op, "fênix") || strings.Contains(op, "fenix")
}
