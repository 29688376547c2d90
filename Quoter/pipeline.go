package Quoter

// Result is the full output of one quote computation. All slices are freshly
// allocated per call; callers may mutate them freely.
type Result struct {
	Plans      []CalculatedPlan `json:"plans"`
	Groups     []PlanGroup      `json:"groups"`
	Operators  []OperatorGroup  `json:"operators"`
	TotalLives int              `json:"total_lives"`
}

// Quote runs the whole pipeline: eligibility filter, per-plan pricing,
// ranking, variant grouping and operator grouping. A selection with no
// active brackets short-circuits to an empty result, as does an unset or
// unknown category. Degenerate input never errors, it just quotes nothing.
func Quote(catalog []Plan, category Category, selection Selection) Result {
	result := Result{TotalLives: selection.TotalLives()}

	if result.TotalLives == 0 {
		return result
	}

	eligible := FilterEligible(catalog, category, selection)

	plans := make([]CalculatedPlan, 0, len(eligible))
	for _, plan := range eligible {
		plans = append(plans, ComputePrice(plan, selection))
	}

	result.Plans = Rank(plans)
	result.Groups = GroupVariants(result.Plans)
	result.Operators = GroupByOperator(result.Groups)
	return result
}
