package Quoter

// PriceDetail is the cost contribution of one active bracket to a quote.
type PriceDetail struct {
	AgeRange  AgeRange `json:"age_range"`
	Count     int      `json:"count"`
	UnitPrice float64  `json:"unit_price"`
	Subtotal  float64  `json:"subtotal"`
}

// CalculatedPlan pairs a plan with its total for the current selection and
// the per-bracket breakdown behind that total.
type CalculatedPlan struct {
	Plan       Plan          `json:"plan"`
	TotalPrice float64       `json:"total_price"`
	Details    []PriceDetail `json:"details"`
}

// ComputePrice prices a plan for the selection. Only brackets with a count
// above zero contribute; a bracket the plan has no price for is charged at
// zero rather than dropping the plan, since catalog gaps are expected.
// Details follow the canonical bracket order.
func ComputePrice(plan Plan, selection Selection) CalculatedPlan {
	calculated := CalculatedPlan{Plan: plan}
	for _, ageRange := range AgeRanges {
		count := selection[ageRange]
		if count <= 0 {
			continue
		}
		unitPrice := plan.Prices[ageRange]
		subtotal := unitPrice * float64(count)
		calculated.TotalPrice += subtotal
		calculated.Details = append(calculated.Details, PriceDetail{
			AgeRange:  ageRange,
			Count:     count,
			UnitPrice: unitPrice,
			Subtotal:  subtotal,
		})
	}
	return calculated
}
