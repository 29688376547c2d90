package Quoter

// PlanGroup holds the coparticipation variants of one base product (same
// operator, name and room type). Position follows the rank of its first
// variant.
type PlanGroup struct {
	Operator string           `json:"operator"`
	Name     string           `json:"name"`
	RoomType RoomType         `json:"type"`
	Variants []CalculatedPlan `json:"variants"`
}

// OperatorGroup collects the product groups of one operator for the
// accordion summary view.
type OperatorGroup struct {
	Operator  string      `json:"operator"`
	LogoColor string      `json:"logo_color"`
	Groups    []PlanGroup `json:"groups"`
}

// MinPrice is the cheapest variant total across all of the operator's
// product groups. Zero when the group is somehow empty.
func (g OperatorGroup) MinPrice() float64 {
	min := 0.0
	first := true
	for _, group := range g.Groups {
		for _, variant := range group.Variants {
			if first || variant.TotalPrice < min {
				min = variant.TotalPrice
				first = false
			}
		}
	}
	return min
}

type groupKey struct {
	operator string
	name     string
	roomType RoomType
}

// GroupVariants merges ranked plans that are variants of the same product.
// A group's position is where its key is first seen; later variants append
// without moving the group. No cap on variants per group.
func GroupVariants(ranked []CalculatedPlan) []PlanGroup {
	var groups []PlanGroup
	index := make(map[groupKey]int, len(ranked))
	for _, calculated := range ranked {
		key := groupKey{
			operator: calculated.Plan.Operator,
			name:     calculated.Plan.Name,
			roomType: calculated.Plan.RoomType,
		}
		if i, ok := index[key]; ok {
			groups[i].Variants = append(groups[i].Variants, calculated)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, PlanGroup{
			Operator: calculated.Plan.Operator,
			Name:     calculated.Plan.Name,
			RoomType: calculated.Plan.RoomType,
			Variants: []CalculatedPlan{calculated},
		})
	}
	return groups
}

// GroupByOperator collects product groups under their operator, first seen
// first, matching the positioning rule of GroupVariants.
func GroupByOperator(planGroups []PlanGroup) []OperatorGroup {
	var operators []OperatorGroup
	index := make(map[string]int, len(planGroups))
	for _, group := range planGroups {
		if i, ok := index[group.Operator]; ok {
			operators[i].Groups = append(operators[i].Groups, group)
			continue
		}
		logoColor := ""
		if len(group.Variants) > 0 {
			logoColor = group.Variants[0].Plan.LogoColor
		}
		index[group.Operator] = len(operators)
		operators = append(operators, OperatorGroup{
			Operator:  group.Operator,
			LogoColor: logoColor,
			Groups:    []PlanGroup{group},
		})
	}
	return operators
}
