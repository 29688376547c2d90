package Quoter

import "testing"

func TestVariantsOfSameProductShareOneGroup(t *testing.T) {
	selection := selectionOf(map[AgeRange]int{Range29_33: 2})
	result := Quote(testCatalog(), CategoryPME2, selection)

	var ideal *PlanGroup
	for i := range result.Groups {
		if result.Groups[i].Operator == "Amhemed" && result.Groups[i].Name == "Ideal" {
			if ideal != nil {
				t.Fatal("Amhemed Ideal split across two groups")
			}
			ideal = &result.Groups[i]
		}
	}
	if ideal == nil {
		t.Fatal("Amhemed Ideal group missing")
	}
	if len(ideal.Variants) != 2 {
		t.Errorf("Amhemed Ideal has %d variants, want 2", len(ideal.Variants))
	}
}

func TestGroupPositionFollowsFirstVariant(t *testing.T) {
	plans := []CalculatedPlan{
		{Plan: Plan{ID: "a1", Operator: "Op A", Name: "One", RoomType: RoomWard}},
		{Plan: Plan{ID: "b1", Operator: "Op B", Name: "Two", RoomType: RoomWard}},
		{Plan: Plan{ID: "a2", Operator: "Op A", Name: "One", RoomType: RoomWard}},
	}

	groups := GroupVariants(plans)

	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Operator != "Op A" || groups[1].Operator != "Op B" {
		t.Error("appending a late variant must not move its group")
	}
	if len(groups[0].Variants) != 2 {
		t.Errorf("first group has %d variants, want 2", len(groups[0].Variants))
	}
}

func TestRoomTypeSplitsGroups(t *testing.T) {
	plans := []CalculatedPlan{
		{Plan: Plan{ID: "w", Operator: "Op", Name: "Same", RoomType: RoomWard}},
		{Plan: Plan{ID: "p", Operator: "Op", Name: "Same", RoomType: RoomPrivate}},
	}

	if groups := GroupVariants(plans); len(groups) != 2 {
		t.Errorf("ward and private variants grouped together: %d groups, want 2", len(groups))
	}
}

func TestGroupingIsExhaustive(t *testing.T) {
	// Property: every calculated plan lands in exactly one plan group, and
	// every plan group in exactly one operator group.
	selection := selectionOf(map[AgeRange]int{Range0_18: 1, Range39_43: 2})
	result := Quote(testCatalog(), CategoryPME2, selection)

	seen := make(map[string]int)
	for _, group := range result.Groups {
		for _, variant := range group.Variants {
			seen[variant.Plan.ID]++
		}
	}
	for _, calculated := range result.Plans {
		if seen[calculated.Plan.ID] != 1 {
			t.Errorf("plan %s appears %d times across plan groups, want exactly 1",
				calculated.Plan.ID, seen[calculated.Plan.ID])
		}
	}

	groupCount := 0
	for _, operator := range result.Operators {
		groupCount += len(operator.Groups)
		for _, group := range operator.Groups {
			if group.Operator != operator.Operator {
				t.Errorf("group %s/%s filed under operator %s", group.Operator, group.Name, operator.Operator)
			}
		}
	}
	if groupCount != len(result.Groups) {
		t.Errorf("%d groups across operators, want %d", groupCount, len(result.Groups))
	}
}

func TestOperatorMinPrice(t *testing.T) {
	groups := []PlanGroup{
		{Operator: "Op", Name: "A", Variants: []CalculatedPlan{
			{Plan: Plan{ID: "a1"}, TotalPrice: 320},
			{Plan: Plan{ID: "a2"}, TotalPrice: 280},
		}},
		{Operator: "Op", Name: "B", Variants: []CalculatedPlan{
			{Plan: Plan{ID: "b1"}, TotalPrice: 410},
		}},
	}

	operators := GroupByOperator(groups)

	if len(operators) != 1 {
		t.Fatalf("got %d operator groups, want 1", len(operators))
	}
	if got := operators[0].MinPrice(); got != 280 {
		t.Errorf("MinPrice = %.2f, want 280.00", got)
	}
}
