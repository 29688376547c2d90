package Quoter

import (
	"strings"
	"testing"
)

func TestFilterKeepsOnlyCategoryEligiblePlans(t *testing.T) {
	catalog := testCatalog()
	selection := selectionOf(map[AgeRange]int{Range29_33: 1})

	eligible := FilterEligible(catalog, CategoryPF, selection)

	for _, plan := range eligible {
		if !plan.EligibleFor(CategoryPF) {
			t.Errorf("plan %s is not PF-eligible but passed the filter", plan.ID)
		}
	}
	// PME-only plans must be gone.
	for _, plan := range eligible {
		if plan.ID == "unimed-basico" || plan.ID == "eva-smart" {
			t.Errorf("PME-only plan %s leaked into a PF quote", plan.ID)
		}
	}
}

func TestFilterPreservesCatalogOrder(t *testing.T) {
	catalog := testCatalog()
	selection := selectionOf(map[AgeRange]int{Range29_33: 2})

	eligible := FilterEligible(catalog, CategoryPME2, selection)

	lastIndex := -1
	for _, plan := range eligible {
		index := -1
		for i, source := range catalog {
			if source.ID == plan.ID {
				index = i
				break
			}
		}
		if index < lastIndex {
			t.Fatalf("filter reordered catalog: %s came after a later plan", plan.ID)
		}
		lastIndex = index
	}
}

func TestPFSoloMinorExcludesFenix(t *testing.T) {
	catalog := testCatalog()
	selection := selectionOf(map[AgeRange]int{Range0_18: 1})

	eligible := FilterEligible(catalog, CategoryPF, selection)

	if len(eligible) == 0 {
		t.Fatal("solo-minor PF quote must keep non-Fênix operators")
	}
	for _, plan := range eligible {
		op := strings.ToLower(plan.Operator)
		if strings.Contains(op, "fênix") || strings.Contains(op, "fenix") {
			t.Errorf("Fênix plan %s offered to a PF solo-minor selection", plan.ID)
		}
	}
}

func TestPFWithAdultKeepsFenix(t *testing.T) {
	catalog := testCatalog()
	selection := selectionOf(map[AgeRange]int{Range0_18: 1, Range34_38: 1})

	eligible := FilterEligible(catalog, CategoryPF, selection)

	found := false
	for _, plan := range eligible {
		if plan.ID == "fenix-essencial" {
			found = true
		}
	}
	if !found {
		t.Error("Fênix must stay available for PF once an adult is selected")
	}
}

func TestBusinessSoloMinorDoesNotFilterOperators(t *testing.T) {
	// The business-tier solo-minor rule is a hard block upstream, not an
	// operator exclusion here.
	catalog := testCatalog()
	selection := selectionOf(map[AgeRange]int{Range0_18: 2})

	eligible := FilterEligible(catalog, CategoryPME2, selection)

	found := false
	for _, plan := range eligible {
		if plan.ID == "fenix-essencial" {
			found = true
		}
	}
	if !found {
		t.Error("PME filter must not apply the PF-only Fênix exclusion")
	}
}

func TestUnsetCategoryMatchesNothing(t *testing.T) {
	catalog := testCatalog()
	selection := selectionOf(map[AgeRange]int{Range29_33: 1})

	if got := FilterEligible(catalog, "", selection); len(got) != 0 {
		t.Errorf("unset category returned %d plans, want 0", len(got))
	}
}
