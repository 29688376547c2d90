package Quoter

import "testing"

func TestComputePriceSumsActiveBrackets(t *testing.T) {
	plan := Plan{
		ID: "p", Operator: "Op", Name: "N",
		Prices: map[AgeRange]float64{
			Range0_18:  100,
			Range29_33: 250,
		},
	}
	selection := selectionOf(map[AgeRange]int{Range0_18: 2, Range29_33: 1})

	calculated := ComputePrice(plan, selection)

	if calculated.TotalPrice != 450 {
		t.Errorf("TotalPrice = %.2f, want 450.00", calculated.TotalPrice)
	}
	if len(calculated.Details) != 2 {
		t.Fatalf("got %d detail rows, want 2", len(calculated.Details))
	}
}

func TestDetailsSumToTotal(t *testing.T) {
	// Property: for every plan and selection, the detail subtotals sum to
	// the plan total exactly.
	selection := selectionOf(map[AgeRange]int{
		Range0_18:   1,
		Range24_28:  2,
		Range44_48:  1,
		Range59Plus: 3,
	})

	for _, plan := range testCatalog() {
		calculated := ComputePrice(plan, selection)
		sum := 0.0
		for _, detail := range calculated.Details {
			sum += detail.Subtotal
			if detail.Subtotal != detail.UnitPrice*float64(detail.Count) {
				t.Errorf("plan %s bracket %s: subtotal %.2f != %.2f * %d",
					plan.ID, detail.AgeRange, detail.Subtotal, detail.UnitPrice, detail.Count)
			}
		}
		if sum != calculated.TotalPrice {
			t.Errorf("plan %s: details sum %.2f != total %.2f", plan.ID, sum, calculated.TotalPrice)
		}
	}
}

func TestMissingBracketPricedAtZero(t *testing.T) {
	// A catalog gap must not drop the plan or panic: the bracket is charged
	// at zero and still shows up in the breakdown.
	plan := Plan{
		ID: "gappy", Operator: "Amil", Name: "Fácil",
		Prices: map[AgeRange]float64{Range0_18: 140},
	}
	selection := selectionOf(map[AgeRange]int{Range59Plus: 2})

	calculated := ComputePrice(plan, selection)

	if len(calculated.Details) != 1 {
		t.Fatalf("got %d detail rows, want 1", len(calculated.Details))
	}
	detail := calculated.Details[0]
	if detail.AgeRange != Range59Plus || detail.Count != 2 || detail.UnitPrice != 0 || detail.Subtotal != 0 {
		t.Errorf("detail = %+v, want {59+ 2 0 0}", detail)
	}
	if calculated.TotalPrice != 0 {
		t.Errorf("TotalPrice = %.2f, want 0", calculated.TotalPrice)
	}
}

func TestDetailsFollowBracketOrder(t *testing.T) {
	plan := testCatalog()[0]
	selection := selectionOf(map[AgeRange]int{
		Range59Plus: 1,
		Range0_18:   1,
		Range34_38:  1,
	})

	calculated := ComputePrice(plan, selection)

	want := []AgeRange{Range0_18, Range34_38, Range59Plus}
	if len(calculated.Details) != len(want) {
		t.Fatalf("got %d detail rows, want %d", len(calculated.Details), len(want))
	}
	for i, detail := range calculated.Details {
		if detail.AgeRange != want[i] {
			t.Errorf("detail[%d] = %s, want %s", i, detail.AgeRange, want[i])
		}
	}
}
