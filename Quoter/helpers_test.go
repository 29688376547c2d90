package Quoter

// Shared fixtures for the engine tests. The catalog mirrors the real one in
// shape: every operator tier of the ranking table represented, products with
// two coparticipation variants, one plan with a price-table gap.

func testPrices(base float64) map[AgeRange]float64 {
	prices := make(map[AgeRange]float64, len(AgeRanges))
	step := base
	for _, ageRange := range AgeRanges {
		prices[ageRange] = step
		step += base / 4
	}
	return prices
}

func testCatalog() []Plan {
	allCategories := []Category{CategoryPF, CategoryPME1, CategoryPME2, CategoryPME30}
	pmeOnly := []Category{CategoryPME1, CategoryPME2, CategoryPME30}

	return []Plan{
		{
			ID: "unimed-basico", Operator: "Unimed Sorocaba", Name: "Básico",
			RoomType: RoomWard, Coparticipation: CoparticipationNone,
			LogoColor: "bg-green-700", Prices: testPrices(120),
			Categories: pmeOnly,
		},
		{
			ID: "amhemed-ideal-cop", Operator: "Amhemed", Name: "Ideal",
			RoomType: RoomWard, Coparticipation: CoparticipationFull,
			LogoColor: "bg-sky-600", Prices: testPrices(190),
			Categories: allCategories,
		},
		{
			ID: "amhemed-ideal", Operator: "Amhemed", Name: "Ideal",
			RoomType: RoomWard, Coparticipation: CoparticipationPartial,
			LogoColor: "bg-sky-600", Prices: testPrices(230),
			Categories: allCategories,
		},
		{
			ID: "fenix-essencial", Operator: "Fênix Medical", Name: "Essencial",
			RoomType: RoomWard, Coparticipation: CoparticipationFull,
			LogoColor: "bg-orange-600", Prices: testPrices(95),
			Categories: allCategories,
		},
		{
			ID: "gndi-nosso", Operator: "GNDI NotreDame", Name: "Nosso Plano",
			RoomType: RoomWard, Coparticipation: CoparticipationFull,
			LogoColor: "bg-blue-800", Prices: testPrices(110),
			Categories: allCategories,
		},
		{
			ID: "gndi-400", Operator: "GNDI NotreDame", Name: "Premium 400",
			RoomType: RoomPrivate, Coparticipation: CoparticipationNone,
			LogoColor: "bg-blue-800", Prices: testPrices(310),
			Categories: pmeOnly,
		},
		{
			ID: "eva-smart", Operator: "Eva Saúde", Name: "Smart",
			RoomType: RoomWard, Coparticipation: CoparticipationFull,
			LogoColor: "bg-purple-600", Prices: testPrices(105),
			Categories: pmeOnly,
		},
		{
			// Deliberate gap: no 59+ price.
			ID: "amil-facil", Operator: "Amil", Name: "Fácil S80",
			RoomType: RoomWard, Coparticipation: CoparticipationFull,
			LogoColor: "bg-indigo-700",
			Prices: map[AgeRange]float64{
				Range0_18:  140,
				Range19_23: 165,
				Range24_28: 188,
			},
			Categories: pmeOnly,
		},
	}
}

func selectionOf(counts map[AgeRange]int) Selection {
	selection := NewSelection()
	for ageRange, count := range counts {
		selection[ageRange] = count
	}
	return selection
}
