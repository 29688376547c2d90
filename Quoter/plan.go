package Quoter

// Category is the contracting category a quote is made for. The zero value
// matches no plan, so an unset category quotes nothing.
type Category string

const (
	CategoryPF    Category = "PF"     // individual (CPF)
	CategoryPME1  Category = "PME_1"  // business, single life
	CategoryPME2  Category = "PME_2"  // business, 2-29 lives
	CategoryPME30 Category = "PME_30" // business, 30+ lives (references the 2-29 table)
)

func (c Category) IsPME() bool {
	switch c {
	case CategoryPME1, CategoryPME2, CategoryPME30:
		return true
	}
	return false
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryPF, CategoryPME1, CategoryPME2, CategoryPME30:
		return true
	}
	return false
}

// Coparticipation is the cost-sharing scheme of a plan variant.
type Coparticipation string

const (
	CoparticipationFull    Coparticipation = "full"    // fee on every service
	CoparticipationPartial Coparticipation = "partial" // fee on therapy services only
	CoparticipationNone    Coparticipation = "none"
)

// RoomType is the hospital accommodation tier of a plan.
type RoomType string

const (
	RoomWard    RoomType = "Enfermaria"
	RoomPrivate RoomType = "Apartamento"
)

type CopayFee struct {
	Service string `json:"service"`
	Value   string `json:"value"`
}

// Plan is one catalog entry: a single coparticipation variant of a product.
// Hospitals, coverage, grace periods and copay fees are display metadata the
// engine passes through untouched.
type Plan struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Operator        string               `json:"operator"`
	RoomType        RoomType             `json:"type"`
	Coparticipation Coparticipation      `json:"coparticipation_type"`
	LogoColor       string               `json:"logo_color"`
	Prices          map[AgeRange]float64 `json:"prices"`
	Categories      []Category           `json:"categories"`
	Hospitals       []string             `json:"hospitals"`
	Coverage        string               `json:"coverage"`
	GracePeriods    []string             `json:"grace_periods"`
	CopayFees       []CopayFee           `json:"copay_fees"`
}

// EligibleFor reports whether the plan may be quoted for the category.
func (p Plan) EligibleFor(category Category) bool {
	for _, c := range p.Categories {
		if c == category {
			return true
		}
	}
	return false
}
