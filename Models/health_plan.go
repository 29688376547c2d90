package Models

import (
	"fmt"
	"os"

	"CotadorSaude/Quoter"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// HealthPlan is one catalog row: a single coparticipation variant of a
// product. Nested reference data is stored as JSON columns; the row converts
// to a Quoter.Plan before any calculation.
type HealthPlan struct {
	gorm.Model
	ExternalID      string             `gorm:"size:64;uniqueIndex" json:"external_id"`
	Name            string             `gorm:"size:255" json:"name"`
	Operator        string             `gorm:"size:255" json:"operator"`
	RoomType        string             `gorm:"size:30" json:"type"`
	Coparticipation string             `gorm:"size:20" json:"coparticipation_type"`
	LogoColor       string             `gorm:"size:60" json:"logo_color"`
	Prices          map[string]float64 `gorm:"serializer:json" json:"prices"`
	Categories      []string           `gorm:"serializer:json" json:"categories"`
	Hospitals       []string           `gorm:"serializer:json" json:"hospitals"`
	Coverage        string             `json:"coverage"`
	GracePeriods    []string           `gorm:"serializer:json" json:"grace_periods"`
	CopayFees       []CopayFee         `gorm:"serializer:json" json:"copay_fees"`
}

type CopayFee struct {
	Service string `json:"service" yaml:"service"`
	Value   string `json:"value" yaml:"value"`
}

func (plan *HealthPlan) ToQuoterPlan() Quoter.Plan {
	prices := make(map[Quoter.AgeRange]float64, len(plan.Prices))
	for ageRange, price := range plan.Prices {
		prices[Quoter.AgeRange(ageRange)] = price
	}
	categories := make([]Quoter.Category, 0, len(plan.Categories))
	for _, category := range plan.Categories {
		categories = append(categories, Quoter.Category(category))
	}
	copayFees := make([]Quoter.CopayFee, 0, len(plan.CopayFees))
	for _, fee := range plan.CopayFees {
		copayFees = append(copayFees, Quoter.CopayFee{Service: fee.Service, Value: fee.Value})
	}
	return Quoter.Plan{
		ID:              plan.ExternalID,
		Name:            plan.Name,
		Operator:        plan.Operator,
		RoomType:        Quoter.RoomType(plan.RoomType),
		Coparticipation: Quoter.Coparticipation(plan.Coparticipation),
		LogoColor:       plan.LogoColor,
		Prices:          prices,
		Categories:      categories,
		Hospitals:       plan.Hospitals,
		Coverage:        plan.Coverage,
		GracePeriods:    plan.GracePeriods,
		CopayFees:       copayFees,
	}
}

// CatalogPlans loads the whole catalog in primary-key order, which is the
// order the seed file lists plans in.
func CatalogPlans() ([]Quoter.Plan, error) {
	var rows []HealthPlan
	if err := DB.Model(&HealthPlan{}).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	plans := make([]Quoter.Plan, 0, len(rows))
	for i := range rows {
		plans = append(plans, rows[i].ToQuoterPlan())
	}
	return plans, nil
}

type seedFile struct {
	Plans []struct {
		ID              string             `yaml:"id"`
		Name            string             `yaml:"name"`
		Operator        string             `yaml:"operator"`
		RoomType        string             `yaml:"type"`
		Coparticipation string             `yaml:"coparticipation"`
		LogoColor       string             `yaml:"logo_color"`
		Prices          map[string]float64 `yaml:"prices"`
		Categories      []string           `yaml:"categories"`
		Hospitals       []string           `yaml:"hospitals"`
		Coverage        string             `yaml:"coverage"`
		GracePeriods    []string           `yaml:"grace_periods"`
		CopayFees       []CopayFee         `yaml:"copay_fees"`
	} `yaml:"plans"`
}

// SeedCatalog loads the plan seed file and inserts any plan the catalog does
// not know yet. Existing rows are left alone so admin edits survive restarts.
func SeedCatalog(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	for _, entry := range seed.Plans {
		var count int64
		if err := DB.Model(&HealthPlan{}).Where("external_id = ?", entry.ID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		plan := HealthPlan{
			ExternalID:      entry.ID,
			Name:            entry.Name,
			Operator:        entry.Operator,
			RoomType:        entry.RoomType,
			Coparticipation: entry.Coparticipation,
			LogoColor:       entry.LogoColor,
			Prices:          entry.Prices,
			Categories:      entry.Categories,
			Hospitals:       entry.Hospitals,
			Coverage:        entry.Coverage,
			GracePeriods:    entry.GracePeriods,
			CopayFees:       entry.CopayFees,
		}
		if err := DB.Create(&plan).Error; err != nil {
			return fmt.Errorf("failed to seed plan %s: %w", entry.ID, err)
		}
	}
	return nil
}
