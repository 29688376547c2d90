package Controllers

import (
	"net/http"

	"CotadorSaude/Models"
	"CotadorSaude/Quoter"

	"github.com/gin-gonic/gin"
)

type QuoteInput struct {
	Category  string         `json:"category" binding:"required"`
	Selection map[string]int `json:"selection" binding:"required"`
}

func (input QuoteInput) toSelection() Quoter.Selection {
	selection := Quoter.NewSelection()
	for ageRange, count := range input.Selection {
		if count < 0 {
			count = 0
		}
		selection[Quoter.AgeRange(ageRange)] = count
	}
	return selection
}

type operatorGroupOutput struct {
	Quoter.OperatorGroup
	MinPrice float64 `json:"min_price"`
}

// CalculateQuote runs the full quoting pipeline for the caller's bracket
// selection. Contracting-rule violations come back as 422 with the block
// reason so the client can show the matching warning card.
func CalculateQuote(c *gin.Context) {
	var input QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := Quoter.Category(input.Category)
	if !category.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown category"})
		return
	}

	selection := input.toSelection()

	if block := Quoter.Validate(category, selection); block != Quoter.BlockNone {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "selection cannot advance", "block": block})
		return
	}

	catalog, err := Models.CatalogPlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := Quoter.Quote(catalog, category, selection)

	operators := make([]operatorGroupOutput, 0, len(result.Operators))
	for _, group := range result.Operators {
		operators = append(operators, operatorGroupOutput{OperatorGroup: group, MinPrice: group.MinPrice()})
	}

	c.JSON(http.StatusOK, gin.H{
		"plans":            result.Plans,
		"groups":           result.Groups,
		"operators":        operators,
		"total_lives":      result.TotalLives,
		"is_solo_minor":    selection.IsSoloMinor(),
		"large_group_note": category == Quoter.CategoryPME30,
	})
}

// FetchCatalog returns the raw catalog for a category, for the plan details
// modal. An empty category returns nothing rather than erroring.
func FetchCatalog(c *gin.Context) {
	category := Quoter.Category(c.Query("category"))

	catalog, err := Models.CatalogPlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	eligible := Quoter.FilterEligible(catalog, category, Quoter.NewSelection())
	c.JSON(http.StatusOK, eligible)
}
