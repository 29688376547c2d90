package Controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"CotadorSaude/Models"
	"CotadorSaude/Quoter"

	"github.com/gin-gonic/gin"
	"github.com/go-pdf/fpdf"
)

// ExportComparisonPDF renders a side-by-side comparison of up to three plan
// variants from the current quote. Plans are picked by catalog id so the
// client never sends prices, only the selection that produced them.
func ExportComparisonPDF(c *gin.Context) {
	var input struct {
		QuoteInput
		PlanIDs []string `json:"plan_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.PlanIDs) == 0 || len(input.PlanIDs) > 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "compare between 1 and 3 plans"})
		return
	}

	catalog, err := Models.CatalogPlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := Quoter.Quote(catalog, Quoter.Category(input.Category), input.toSelection())

	var compared []Quoter.CalculatedPlan
	for _, id := range input.PlanIDs {
		for _, calculated := range result.Plans {
			if calculated.Plan.ID == id {
				compared = append(compared, calculated)
				break
			}
		}
	}
	if len(compared) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no selected plan is part of this quote"})
		return
	}

	buf, err := buildComparisonPDF(compared, result.TotalLives)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=comparativo.pdf")
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

func buildComparisonPDF(plans []Quoter.CalculatedPlan, totalLives int) (*bytes.Buffer, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	translator := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pageWidth, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	contentWidth := pageWidth - left - right
	colWidth := contentWidth / float64(len(plans)+1)

	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(contentWidth, 12, translator("Comparativo de Planos de Saúde"), "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(contentWidth, 7, translator(fmt.Sprintf("%d vidas - gerado em %s", totalLives, time.Now().Format("02/01/2006"))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	row := func(label string, bold bool, value func(Quoter.CalculatedPlan) string) {
		if bold {
			pdf.SetFont("Arial", "B", 10)
		} else {
			pdf.SetFont("Arial", "", 10)
		}
		pdf.CellFormat(colWidth, 8, translator(label), "1", 0, "L", false, 0, "")
		for _, plan := range plans {
			pdf.CellFormat(colWidth, 8, translator(value(plan)), "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.SetFillColor(230, 236, 245)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(colWidth, 9, "", "1", 0, "L", true, 0, "")
	for _, plan := range plans {
		header := fmt.Sprintf("%s %s", plan.Plan.Operator, plan.Plan.Name)
		pdf.CellFormat(colWidth, 9, translator(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	row("Total Mensal", true, func(p Quoter.CalculatedPlan) string {
		return fmt.Sprintf("R$ %.2f", p.TotalPrice)
	})
	row("Acomodação", false, func(p Quoter.CalculatedPlan) string {
		return string(p.Plan.RoomType)
	})
	row("Coparticipação", false, func(p Quoter.CalculatedPlan) string {
		return coparticipationLabel(p.Plan.Coparticipation)
	})
	row("Cobertura", false, func(p Quoter.CalculatedPlan) string {
		return p.Plan.Coverage
	})
	row("Rede Hospitalar", false, func(p Quoter.CalculatedPlan) string {
		return joinLimited(p.Plan.Hospitals, 3)
	})
	row("Carências", false, func(p Quoter.CalculatedPlan) string {
		return joinLimited(p.Plan.GracePeriods, 2)
	})

	// One row per active bracket with its subtotal per plan.
	for i, detail := range plans[0].Details {
		index := i
		label := fmt.Sprintf("Faixa %s (%dx)", detail.AgeRange, detail.Count)
		row(label, false, func(p Quoter.CalculatedPlan) string {
			if index >= len(p.Details) {
				return "-"
			}
			return fmt.Sprintf("R$ %.2f", p.Details[index].Subtotal)
		})
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render comparison pdf: %w", err)
	}
	return &buf, nil
}

func joinLimited(items []string, max int) string {
	if len(items) == 0 {
		return "-"
	}
	if len(items) <= max {
		out := items[0]
		for _, item := range items[1:] {
			out += ", " + item
		}
		return out
	}
	out := items[0]
	for _, item := range items[1:max] {
		out += ", " + item
	}
	return fmt.Sprintf("%s e mais %d", out, len(items)-max)
}
