package Controllers

import (
	"fmt"
	"log"
	"net/http"

	"CotadorSaude/Models"
	"CotadorSaude/Quoter"

	"github.com/360EntSecGroup-Skylar/excelize"
	"github.com/gin-gonic/gin"
)

// ExportQuoteExcel recomputes the quote server-side and writes the price
// summary table, one row per plan variant in rank order.
func ExportQuoteExcel(c *gin.Context) {
	var input QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := Quoter.Category(input.Category)
	selection := input.toSelection()

	catalog, err := Models.CatalogPlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result := Quoter.Quote(catalog, category, selection)

	headers := map[string]string{
		"A1": "Operadora",
		"B1": "Plano",
		"C1": "Acomodação",
		"D1": "Coparticipação",
		"E1": "Vidas",
		"F1": "Total Mensal (R$)",
	}
	file := excelize.NewFile()
	sheet := "Cotação"
	file.NewSheet(sheet)
	file.DeleteSheet("Sheet1")
	for k, v := range headers {
		file.SetCellValue(sheet, k, v)
	}

	for i := 0; i < len(result.Plans); i++ {
		appendRowQuote(sheet, file, i, result.Plans, result.TotalLives)
	}

	var filename string = fmt.Sprintf("./Cotacao.xlsx")
	if err := file.SaveAs(filename); err != nil {
		log.Println(err)
	}
	c.File(filename)
}

func appendRowQuote(sheet string, file *excelize.File, index int, rows []Quoter.CalculatedPlan, totalLives int) (fileWriter *excelize.File) {
	rowCount := index + 2
	file.SetCellValue(sheet, fmt.Sprintf("A%v", rowCount), rows[index].Plan.Operator)
	file.SetCellValue(sheet, fmt.Sprintf("B%v", rowCount), rows[index].Plan.Name)
	file.SetCellValue(sheet, fmt.Sprintf("C%v", rowCount), string(rows[index].Plan.RoomType))
	file.SetCellValue(sheet, fmt.Sprintf("D%v", rowCount), coparticipationLabel(rows[index].Plan.Coparticipation))
	file.SetCellValue(sheet, fmt.Sprintf("E%v", rowCount), totalLives)
	file.SetCellValue(sheet, fmt.Sprintf("F%v", rowCount), rows[index].TotalPrice)
	return file
}

func coparticipationLabel(kind Quoter.Coparticipation) string {
	switch kind {
	case Quoter.CoparticipationFull:
		return "Com Coparticipação"
	case Quoter.CoparticipationPartial:
		return "Coparticipação Parcial"
	default:
		return "Sem Coparticipação"
	}
}
