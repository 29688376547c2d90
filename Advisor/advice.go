package Advisor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"CotadorSaude/Constants"
	"CotadorSaude/Models"
	"CotadorSaude/Quoter"

	"github.com/gin-gonic/gin"
)

const fallbackAnswer = "Desculpe, estou com dificuldades para analisar os planos agora. Tente novamente em instantes."

type chatTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type adviceInput struct {
	Query     string         `json:"query" binding:"required"`
	Category  string         `json:"category"`
	Selection map[string]int `json:"selection"`
	History   []chatTurn     `json:"history"`
}

// GetAdvice answers a free-text question about the current quote. The model
// only sees a read-only snapshot (selection summary + top 3 plans); its
// answer never feeds back into the calculation. Failures degrade to a
// friendly fallback, never an error status.
func GetAdvice(c *gin.Context) {
	var input adviceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	selection := Quoter.NewSelection()
	for ageRange, count := range input.Selection {
		selection[Quoter.AgeRange(ageRange)] = count
	}

	var topPlans []Quoter.CalculatedPlan
	catalog, err := Models.CatalogPlans()
	if err == nil {
		result := Quoter.Quote(catalog, Quoter.Category(input.Category), selection)
		if len(result.Plans) > 3 {
			topPlans = result.Plans[:3]
		} else {
			topPlans = result.Plans
		}
	} else {
		log.Println(err)
	}

	answer, err := askGemini(input.Query, systemInstruction(selection, topPlans), input.History)
	if err != nil {
		log.Println("advisor:", err)
		c.JSON(http.StatusOK, gin.H{"answer": fallbackAnswer})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

func systemInstruction(selection Quoter.Selection, topPlans []Quoter.CalculatedPlan) string {
	var summary []string
	for _, ageRange := range Quoter.AgeRanges {
		if count := selection[ageRange]; count > 0 {
			summary = append(summary, fmt.Sprintf("%dx pessoas (%s anos)", count, ageRange))
		}
	}

	var plans []string
	for _, p := range topPlans {
		typeLabel := ""
		if p.Plan.RoomType != Quoter.RoomWard {
			typeLabel = fmt.Sprintf(" (%s)", p.Plan.RoomType)
		}
		plans = append(plans, fmt.Sprintf("- %s %s%s: R$ %.2f", p.Plan.Operator, p.Plan.Name, typeLabel, p.TotalPrice))
	}

	return fmt.Sprintf(`Você é um consultor especialista em planos de saúde, focado na região de Sorocaba - SP.

Contexto atual do usuário:
- Perfil Familiar/Empresarial: %s
- Planos disponíveis para o tipo de contratação selecionado (PF ou PJ) - Top 3 cotados:
%s

Objetivo:
Ajudar o usuário a escolher o melhor plano baseando-se em custo-benefício, rede credenciada (Unimed, Amil, GNDI, Hapvida, Fênix, Eva, Amhemed) e necessidades específicas.

Regras de Negócio Importantes:
1. Amhemed e Fênix costumam ser opções mais econômicas.
2. Unimed Sorocaba é referência em rede credenciada, mas costuma ser mais caro.
3. GNDI (Notredame) tem rede própria forte.
4. Se for PJ (CNPJ/MEI), destaque que os preços costumam ser menores que Pessoa Física.
5. Para grupos grandes (+30 vidas), mencione a possibilidade de negociação especial.

Se o usuário perguntar "qual o melhor", pondere entre preço e qualidade.
Seja conciso, amigável e profissional. Responda em Markdown simples.`,
		strings.Join(summary, ", "), strings.Join(plans, "\n"))
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func askGemini(query, instruction string, history []chatTurn) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	request := geminiRequest{
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: instruction}}},
	}
	for _, turn := range history {
		role := turn.Role
		if role != "user" {
			role = "model"
		}
		request.Contents = append(request.Contents, geminiContent{Role: role, Parts: []geminiPart{{Text: turn.Text}}})
	}
	request.Contents = append(request.Contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: query}}})

	data, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		Constants.GeminiModel, apiKey)

	client := &http.Client{Timeout: 30 * time.Second}
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(data))
	if err != nil {
		return "", err
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini returned %d: %s", res.StatusCode, string(body))
	}

	var output geminiResponse
	if err := json.Unmarshal(body, &output); err != nil {
		return "", err
	}
	if len(output.Candidates) == 0 || len(output.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return output.Candidates[0].Content.Parts[0].Text, nil
}
