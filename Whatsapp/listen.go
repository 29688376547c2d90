package Whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"

	"CotadorSaude/Constants"
	"CotadorSaude/Models"
	"CotadorSaude/Quoter"

	"github.com/gin-gonic/gin"
	whatsapp_chatbot_golang "github.com/green-api/whatsapp-chatbot-golang"
)

func Listen() {
	bot := whatsapp_chatbot_golang.NewBot(os.Getenv("GREEN_API_INSTANCE"), os.Getenv("GREEN_API_TOKEN"))

	bot.SetStartScene(StartScene{})

	bot.StartReceivingNotifications()
}

type StartScene struct {
}

// Start replies to inbound WhatsApp messages: "cotar" gets the per-operator
// starting prices for one adult, anything else gets a short usage hint.
func (s StartScene) Start(bot *whatsapp_chatbot_golang.Bot) {
	bot.IncomingMessageHandler(func(message *whatsapp_chatbot_golang.Notification) {
		text, _ := message.Text()
		fmt.Println(text)
		if strings.Contains(strings.ToLower(text), "cotar") {
			message.AnswerWithText(quickQuoteSummary())
			return
		}
		message.AnswerWithText("Olá! Envie *cotar* para ver os valores iniciais por operadora, ou acesse o cotador completo.")
	})
}

// quickQuoteSummary quotes one adult (29-33, PF) and lists each operator's
// cheapest option.
func quickQuoteSummary() string {
	catalog, err := Models.CatalogPlans()
	if err != nil {
		log.Println(err)
		return "Não consegui consultar a tabela agora, tente novamente em instantes."
	}

	selection := Quoter.NewSelection()
	selection[Quoter.Range29_33] = 1
	result := Quoter.Quote(catalog, Quoter.CategoryPF, selection)

	if len(result.Operators) == 0 {
		return "Nenhum plano disponível no momento."
	}

	var b strings.Builder
	b.WriteString("*Planos a partir de (1 vida, PF):*\n")
	for _, group := range result.Operators {
		b.WriteString(fmt.Sprintf("- %s: R$ %.2f\n", group.Operator, group.MinPrice()))
	}
	b.WriteString("\nPara uma cotação completa por faixa etária, acesse o cotador.")
	return b.String()
}

func CheckLogin(c *gin.Context) {
	client := &http.Client{}
	method := "GET"

	url := Constants.WhatsappGoService + "/app/devices"
	req, err := http.NewRequest(method, url, nil)

	if err != nil {
		fmt.Println(err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		fmt.Println(err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
		return
	}
	var output struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Results []struct {
			Name   string `json:"name"`
			Device string `json:"device"`
		}
	}
	if err = json.Unmarshal(body, &output); err != nil {
		log.Println(err)
		return
	}

	if len(output.Results) == 0 {
		fmt.Println(output)
		c.JSON(http.StatusOK, gin.H{"message": "Not Logged In"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged In"})
}

func GetQRCode(c *gin.Context) {
	client := &http.Client{}
	method := "GET"

	urlLogin := Constants.WhatsappGoService + "/app/login"
	req, err := http.NewRequest(method, urlLogin, nil)

	if err != nil {
		fmt.Println(err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		fmt.Println(err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
	}

	var output struct {
		Results struct {
			QRLink string `json:"qr_link"`
		} `json:"results"`
	}

	if err = json.Unmarshal(body, &output); err != nil {
		log.Println(err)
	}

	req, err = http.NewRequest(method, output.Results.QRLink, nil)

	if err != nil {
		fmt.Println(err)
	}
	req.Header.Add("Content-Type", "application/json")

	res, err = client.Do(req)
	if err != nil {
		fmt.Println(err)
	}
	defer res.Body.Close()

	body, err = io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
	}
	c.Header("Content-Disposition", "attachment; filename=qr.png")
	c.Data(http.StatusOK, "application/octet-stream", body)
}

func SendMessage(phone, message string) error {
	client := &http.Client{}
	method := "POST"

	urlSend := Constants.WhatsappGoService + "/send/message"
	payload := map[string]string{"phone": phone, "message": message}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(method, urlSend, bytes.NewBuffer(data))

	if err != nil {
		fmt.Println(err)
		return err
	}
	req.Header.Add("Content-Type", "application/json")

	res, err := client.Do(req)
	if err != nil {
		fmt.Println(err)
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		fmt.Println(err)
		return err
	}
	fmt.Println("response Body:", string(body))
	return nil
}
