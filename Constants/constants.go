package Constants

// WhatsappGoService is the local whatsapp-go bridge used for QR login and
// outbound messages.
const WhatsappGoService = "http://localhost:3000"

// AdminWhatsappPhone receives renewal requests from expired brokers.
const AdminWhatsappPhone = "5515991789707"

// GeminiModel is the generative model used by the plan advisor.
const GeminiModel = "gemini-2.5-flash"
