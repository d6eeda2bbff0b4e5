package messaging

import (
	"context"
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Sender envia uma mensagem de WhatsApp e devolve o id do provedor.
type Sender interface {
	Enabled() bool
	Send(ctx context.Context, phone, body string) (string, error)
}

type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioSender(accountSID, authToken, whatsappNumber string) *TwilioSender {
	if accountSID == "" || authToken == "" || whatsappNumber == "" {
		log.Println("[messaging] twilio not configured, automations will only build links")
		return &TwilioSender{}
	}

	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: "whatsapp:+" + Digits(whatsappNumber),
	}
}

func (s *TwilioSender) Enabled() bool {
	return s != nil && s.client != nil
}

func (s *TwilioSender) Send(_ context.Context, phone, body string) (string, error) {
	if !s.Enabled() {
		return "", fmt.Errorf("twilio not configured")
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("whatsapp:+" + Digits(phone))
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if resp.Sid != nil {
		return *resp.Sid, nil
	}
	return "", nil
}
