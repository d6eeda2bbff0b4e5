package payments

import (
	"context"
	"fmt"
	"log"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/BruksfildServices01/salon-manager/internal/httperr"
	"github.com/BruksfildServices01/salon-manager/internal/models"
)

type Link struct {
	PreferenceID string `json:"preference_id"`
	URL          string `json:"url"`
}

// MercadoPago cria preferências de checkout para cobranças com cartão.
type MercadoPago struct {
	client preference.Client
}

func NewMercadoPago(accessToken string) *MercadoPago {
	if accessToken == "" {
		log.Println("[payments] MERCADOPAGO_ACCESS_TOKEN not set, payment links disabled")
		return &MercadoPago{}
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Printf("[payments] invalid mercadopago config: %v", err)
		return &MercadoPago{}
	}

	return &MercadoPago{client: preference.NewClient(cfg)}
}

func (m *MercadoPago) Enabled() bool {
	return m != nil && m.client != nil
}

func (m *MercadoPago) CreateLink(ctx context.Context, tx *models.Transaction) (*Link, error) {
	if !m.Enabled() {
		return nil, httperr.ErrBusiness("payments_disabled")
	}

	title := tx.Description
	if title == "" {
		title = "Serviço " + tx.Date
	}

	req := preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         tx.ID,
				Title:      title,
				Quantity:   1,
				UnitPrice:  tx.Amount.InexactFloat64(),
				CurrencyID: "EUR",
			},
		},
		ExternalReference: tx.ID,
	}

	res, err := m.client.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("mercadopago preference: %w", err)
	}

	return &Link{PreferenceID: res.ID, URL: res.InitPoint}, nil
}
