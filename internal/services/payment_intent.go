package services

import (
	"context"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type PaymentIntentService struct {
	api *client.API
}

func NewPaymentIntentService(secretKey string) *PaymentIntentService {
	return &PaymentIntentService{api: client.New(secretKey, nil)}
}

// CreateIntent opens a card payment intent for the given amount in cents and
// returns the client secret the frontend uses to complete the charge.
func (s *PaymentIntentService) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
