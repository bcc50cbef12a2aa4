package payment

import (
	"context"
	"fmt"
	"math"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/runtix/runtix/internal/pkg/env"
)

// Session is the result of creating a transaction with the gateway: the Snap
// token plus the hosted payment page URL the client is redirected to.
type Session struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

// Gateway creates transactions with the external payment gateway. Treated as
// opaque; failures surface wrapped in ErrGatewayUnavailable.
type Gateway interface {
	CreateTransaction(ctx context.Context, orderID string, grossAmount float64, customerName, customerEmail string) (*Session, error)
}

type midtransGateway struct {
	client snap.Client
}

// NewMidtransGateway builds a Snap gateway client from explicit credentials.
func NewMidtransGateway(serverKey string, production bool) Gateway {
	envType := midtrans.Sandbox
	if production {
		envType = midtrans.Production
	}

	g := &midtransGateway{}
	g.client.New(serverKey, envType)
	return g
}

// NewMidtransGatewayFromEnv builds the gateway from MIDTRANS_SERVER_KEY and
// IS_PRODUCTION.
func NewMidtransGatewayFromEnv() Gateway {
	return NewMidtransGateway(
		env.MustGetEnv("MIDTRANS_SERVER_KEY"),
		env.GetEnv("IS_PRODUCTION", "false") == "true",
	)
}

func (g *midtransGateway) CreateTransaction(ctx context.Context, orderID string, grossAmount float64, customerName, customerEmail string) (*Session, error) {
	_ = ctx // the snap client carries its own HTTP timeout

	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(math.Round(grossAmount)),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customerName,
			Email: customerEmail,
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
	}

	resp, mErr := g.client.CreateTransaction(req)
	if mErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, mErr)
	}

	return &Session{Token: resp.Token, RedirectURL: resp.RedirectURL}, nil
}
