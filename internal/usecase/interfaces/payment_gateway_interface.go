package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago)
// used to charge the excess fee. The raw provider response is persisted for
// traceability.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
