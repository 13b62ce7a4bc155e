package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway charges the excess fee of a finished repair job. The use
// case pins transaction_amount and external_reference (the job id) into the
// payload before it reaches this gateway; everything below is provider
// plumbing and log correlation.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isGatewayMockEnabled() {
		log.Printf("[excess-payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[excess-payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[excess-payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[excess-payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error) {
	if g != nil && g.mockMode {
		return g.mockCreate(requestPayload)
	}

	if g == nil || g.client == nil {
		log.Printf("[excess-payment][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	jobRef := jobReference(requestPayload)
	log.Printf("[excess-payment][gateway] create start job=%s payload_len=%d", jobRef, len(requestPayload))

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[excess-payment][gateway] payload unmarshal failed job=%s err=%v", jobRef, err)
		return "", "", nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[excess-payment][gateway] sdk create failed job=%s err=%v", jobRef, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[excess-payment][gateway] response marshal failed job=%s err=%v", jobRef, err)
		return "", "", nil, err
	}
	log.Printf("[excess-payment][gateway] create success job=%s provider_payment_id=%d provider_status=%s", jobRef, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}

// mockCreate approves the charge locally. The enriched payload is echoed back
// into the response so the persisted audit record still carries the job's
// external_reference and excess fee amount.
func (g *MercadoPagoGateway) mockCreate(requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	jobRef := jobReference(requestPayload)
	log.Printf("[excess-payment][gateway] mock create start job=%s payload_len=%d", jobRef, len(requestPayload))

	resp := map[string]any{}
	if len(requestPayload) > 0 && json.Valid(requestPayload) {
		if err := json.Unmarshal(requestPayload, &resp); err != nil {
			resp = map[string]any{"request_payload_raw": string(requestPayload)}
		}
	}

	id := "mock-" + uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	if _, ok := resp["date_created"]; !ok {
		resp["date_created"] = now
	}
	if _, ok := resp["date_approved"]; !ok {
		resp["date_approved"] = now
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[excess-payment][gateway] mock response marshal failed job=%s err=%v", jobRef, err)
		return "", "", nil, err
	}

	log.Printf("[excess-payment][gateway] mock create success job=%s provider_payment_id=%s provider_status=approved", jobRef, id)
	return id, "approved", b, nil
}

func isGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

// jobReference pulls external_reference out of the enriched payload for log
// correlation. The use case sets it to the job id.
func jobReference(payload json.RawMessage) string {
	var ref struct {
		ExternalReference string `json:"external_reference"`
	}
	if err := json.Unmarshal(payload, &ref); err != nil {
		return ""
	}
	return ref.ExternalReference
}
