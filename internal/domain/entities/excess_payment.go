package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the outcome of an excess-fee charge.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// ExcessPayment records the excess/deductible fee charged to the customer
// once a job finishes.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - Lookups by job_id query the job_id-index GSI.
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original Mercado Pago body for audit.
//   - ProviderPayload is the parsed form, handy for querying/debugging.
type ExcessPayment struct {
	ID     string        `json:"id"`
	JobID  string        `json:"job_id"`
	Amount float64       `json:"amount"`
	Date   time.Time     `json:"date"`
	Status PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
