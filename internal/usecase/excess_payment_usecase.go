package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase/interfaces"
)

var (
	ErrExcessPaymentNotFound      = errors.New("excess payment not found")
	ErrJobNotFinished             = errors.New("job not finished")
	ErrNoExcessFee                = errors.New("job has no excess fee")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// IExcessPaymentUseCase charges the excess/deductible fee of a finished job
// through the payment gateway and keeps the provider response on record.
type IExcessPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, jobID string, payload json.RawMessage) (entities.ExcessPayment, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.ExcessPayment, error)
}

type ExcessPaymentUseCase struct {
	payments interfaces.IExcessPaymentRepository
	jobs     interfaces.IJobRepository
	gateway  interfaces.IPaymentGateway
}

var _ IExcessPaymentUseCase = (*ExcessPaymentUseCase)(nil)

func NewExcessPaymentUseCase(payments interfaces.IExcessPaymentRepository, jobs interfaces.IJobRepository, gateway interfaces.IPaymentGateway) *ExcessPaymentUseCase {
	return &ExcessPaymentUseCase{payments: payments, jobs: jobs, gateway: gateway}
}

// CreateAndApprove charges the job's excess fee. The amount is always taken
// from the job record, never from the caller's payload; the payload only
// carries provider-specific fields (payment method, payer).
func (u *ExcessPaymentUseCase) CreateAndApprove(ctx context.Context, jobID string, payload json.RawMessage) (entities.ExcessPayment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.ExcessPayment{}, ErrInvalidJobID
	}
	mockMode := isPaymentGatewayMockEnabled()

	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			return entities.ExcessPayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.ExcessPayment{}, errors.New("payment gateway not configured")
	}

	job, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		return entities.ExcessPayment{}, err
	}
	if job.ID == "" {
		return entities.ExcessPayment{}, ErrJobNotFound
	}
	if !mockMode && !job.IsFinished {
		log.Printf("[excess][usecase] job not finished job_id=%s status=%s", jobID, job.Status())
		return entities.ExcessPayment{}, ErrJobNotFinished
	}
	if job.ExcessFee <= 0 {
		return entities.ExcessPayment{}, ErrNoExcessFee
	}

	enriched, err := u.enrichPayload(payload, job, mockMode)
	if err != nil {
		return entities.ExcessPayment{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[excess][usecase] gateway failed job_id=%s err=%v", jobID, err)
		switch {
		case isGatewayUnauthorized(err):
			return entities.ExcessPayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.ExcessPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.ExcessPayment{}, err
	}
	log.Printf("[excess][usecase] gateway success job_id=%s provider_payment_id=%s provider_status=%s", jobID, providerID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[excess][usecase] provider response unmarshal failed job_id=%s err=%v", jobID, err)
	}

	p := entities.ExcessPayment{
		ID:                 providerID,
		JobID:              jobID,
		Amount:             job.ExcessFee,
		Date:               time.Now().UTC(),
		Status:             entities.PaymentStatusApproved,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	return u.payments.Create(ctx, p)
}

// enrichPayload pins the provider request to the job: external_reference,
// description and the charged amount come from the job record.
func (u *ExcessPaymentUseCase) enrichPayload(payload json.RawMessage, job entities.Job, mockMode bool) (json.RawMessage, error) {
	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil {
		return nil, ErrInvalidPaymentPayload
	}
	if !mockMode {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidPaymentPayload
		}
	}
	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = job.ID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Excess fee %s (%s)", job.JobNumber, job.Vehicle.Registration)
	}
	req["transaction_amount"] = job.ExcessFee

	b, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (u *ExcessPaymentUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.ExcessPayment, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.payments.ListByJobID(ctx, jobID)
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) != ""
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
