package handlers

import (
	"encoding/json"
	"errors"
	response "garagejobs/internal/adapter/http/dto/response"
	"garagejobs/internal/usecase"
	"garagejobs/pkg"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

// ExcessPaymentHandler handles excess/deductible fee payments on finished
// jobs.

type ExcessPaymentHandler struct {
	usecase usecase.IExcessPaymentUseCase
}

func NewExcessPaymentHandler(uc usecase.IExcessPaymentUseCase) *ExcessPaymentHandler {
	return &ExcessPaymentHandler{usecase: uc}
}

// CreatePaymentByJobID charges the job's excess fee through the payment
// provider. The amount is pinned to the job record server side.
func (h *ExcessPaymentHandler) CreatePaymentByJobID(c *gin.Context) {
	jobID := c.Param("job_id")
	log.Printf("[excess][handler] create start job_id=%s", jobID)
	mockMode := isProviderMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[excess][handler] payload invalid in mock mode; fallback to empty payload job_id=%s err=%v", jobID, err)
			payload = json.RawMessage("{}")
		} else {
			log.Printf("[excess][handler] invalid payload job_id=%s err=%v", jobID, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), jobID, payload)
	if err != nil {
		log.Printf("[excess][handler] create failed job_id=%s err=%v", jobID, err)
		appErr := mapExcessPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[excess][handler] create success job_id=%s payment_id=%s status=%s", jobID, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromExcessPayment(created))
}

// GetPaymentByJobID returns the latest payment recorded for a job.
func (h *ExcessPaymentHandler) GetPaymentByJobID(c *gin.Context) {
	jobID := c.Param("job_id")
	log.Printf("[excess][handler] get-by-job start job_id=%s", jobID)

	payments, err := h.usecase.ListByJobID(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("[excess][handler] get-by-job failed job_id=%s err=%v", jobID, err)
		appErr := mapExcessPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		log.Printf("[excess][handler] get-by-job not-found job_id=%s", jobID)
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	log.Printf("[excess][handler] get-by-job success job_id=%s payment_id=%s status=%s", jobID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromExcessPayment(latest))
}

// readProviderPayload reads the raw body, tolerating an empty body and
// unwrapping a {"provider_payload": {...}} envelope when present.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapExcessPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFinished):
		return pkg.NewDomainErrorSimple("JOB_NOT_FINISHED", "Job is not finished yet", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoExcessFee):
		return pkg.NewDomainErrorSimple("NO_EXCESS_FEE", "Job has no excess fee to charge", http.StatusConflict)
	case errors.Is(err, usecase.ErrExcessPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isProviderMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
