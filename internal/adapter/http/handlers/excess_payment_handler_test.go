package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"garagejobs/internal/adapter/http/handlers/mocks"
	"garagejobs/internal/domain/entities"
	"garagejobs/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestExcessPaymentHandler_CreatePaymentByJobID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:job_id", h.CreatePaymentByJobID)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/job-1", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:job_id", h.CreatePaymentByJobID)

		uc.EXPECT().CreateAndApprove(gomock.Any(), "job-1", gomock.Any()).Return(entities.ExcessPayment{}, usecase.ErrJobNotFinished)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/job-1", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/:job_id", h.CreatePaymentByJobID)

		now := time.Now().UTC()
		uc.EXPECT().CreateAndApprove(gomock.Any(), "job-1", gomock.Any()).Return(entities.ExcessPayment{ID: "pay-1", JobID: "job-1", Amount: 3000, Date: now, Status: entities.PaymentStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/job-1", bytes.NewBufferString(`{"provider_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "pay-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestExcessPaymentHandler_GetPaymentByJobID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:job_id", h.GetPaymentByJobID)

		uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, usecase.ErrInvalidJobID)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:job_id", h.GetPaymentByJobID)

		uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.ExcessPayment{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success returns latest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIExcessPaymentUseCase(ctrl)
		h := NewExcessPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/:job_id", h.GetPaymentByJobID)

		old := entities.ExcessPayment{ID: "old", JobID: "job-1", Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusPending}
		latest := entities.ExcessPayment{ID: "latest", JobID: "job-1", Date: time.Now(), Status: entities.PaymentStatusApproved}
		uc.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.ExcessPayment{old, latest}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "latest" {
			t.Fatalf("expected latest payment, got body: %s", w.Body.String())
		}
	})
}

func TestReadProviderPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readProviderPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readProviderPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readProviderPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readProviderPayload(makeCtx(`{"provider_payload":null}`)); err == nil {
		t.Fatalf("expected provider_payload empty error")
	}

	payload, err = readProviderPayload(makeCtx(`{"provider_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readProviderPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapExcessPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidJobID, http.StatusBadRequest},
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusUnauthorized},
		{usecase.ErrJobNotFound, http.StatusNotFound},
		{usecase.ErrJobNotFinished, http.StatusConflict},
		{usecase.ErrNoExcessFee, http.StatusConflict},
		{usecase.ErrExcessPaymentNotFound, http.StatusNotFound},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapExcessPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
