package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"garagejobs/internal/domain/entities"
	mock_interfaces "garagejobs/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func excessUseCaseWithMocks(ctrl *gomock.Controller) (*ExcessPaymentUseCase, *mock_interfaces.MockIExcessPaymentRepository, *mock_interfaces.MockIJobRepository, *mock_interfaces.MockIPaymentGateway) {
	payments := mock_interfaces.NewMockIExcessPaymentRepository(ctrl)
	jobs := mock_interfaces.NewMockIJobRepository(ctrl)
	gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
	return NewExcessPaymentUseCase(payments, jobs, gateway), payments, jobs, gateway
}

func finishedJob() entities.Job {
	return entities.Job{
		ID:         "job-1",
		JobNumber:  "JOB-1",
		Vehicle:    entities.Vehicle{Registration: "กข 1234"},
		ExcessFee:  3000,
		IsFinished: true,
	}
}

func TestExcessPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	t.Run("empty job id", func(t *testing.T) {
		uc := NewExcessPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewExcessPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "job-1", nil)
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewExcessPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "job-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewExcessPaymentUseCase(nil, nil, nil)
		_, err := uc.CreateAndApprove(context.Background(), "job-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, jobs, _ := excessUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(finishedJob(), nil)

		_, err := uc.CreateAndApprove(context.Background(), "job-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})
}

func TestExcessPaymentUseCase_CreateAndApprove_JobChecks(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	payload := json.RawMessage(`{"payment_method_id":"pix"}`)

	t.Run("job repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, jobs, _ := excessUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, errors.New("db"))

		_, err := uc.CreateAndApprove(context.Background(), "job-1", payload)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, jobs, _ := excessUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := uc.CreateAndApprove(context.Background(), "job-1", payload)
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("job not finished", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, jobs, _ := excessUseCaseWithMocks(ctrl)

		job := finishedJob()
		job.IsFinished = false
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.CreateAndApprove(context.Background(), "job-1", payload)
		if !errors.Is(err, ErrJobNotFinished) {
			t.Fatalf("expected ErrJobNotFinished, got %v", err)
		}
	})

	t.Run("no excess fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, jobs, _ := excessUseCaseWithMocks(ctrl)

		job := finishedJob()
		job.ExcessFee = 0
		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)

		_, err := uc.CreateAndApprove(context.Background(), "job-1", payload)
		if !errors.Is(err, ErrNoExcessFee) {
			t.Fatalf("expected ErrNoExcessFee, got %v", err)
		}
	})
}

func TestExcessPaymentUseCase_CreateAndApprove_Gateway(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)

	t.Run("unauthorized classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, jobs, gateway := excessUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(finishedJob(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.CreateAndApprove(context.Background(), "job-1", payload)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("bad request classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, _, jobs, gateway := excessUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(finishedJob(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"bad_request","status":400}`))

		_, err := uc.CreateAndApprove(context.Background(), "job-1", payload)
		if !errors.Is(err, ErrPaymentGatewayBadRequest) {
			t.Fatalf("expected ErrPaymentGatewayBadRequest, got %v", err)
		}
	})

	t.Run("success pins the amount to the job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, jobs, gateway := excessUseCaseWithMocks(ctrl)

		jobs.EXPECT().GetByID(gomock.Any(), "job-1").Return(finishedJob(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, enriched json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(enriched, &req); err != nil {
					t.Fatalf("enriched payload not json: %v", err)
				}
				if req["transaction_amount"] != 3000.0 {
					t.Fatalf("expected amount pinned to 3000, got %v", req["transaction_amount"])
				}
				if req["external_reference"] != "job-1" {
					t.Fatalf("expected external_reference job-1, got %v", req["external_reference"])
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1","status":"approved"}`), nil
			})
		payments.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ExcessPayment) (entities.ExcessPayment, error) {
				if p.ID != "mp-1" || p.JobID != "job-1" || p.Amount != 3000 || p.Status != entities.PaymentStatusApproved {
					t.Fatalf("unexpected payment record: %+v", p)
				}
				return p, nil
			})

		created, err := uc.CreateAndApprove(context.Background(), "job-1", payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "mp-1" {
			t.Fatalf("expected mp-1, got %s", created.ID)
		}
	})
}

func TestExcessPaymentUseCase_ListByJobID(t *testing.T) {
	t.Run("empty job id", func(t *testing.T) {
		uc := NewExcessPaymentUseCase(nil, nil, nil)
		_, err := uc.ListByJobID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, payments, _, _ := excessUseCaseWithMocks(ctrl)

		payments.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.ExcessPayment{{ID: "p1"}}, nil)

		got, err := uc.ListByJobID(context.Background(), "job-1")
		if err != nil || len(got) != 1 || got[0].ID != "p1" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})
}
