package request

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date")
)

// Dates arrive from the intake form as plain calendar dates; full RFC 3339
// timestamps are accepted too for API clients.
const dateLayout = "2006-01-02"

func parseDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(dateLayout, v); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, ErrInvalidDate
}

type VehicleRequest struct {
	Registration  string `json:"registration" binding:"required"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	Type          string `json:"type"`
	Year          string `json:"year"`
	Color         string `json:"color"`
	ChassisNumber string `json:"chassisNumber"`
}

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateJobRequest is the intake payload. Vehicle and customer are given
// either by id (already registered) or inline.
type CreateJobRequest struct {
	JobNumber          string           `json:"jobNumber"`
	VehicleID          string           `json:"vehicleId"`
	Vehicle            *VehicleRequest  `json:"vehicle"`
	CustomerID         string           `json:"customerId"`
	Customer           *CustomerRequest `json:"customer"`
	PaymentType        string           `json:"paymentType" binding:"required"`
	InsuranceCompanyID string           `json:"insuranceCompanyId"`
	ExcessFee          float64          `json:"excessFee"`
	Receiver           string           `json:"receiver"`
	StartDate          string           `json:"startDate" binding:"required"`
	EstimatedEndDate   string           `json:"estimatedEndDate"`
	RepairDescription  string           `json:"repairDescription"`
	Notes              string           `json:"notes"`
}

func (r CreateJobRequest) ResolveStartDate() (time.Time, error) {
	return parseDate(r.StartDate)
}

func (r CreateJobRequest) ResolveEstimatedEndDate() (time.Time, error) {
	return parseDate(r.EstimatedEndDate)
}

// UpdateJobDetailsRequest carries the editable job attributes; absent fields
// stay untouched.
type UpdateJobDetailsRequest struct {
	Receiver          *string  `json:"receiver"`
	EstimatedEndDate  *string  `json:"estimatedEndDate"`
	ExcessFee         *float64 `json:"excessFee"`
	RepairDescription *string  `json:"repairDescription"`
	Notes             *string  `json:"notes"`
}

func (r UpdateJobDetailsRequest) ResolveEstimatedEndDate() (*time.Time, error) {
	if r.EstimatedEndDate == nil {
		return nil, nil
	}
	t, err := parseDate(*r.EstimatedEndDate)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
