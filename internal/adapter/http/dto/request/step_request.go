package request

// UpdateStepRequest is the station's step checkoff payload. employeeId is
// required by the domain when status is completed or in_progress; the use
// case enforces it so the error carries a proper code.
type UpdateStepRequest struct {
	Status     string `json:"status" binding:"required"`
	EmployeeID string `json:"employeeId"`
}

// BulkSkipRequest fast-forwards a stage by skipping a batch of steps as one
// unit.
type BulkSkipRequest struct {
	StepIDs []string `json:"stepIds" binding:"required"`
}
